// Package config は、アプリケーションの設定ファイル(config.json)の構造定義と、
// その読み込み、既定値の補完に関する機能を提供します。
package config

const (
	// CompatibleVersion は、このバージョンのdat2htmlが読み込める設定バージョンです。
	CompatibleVersion = "1.0"
	// DefaultInputEncoding は、したらば掲示板のdatファイルの文字コードです。
	DefaultInputEncoding = "euc-jp"
	// DefaultTitle は、スレッドタイトルもファイル名も得られない場合のタイトルです。
	DefaultTitle = "したらば掲示板スレッド"
)

// Config は config.json ファイル全体を表すルート構造体です。
type Config struct {
	ConfigVersion   string `json:"config_version"`
	InputEncoding   string `json:"input_encoding,omitempty"`
	OutputDirectory string `json:"output_directory,omitempty"`
	DefaultTitle    string `json:"default_title,omitempty"`
	EnableLogFile   bool   `json:"enable_log_file"`
	LogFilePath     string `json:"log_file_path,omitempty"`
}

// Default は、設定ファイルが存在しない場合に使用する既定の設定を返します。
func Default() *Config {
	return &Config{
		ConfigVersion: CompatibleVersion,
		InputEncoding: DefaultInputEncoding,
		DefaultTitle:  DefaultTitle,
	}
}
