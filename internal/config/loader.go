package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// rawConfig は、設定ファイルをデコードするための中間構造体です。
// 省略されたフィールドを既定値と区別するためにポインタを使用します。
type rawConfig struct {
	ConfigVersion   string  `json:"config_version"`
	InputEncoding   *string `json:"input_encoding,omitempty"`
	OutputDirectory *string `json:"output_directory,omitempty"`
	DefaultTitle    *string `json:"default_title,omitempty"`
	EnableLogFile   *bool   `json:"enable_log_file,omitempty"`
	LogFilePath     *string `json:"log_file_path,omitempty"`
}

// Load は、指定されたパスから設定ファイルを読み込み、既定値を補完して返します。
// required が false でファイルが存在しない場合は Default() を返します。
func Load(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return Default(), nil
		}
		absPath, _ := filepath.Abs(path)
		cwd, _ := os.Getwd()
		return nil, fmt.Errorf("設定ファイル '%s' の読み込みに失敗しました (Abs: '%s', Cwd: '%s'): %w", path, absPath, cwd, err)
	}
	return Parse(data)
}

// Parse は、設定データのバイトスライスを解析し、既定値を補完した設定を返します。
// この関数はテストのために分離されています。
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError

		if errors.As(err, &syntaxErr) {
			line, col := computeLineAndColumn(data, syntaxErr.Offset)
			return nil, fmt.Errorf("設定ファイルのJSON構文エラー (行 %d, 列 %d): %w", line, col, err)
		}
		if errors.As(err, &typeErr) {
			line, col := computeLineAndColumn(data, typeErr.Offset)
			return nil, fmt.Errorf("設定ファイルの型エラー (行 %d, 列 %d, フィールド '%s'): 期待値 %v, 実際 %v - %w",
				line, col, typeErr.Field, typeErr.Type, typeErr.Value, err)
		}
		return nil, fmt.Errorf("設定ファイルの解析に失敗しました: %w", err)
	}

	if raw.ConfigVersion != CompatibleVersion {
		return nil, fmt.Errorf("サポートされていない設定バージョン '%s' です。'%s' が必要です。", raw.ConfigVersion, CompatibleVersion)
	}

	cfg := Default()
	applyRaw(cfg, &raw)
	return cfg, nil
}

// applyRaw は、rawの非nilフィールドをtargetに上書きします。
// 空文字列は未指定とみなし、既定値を残します。
func applyRaw(target *Config, raw *rawConfig) {
	if raw.InputEncoding != nil && strings.TrimSpace(*raw.InputEncoding) != "" {
		target.InputEncoding = strings.TrimSpace(*raw.InputEncoding)
	}
	if raw.OutputDirectory != nil {
		target.OutputDirectory = *raw.OutputDirectory
	}
	if raw.DefaultTitle != nil && *raw.DefaultTitle != "" {
		target.DefaultTitle = *raw.DefaultTitle
	}
	if raw.EnableLogFile != nil {
		target.EnableLogFile = *raw.EnableLogFile
	}
	if raw.LogFilePath != nil {
		target.LogFilePath = *raw.LogFilePath
	}
}

// computeLineAndColumn は、バイトオフセットから行番号と列番号（1始まり）を計算します。
func computeLineAndColumn(data []byte, offset int64) (int, int) {
	if offset < 0 || int(offset) > len(data) {
		return 0, 0
	}
	line := 1
	lastLineStart := 0
	for i, b := range data {
		if int64(i) == offset {
			return line, i - lastLineStart + 1
		}
		if b == '\n' {
			line++
			lastLineStart = i + 1
		}
	}
	return line, int(offset) - lastLineStart + 1
}
