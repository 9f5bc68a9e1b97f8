package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigLoadingFromFile(t *testing.T) {
	// 1. Arrange (準備)
	testConfigPath := filepath.Join("testdata", "test_config.json")
	data, err := os.ReadFile(testConfigPath)
	if err != nil {
		t.Fatalf("テスト設定ファイル '%s' の読み込みに失敗しました: %v", testConfigPath, err)
	}

	// 2. Act (実行)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parseで予期せぬエラーが発生しました: %v", err)
	}

	// 3. Assert (検証)
	if cfg.InputEncoding != "shift_jis" {
		t.Errorf("InputEncodingが期待値と異なります。期待値: shift_jis, 実際値: %s", cfg.InputEncoding)
	}
	if cfg.OutputDirectory != "out" {
		t.Errorf("OutputDirectoryが期待値と異なります。期待値: out, 実際値: %s", cfg.OutputDirectory)
	}
	if !cfg.EnableLogFile {
		t.Error("EnableLogFileがtrueであるべきです。")
	}
	if cfg.LogFilePath != "dat2html.log" {
		t.Errorf("LogFilePathが期待値と異なります。期待値: dat2html.log, 実際値: %s", cfg.LogFilePath)
	}
	// 省略されたフィールドは既定値のまま
	if cfg.DefaultTitle != DefaultTitle {
		t.Errorf("DefaultTitleが既定値と異なります。期待値: %s, 実際値: %s", DefaultTitle, cfg.DefaultTitle)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "JSON構文エラー",
			input:   "{\n  \"config_version\": \"1.0\",\n  \"input_encoding\": ,\n}",
			wantMsg: "JSON構文エラー (行 3",
		},
		{
			name:    "型エラー",
			input:   "{\n  \"config_version\": \"1.0\",\n  \"enable_log_file\": \"yes\"\n}",
			wantMsg: "型エラー",
		},
		{
			name:    "バージョン不一致",
			input:   `{"config_version": "0.9"}`,
			wantMsg: "サポートされていない設定バージョン '0.9'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("エラーが返されるべきです。")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("エラーメッセージに %q が含まれていません: %v", tt.wantMsg, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("任意の設定ファイルが無い場合はエラーにならないべきです: %v", err)
	}
	if cfg.InputEncoding != DefaultInputEncoding {
		t.Errorf("InputEncodingが既定値と異なります: %s", cfg.InputEncoding)
	}

	if _, err := Load(path, true); err == nil {
		t.Error("明示された設定ファイルが無い場合はエラーになるべきです。")
	}
}

func TestComputeLineAndColumn(t *testing.T) {
	data := []byte("ab\ncd\nef")
	line, col := computeLineAndColumn(data, 4)
	if line != 2 || col != 2 {
		t.Errorf("computeLineAndColumn(4) = (%d, %d), want (2, 2)", line, col)
	}
	if line, col := computeLineAndColumn(data, -1); line != 0 || col != 0 {
		t.Errorf("負のオフセットは (0, 0) を返すべきです: (%d, %d)", line, col)
	}
}
