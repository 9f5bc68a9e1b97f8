// Package core は、datファイルをHTMLに変換する一連の処理を実装します。
package core

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"GoDatToHTML/internal/config"
	"GoDatToHTML/internal/dat"
	"GoDatToHTML/internal/render"
)

// ErrInputNotFound は、入力datファイルが存在しない場合に返されます。
var ErrInputNotFound = errors.New("入力ファイルが見つかりません")

// ConvertFile は、inputPath のdatファイルを解析し、HTMLを outputPath に書き出します。
// outputPath が空の場合は入力ファイル名から出力先を決定します。
// 失敗した場合、出力ファイルは作成されません。
func ConvertFile(inputPath, outputPath string, cfg *config.Config, logger *log.Logger) (*RunStats, error) {
	stats := NewRunStats()

	if _, err := os.Stat(inputPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return stats, fmt.Errorf("%w: '%s'", ErrInputNotFound, inputPath)
		}
		return stats, fmt.Errorf("入力ファイルの確認に失敗しました (path=%s): %w", inputPath, err)
	}

	enc, err := dat.GetEncoding(cfg.InputEncoding)
	if err != nil {
		return stats, err
	}

	logger.Printf("datファイルを解析中: %s", inputPath)
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return stats, fmt.Errorf("datファイルの読み込みに失敗しました (path=%s): %w", inputPath, err)
	}

	thread, err := dat.NewParser(enc).Parse(data)
	if err != nil {
		return stats, fmt.Errorf("datファイルの解析に失敗しました (path=%s): %w", inputPath, err)
	}
	logger.Printf("投稿数: %d", len(thread.Posts))
	if thread.Title != "" {
		logger.Printf("スレッドタイトル: %s", thread.Title)
	}

	fileName := filepath.Base(inputPath)
	doc := render.Render(thread, FallbackTitle(fileName, cfg.DefaultTitle))

	if outputPath == "" {
		outputPath = filepath.Join(cfg.OutputDirectory, OutputFileName(fileName))
	}
	if err := writeFileAtomic(outputPath, []byte(doc.HTML)); err != nil {
		return stats, fmt.Errorf("HTMLの保存に失敗しました (path=%s, size=%d bytes): %w", outputPath, len(doc.HTML), err)
	}

	stats.OutputPath = outputPath
	stats.PostCount = doc.PostCount
	stats.ImageCount = doc.ImageCount
	stats.BytesWritten = int64(len(doc.HTML))
	logger.Printf("HTML出力完了: %s", outputPath)
	return stats, nil
}

// writeFileAtomic は、同じディレクトリの一時ファイルに書き込んでから名前を変更します。
// 途中で失敗しても書きかけのファイルは残りません。
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("出力ディレクトリの作成に失敗しました (path=%s): %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".dat2html-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
