package core

import (
	"fmt"
	"time"
)

// RunStats は1回の変換の統計情報を保持します。
type RunStats struct {
	StartTime    time.Time // 開始時刻
	OutputPath   string    // 書き出したHTMLのパス
	PostCount    int       // 出力したレス数
	ImageCount   int       // サムネイルにした画像数
	BytesWritten int64     // 出力サイズ（バイト）
}

// NewRunStats は現在時刻を開始時刻とする RunStats を返します。
func NewRunStats() *RunStats {
	return &RunStats{StartTime: time.Now()}
}

// FormatSummary は統計情報を1行の文字列にフォーマットします。
func (s *RunStats) FormatSummary() string {
	elapsed := time.Since(s.StartTime)
	sizeKB := float64(s.BytesWritten) / 1024

	return fmt.Sprintf("レス: %d | 画像: %d | %.1fKB | %dms",
		s.PostCount, s.ImageCount, sizeKB, elapsed.Milliseconds())
}
