package core

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"GoDatToHTML/internal/dat"
)

// VerificationResult は、生成済みHTML文書の検証結果を表します。
type VerificationResult struct {
	Path            string
	PostCount       int
	AnchorCount     int
	DanglingAnchors int
	Details         []string
}

// VerifyDocument は、生成済みのHTMLを読み込み、レスアンカーの参照先が
// 文書内に存在するかを検証します。
func VerifyDocument(path string) (*VerificationResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("HTMLファイルを開けませんでした (path=%s): %w", path, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("HTMLの解析に失敗しました (path=%s): %w", path, err)
	}

	result := &VerificationResult{Path: path}
	postIDs := make(map[string]bool)
	doc.Find("div.post").Each(func(_ int, s *goquery.Selection) {
		result.PostCount++
		if id, ok := s.Attr("id"); ok {
			postIDs[id] = true
		}
	})

	doc.Find("a." + dat.AnchorLinkClass).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !strings.HasPrefix(href, "#") {
			return
		}
		result.AnchorCount++
		target := strings.TrimPrefix(href, "#")
		if !postIDs[target] {
			result.DanglingAnchors++
			result.Details = append(result.Details, fmt.Sprintf("[%s] 参照先のないアンカー: %s", path, href))
		}
	})

	return result, nil
}

// RunVerification は、指定されたHTMLファイルをすべて検証し、結果をログに出力します。
// 参照先のないアンカーは警告として報告するだけで、エラーにはしません。
func RunVerification(paths []string, logger *log.Logger) error {
	logger.Println("検証モードを開始します...")

	var failed int
	total := VerificationResult{}
	for _, path := range paths {
		result, err := VerifyDocument(path)
		if err != nil {
			logger.Printf("ERROR: %v", err)
			failed++
			continue
		}
		logger.Printf("%s: レス %d 件, アンカー %d 件, 参照先なし %d 件", path, result.PostCount, result.AnchorCount, result.DanglingAnchors)
		total.PostCount += result.PostCount
		total.AnchorCount += result.AnchorCount
		total.DanglingAnchors += result.DanglingAnchors
		total.Details = append(total.Details, result.Details...)
	}

	logger.Println("========================================")
	logger.Println("検証完了")
	logger.Printf("チェック済みファイル数: %d", len(paths)-failed)
	logger.Printf("参照先のないアンカー: %d", total.DanglingAnchors)
	if len(total.Details) > 0 {
		logger.Println("詳細:")
		for _, detail := range total.Details {
			logger.Println(detail)
		}
	}
	logger.Println("========================================")

	if failed > 0 {
		return fmt.Errorf("%d 件のファイルを検証できませんでした", failed)
	}
	return nil
}
