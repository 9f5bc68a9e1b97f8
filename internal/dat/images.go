package dat

import "regexp"

var imagePatterns = []*regexp.Regexp{
	// 画像ファイルの拡張子で終わるURL
	regexp.MustCompile(`(?i)https?://[^` + spaceClass + `<>"]+\.(?:jpg|jpeg|png|gif|webp)(?:\?[^` + spaceClass + `<>"]*)?`),
	// ?format=jpg などのクエリで画像を返すURL
	regexp.MustCompile(`(?i)https?://[^` + spaceClass + `<>"]*[?&]format=(?:jpg|jpeg|png|gif|webp)(?:[^` + spaceClass + `<>"]*)?`),
	// 画像ホスティングサイト
	regexp.MustCompile(`(?i)https?://(?:pbs\.twimg\.com|imgur\.com)/[^` + spaceClass + `<>"]*(?:\?[^` + spaceClass + `<>"]*)?`),
}

// ExtractImages は、書き換え済みの本文から画像URLを抽出します。
// パターン順に全一致を連結し、最初の出現順を保ったまま重複を除去します。
func ExtractImages(content string) []string {
	var images []string
	for _, pattern := range imagePatterns {
		images = append(images, pattern.FindAllString(content, -1)...)
	}

	var unique []string
	seen := make(map[string]bool, len(images))
	for _, img := range images {
		if seen[img] {
			continue
		}
		seen[img] = true
		unique = append(unique, img)
	}
	return unique
}
