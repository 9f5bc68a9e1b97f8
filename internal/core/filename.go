package core

import (
	"net/url"
	"strings"
)

// datExtension は入力datファイルの拡張子です。
const datExtension = ".dat"

// decodeBaseName は、URLエンコードされたdatファイル名をデコードし、拡張子を除きます。
// 例: jbbs.livedoor.jp%2Fanime%2F11188_1716630941.dat -> jbbs.livedoor.jp/anime/11188_1716630941
func decodeBaseName(fileName string) string {
	decoded, err := url.PathUnescape(fileName)
	if err != nil {
		// 不正な%エスケープを含む場合はそのまま使う
		decoded = fileName
	}
	return strings.TrimSuffix(decoded, datExtension)
}

// OutputFileName は、datファイル名から出力HTMLのファイル名を決定します。
// デコード後の名前が "/" を含む場合は最後の部分（板ID_スレッドID）だけを使います。
func OutputFileName(fileName string) string {
	base := decodeBaseName(fileName)
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	base = SanitizeFilename(base)
	if base == "" {
		base = "thread"
	}
	return base + ".html"
}

// FallbackTitle は、スレッドタイトルが取得できない場合に使うタイトルをファイル名から作ります。
func FallbackTitle(fileName, defaultTitle string) string {
	title := decodeBaseName(fileName)
	if strings.TrimSpace(title) == "" {
		return defaultTitle
	}
	return title
}

// SanitizeFilename は、ファイル名に使えない文字を全角文字に置き換えます。
func SanitizeFilename(name string) string {
	r := strings.NewReplacer(
		"/", "／",
		"\\", "＼",
		":", "：",
		"*", "＊",
		"?", "？",
		"\"", "”",
		"<", "＜",
		">", "＞",
		"|", "｜",
	)
	return r.Replace(name)
}
