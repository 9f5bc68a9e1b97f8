// Package render は、抽出したレス一覧から閲覧用の単一HTML文書を組み立てます。
package render

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"GoDatToHTML/internal/dat"
	"GoDatToHTML/internal/model"
)

// EmptyMessage は、レスが1件も無い場合に出力する見出しです。
const EmptyMessage = "投稿が見つかりませんでした"

// Document は、組み立てたHTML文書とその集計値です。
type Document struct {
	HTML       string
	PostCount  int
	ImageCount int
}

// Render は、スレッドからHTML文書を組み立てます。
// スレッドタイトルが無い場合は fallbackTitle をタイトルにします。
// 本文は抽出時に書き換え済みのためエスケープせず、名前・日時・ID・画像URL・タイトルのみエスケープします。
func Render(thread *model.Thread, fallbackTitle string) *Document {
	if len(thread.Posts) == 0 {
		return &Document{HTML: renderEmpty()}
	}

	title := html.EscapeString(thread.EffectiveTitle(fallbackTitle))
	first, last := thread.Posts[0], thread.Posts[len(thread.Posts)-1]

	var b strings.Builder
	fmt.Fprintf(&b, `<!DOCTYPE html>
<html lang="ja">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
%s    </style>
</head>
<body>
    <div class="container">
        <h1>%s</h1>
        
        <div class="thread-info">
            <strong>総レス数:</strong> %d<br>
            <strong>開始日時:</strong> %s<br>
            <strong>最終投稿:</strong> %s
        </div>
`, title, styleSheet, title, len(thread.Posts), html.EscapeString(first.Date), html.EscapeString(last.Date))

	doc := &Document{PostCount: len(thread.Posts)}
	for _, post := range thread.Posts {
		doc.ImageCount += writePost(&b, post)
	}

	b.WriteString(`
    </div>
</body>
</html>`)

	doc.HTML = b.String()
	return doc
}

// writePost は1件のレスを書き出し、サムネイルにした画像の数を返します。
func writePost(b *strings.Builder, post model.Post) int {
	nameClass := ""
	if post.IsSage() {
		nameClass = "sage"
	}
	idBadge := ""
	if post.PosterID != "" {
		idBadge = `<span class="post-id">ID:` + html.EscapeString(post.PosterID) + `</span>`
	}
	number := strconv.Itoa(post.Number)

	fmt.Fprintf(b, `
        <div class="post" id="post-%s">
            <div class="post-header">
                <span class="post-number">%s</span>
                <span class="post-name %s">%s</span>
                <span class="post-date">%s</span>
                %s
            </div>
            <div class="post-content">
                %s
            </div>`, number, html.EscapeString(number), nameClass, html.EscapeString(post.Name),
		html.EscapeString(post.Date), idBadge, post.Content)

	images := dat.ExtractImages(post.Content)
	if len(images) > 0 {
		b.WriteString(`
            <div class="image-thumbnails">`)
		for _, img := range images {
			escaped := html.EscapeString(img)
			fmt.Fprintf(b, `
                <a href="%s" target="_blank">
                    <img src="%s" class="thumbnail" alt="画像" onerror="this.style.display='none'">
                </a>`, escaped, escaped)
		}
		b.WriteString(`
            </div>`)
	}

	b.WriteString(`
        </div>`)
	return len(images)
}

func renderEmpty() string {
	return `<!DOCTYPE html>
<html lang="ja"><head><meta charset="UTF-8"><title>` + EmptyMessage + `</title></head><body><h1>` + EmptyMessage + `</h1></body></html>`
}
