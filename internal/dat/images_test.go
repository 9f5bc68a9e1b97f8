package dat

import (
	"reflect"
	"testing"
)

func TestExtractImages(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "書き換え済みの本文",
			content:  CleanContent("check http://example.com/pic.jpg now"),
			expected: []string{"http://example.com/pic.jpg"},
		},
		{
			name:     "重複は最初の位置に一度だけ",
			content:  "http://a.example/x.png http://b.example/y.gif http://a.example/x.png",
			expected: []string{"http://a.example/x.png", "http://b.example/y.gif"},
		},
		{
			name:     "クエリ付きの拡張子",
			content:  "https://example.com/a.webp?size=large",
			expected: []string{"https://example.com/a.webp?size=large"},
		},
		{
			name:     "formatクエリ",
			content:  "https://pbs.twimg.com/media/abc?format=jpg&name=small",
			expected: []string{"https://pbs.twimg.com/media/abc?format=jpg&name=small"},
		},
		{
			name:     "画像ホスティングサイト",
			content:  "https://imgur.com/gallery/xyz",
			expected: []string{"https://imgur.com/gallery/xyz"},
		},
		{
			name:     "大文字小文字を区別しない",
			content:  "HTTP://EXAMPLE.COM/A.JPG",
			expected: []string{"HTTP://EXAMPLE.COM/A.JPG"},
		},
		{
			name:     "パターン順に並ぶ",
			content:  "https://imgur.com/abc http://example.com/z.gif",
			expected: []string{"http://example.com/z.gif", "https://imgur.com/abc"},
		},
		{
			name:     "画像なし",
			content:  "https://example.com/page.html",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractImages(tt.content)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractImages() = %q, want %q", got, tt.expected)
			}
		})
	}
}
