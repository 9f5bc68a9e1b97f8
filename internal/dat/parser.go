package dat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding"

	"GoDatToHTML/internal/model"
)

// FieldDelimiter は、datファイルの1行の中でフィールドを区切る文字列です。
const FieldDelimiter = "<>"

// minFields より少ないフィールドしか持たない行はレスとみなしません。
const minFields = 6

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// Line は、ParsePostLine が1行から取り出した結果です。
type Line struct {
	Post model.Post
	// Title は7フィールド以上の行の6番目のフィールド（前後の空白除去済み）です。
	Title string
}

// ParsePostLine は、1行のレスデータを解析します。
// 形式: レス番号<>名前<>メール<>日時<>本文<>[スレッドタイトル<>]ID
// レスとして解釈できない行の場合は false を返します。
func ParsePostLine(line string) (Line, bool) {
	parts := strings.Split(line, FieldDelimiter)
	if len(parts) < minFields {
		return Line{}, false
	}

	number, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || number < 0 {
		return Line{}, false
	}

	result := Line{
		Post: model.Post{
			Number:  number,
			Name:    CleanName(parts[1]),
			Mail:    parts[2],
			Date:    parts[3],
			Content: CleanContent(parts[4]),
		},
	}

	if len(parts) >= 7 {
		// スレッドタイトル付きの形式
		result.Title = strings.TrimSpace(parts[5])
		result.Post.PosterID = parts[6]
	} else {
		// 通常の6フィールド形式
		result.Post.PosterID = parts[5]
	}
	return result, true
}

// CleanName は、名前欄からタグを除去し、HTMLエンティティをデコードします。
// タグ除去はデコードより先に行い、エスケープされた山括弧をタグと誤認しないようにします。
func CleanName(name string) string {
	name = tagPattern.ReplaceAllString(name, "")
	name = html.UnescapeString(name)
	return strings.TrimSpace(name)
}

// Parser は、1回の変換で使用する抽出セッションです。
// 抽出したレスとスレッドタイトルを保持し、変換後に破棄されます。
type Parser struct {
	enc         encoding.Encoding
	posts       []model.Post
	threadTitle string
}

// NewParser は、enc でdatファイルを読む新しい Parser を返します。
func NewParser(enc encoding.Encoding) *Parser {
	return &Parser{enc: enc}
}

// Parse は、datファイルの内容全体を解析し、スレッドを返します。
// 不正な行は黙って読み飛ばします。
func (p *Parser) Parse(data []byte) (*model.Thread, error) {
	content, err := Decode(data, p.enc)
	if err != nil {
		return nil, fmt.Errorf("datファイルの文字コード変換に失敗しました (size=%d bytes): %w", len(data), err)
	}

	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parsed, ok := ParsePostLine(strings.TrimSuffix(line, "\r"))
		if !ok {
			continue
		}
		p.add(parsed)
	}

	return &model.Thread{Posts: p.posts, Title: p.threadTitle}, nil
}

// add はレスを追加し、>>1 にタイトルがあれば一度だけ記録します。
func (p *Parser) add(parsed Line) {
	if parsed.Post.Number == 1 && parsed.Title != "" && p.threadTitle == "" {
		p.threadTitle = parsed.Title
	}
	p.posts = append(p.posts, parsed.Post)
}
