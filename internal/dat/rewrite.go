package dat

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// spaceClass は、URLの終端とみなす空白文字の集合です。
// ASCII空白に加えて全角スペースなどのUnicode空白を含みます。
const spaceClass = `\s\x0b\x1c-\x1f\x85\p{Z}`

const (
	// ExternalLinkClass は、外部リンクに付与するCSSクラスです。
	ExternalLinkClass = "external-link"
	// AnchorLinkClass は、レスアンカーに付与するCSSクラスです。
	AnchorLinkClass = "anchor-link"
)

var (
	// <a href="/bbs/link.cgi?url=URL" ...>ラベル</a>
	linkCGIPattern = regexp.MustCompile(`<a href="/bbs/link\.cgi\?url=([^"]+)"([^>]*)>([^<]+)</a>`)
	// <a href="#数字">&gt;&gt;数字</a>
	encodedAnchorPattern = regexp.MustCompile(`<a href="#(\d+)">&gt;&gt;\d+</a>`)
	bareURLPattern       = regexp.MustCompile(`https?://[^` + spaceClass + `<>"']+`)
	referencePattern     = regexp.MustCompile(`>>(\d+)`)
)

// Stage は、本文の書き換え処理の1段階です。
type Stage struct {
	Name  string
	Apply func(string) string
}

// ContentStages は、本文に適用する書き換え処理を適用順に並べたものです。
// 前段の出力が次段の入力になるため、順序を変えると出力が変わります。
var ContentStages = []Stage{
	{Name: "link-cgi", Apply: RewriteLinkCGI},
	{Name: "encoded-anchor", Apply: NormalizeAnchors},
	{Name: "unescape", Apply: html.UnescapeString},
	{Name: "bare-url", Apply: LinkifyURLs},
	{Name: "reference", Apply: LinkifyReferences},
}

// CleanContent は、本文に ContentStages を順に適用し、前後の空白を除去します。
func CleanContent(content string) string {
	for _, stage := range ContentStages {
		content = stage.Apply(content)
	}
	return strings.TrimSpace(content)
}

// RewriteLinkCGI は、/bbs/link.cgi 経由のリダイレクトリンクを直接リンクに書き換えます。
// エンティティのデコード前に実行する必要があります。
func RewriteLinkCGI(content string) string {
	return linkCGIPattern.ReplaceAllString(content,
		`<a href="${1}"${2} class="`+ExternalLinkClass+`">${3}</a>`)
}

// NormalizeAnchors は、既存の <a href="#N">&gt;&gt;N</a> を #post-N へのアンカーに揃えます。
func NormalizeAnchors(content string) string {
	return encodedAnchorPattern.ReplaceAllString(content,
		`<a href="#post-${1}" class="`+AnchorLinkClass+`">&gt;&gt;${1}</a>`)
}

// LinkifyURLs は、属性値の中にないhttp/httpsのURLを外部リンクに変換します。
// 直前が href=" または src=" のものは属性値とみなして変換しません。
// HTMLを解析するわけではない簡易的な判定です。
func LinkifyURLs(content string) string {
	return replaceUnlessPreceded(bareURLPattern, content, []string{`href="`, `src="`}, func(m []string) string {
		return `<a href="` + m[0] + `" target="_blank" class="` + ExternalLinkClass + `">` + m[0] + `</a>`
	})
}

// LinkifyReferences は、>>N 形式の参照を #post-N へのアンカーに変換します。
// エンティティのデコード後に実行するため、元々エスケープされていた参照も対象になります。
// NormalizeAnchors で既にアンカーになっているラベルは再変換しません。
func LinkifyReferences(content string) string {
	return replaceUnlessPreceded(referencePattern, content, []string{`class="` + AnchorLinkClass + `">`}, func(m []string) string {
		return `<a href="#post-` + m[1] + `" class="` + AnchorLinkClass + `">>>` + m[1] + `</a>`
	})
}

// replaceUnlessPreceded は re の一致を repl で置換します。
// 一致の直前が guards のいずれかで終わる場合はその位置を飛ばし、次の文字から探索を続けます。
func replaceUnlessPreceded(re *regexp.Regexp, s string, guards []string, repl func([]string) string) string {
	var b strings.Builder
	pos := 0
	for pos <= len(s) {
		loc := re.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if hasAnySuffix(s[:start], guards) && start < len(s) {
			b.WriteString(s[pos : start+1])
			pos = start + 1
			continue
		}

		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = s[pos+loc[2*i] : pos+loc[2*i+1]]
			}
		}
		b.WriteString(s[pos:start])
		b.WriteString(repl(groups))
		pos = end
		if end == start {
			// 空一致で止まらないよう1バイト進める
			if start < len(s) {
				b.WriteByte(s[start])
			}
			pos = start + 1
		}
	}
	if pos < len(s) {
		b.WriteString(s[pos:])
	}
	return b.String()
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
