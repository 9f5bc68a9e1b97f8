// Package dat は、したらば掲示板などのdatファイル（"<>" 区切りのレス形式）を
// 解析し、レス一覧とスレッドタイトルを抽出する機能を提供します。
package dat

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// encodingRegistry は、設定で使用できる文字コード名とEncodingのマッピングを保持します。
var encodingRegistry = map[string]encoding.Encoding{
	"euc-jp":    japanese.EUCJP,
	"eucjp":     japanese.EUCJP,
	"shift_jis": japanese.ShiftJIS,
	"sjis":      japanese.ShiftJIS,
	"cp932":     japanese.ShiftJIS,
	"utf-8":     unicode.UTF8,
	"utf8":      unicode.UTF8,
}

// GetEncoding は、指定された名前に対応するEncodingを返します。
// レジストリに無い名前はWHATWGのエンコーディング名として解決を試みます。
func GetEncoding(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if enc, ok := encodingRegistry[key]; ok {
		return enc, nil
	}
	enc, err := htmlindex.Get(key)
	if err != nil {
		return nil, fmt.Errorf("文字コード '%s' に対応するデコーダが見つかりません: %w", name, err)
	}
	return enc, nil
}

// Decode は、enc でバイト列をUTF-8文字列に変換します。
// 変換できないバイト列は置換文字にせず、取り除きます。
func Decode(b []byte, enc encoding.Encoding) (string, error) {
	dropInvalid := runes.Remove(runes.Predicate(func(r rune) bool {
		return r == utf8.RuneError
	}))
	reader := transform.NewReader(bytes.NewReader(b), transform.Chain(enc.NewDecoder(), dropInvalid))
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
