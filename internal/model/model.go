package model

// Post は、datファイルの1行から抽出された1件のレスを保持します。
type Post struct {
	Number   int
	Name     string
	Mail     string // 生の値。"sage" 判定のためエスケープしない
	Date     string
	Content  string // 書き換え済みのHTML断片
	PosterID string
}

// Thread は、1回の抽出で得られたレス一覧とスレッドタイトルを保持します。
type Thread struct {
	Posts []Post
	// Title は >>1 の6番目のフィールドから取得したタイトルです。未取得なら空です。
	Title string
}

// IsSage は、メール欄が "sage" そのものかどうかを返します。
func (p Post) IsSage() bool {
	return p.Mail == "sage"
}

// EffectiveTitle は、スレッドタイトルがあればそれを、なければ fallback を返します。
func (t *Thread) EffectiveTitle(fallback string) string {
	if t.Title != "" {
		return t.Title
	}
	return fallback
}
