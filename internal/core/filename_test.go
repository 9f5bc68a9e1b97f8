package core

import "testing"

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "URLエンコードされた板とスレッド", input: "anime%2F11188_1716630941.dat", expected: "11188_1716630941.html"},
		{name: "ホスト名付き", input: "jbbs.livedoor.jp%2Fanime%2F11188_1716630941.dat", expected: "11188_1716630941.html"},
		{name: "区切りなし", input: "thread.dat", expected: "thread.html"},
		{name: "デコード後の名前を使う", input: "a%2Cb.dat", expected: "a,b.html"},
		{name: "不正なエスケープ", input: "bad%zz.dat", expected: "bad%zz.html"},
		{name: "使えない文字の置換", input: "a%3Ab.dat", expected: "a：b.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputFileName(tt.input); got != tt.expected {
				t.Errorf("OutputFileName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFallbackTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "デコードされた名前全体", input: "jbbs.livedoor.jp%2Fanime%2F11188_1716630941.dat", expected: "jbbs.livedoor.jp/anime/11188_1716630941"},
		{name: "名前が空なら既定のタイトル", input: ".dat", expected: "既定"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FallbackTitle(tt.input, "既定"); got != tt.expected {
				t.Errorf("FallbackTitle(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
