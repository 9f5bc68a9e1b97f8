package dat

import (
	"testing"

	"golang.org/x/text/encoding/japanese"
)

func TestDecode_EUCJP(t *testing.T) {
	want := "1<>名無しさん<>sage<>日時<>本文<>タイトル<>ID"
	encoded, err := japanese.EUCJP.NewEncoder().String(want)
	if err != nil {
		t.Fatalf("テストデータのEUC-JP変換に失敗しました: %v", err)
	}

	got, err := Decode([]byte(encoded), japanese.EUCJP)
	if err != nil {
		t.Fatalf("Decodeが予期せぬエラーを返しました: %v", err)
	}
	if got != want {
		t.Errorf("Decode() = %q, want %q", got, want)
	}
}

func TestDecode_DropsInvalidBytes(t *testing.T) {
	got, err := Decode([]byte("abc\xffdef"), japanese.EUCJP)
	if err != nil {
		t.Fatalf("不正なバイト列でエラーになってはいけません: %v", err)
	}
	if got != "abcdef" {
		t.Errorf("Decode() = %q, want %q", got, "abcdef")
	}
}

func TestGetEncoding(t *testing.T) {
	for _, name := range []string{"euc-jp", "EUC-JP", "shift_jis", "utf-8", "iso-2022-jp"} {
		if _, err := GetEncoding(name); err != nil {
			t.Errorf("GetEncoding(%q) が予期せぬエラーを返しました: %v", name, err)
		}
	}
	if _, err := GetEncoding("no-such-encoding"); err == nil {
		t.Error("未知の文字コード名はエラーになるべきです。")
	}
}
