package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize はシンボル文字列を正規化します。
//
// 以下を順に適用します:
//  1. NFKC 正規化 (全角英数字・記号・全角スペースを半角へ)
//  2. 大文字変換
//  3. 前後の空白除去
//
// 大文字変換の結果が互換文字になる場合に備えて NFKC をもう一度適用するため、
// Normalize(Normalize(x)) == Normalize(x) が成り立ちます。
func Normalize(raw string) string {
	s := norm.NFKC.String(raw)
	s = strings.ToUpper(s)
	if !norm.NFKC.IsNormalString(s) {
		s = norm.NFKC.String(s)
	}
	return strings.TrimSpace(s)
}
