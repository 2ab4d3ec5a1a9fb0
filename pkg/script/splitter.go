// Package script は物語テキストを文単位に分割し、アニメ風のセリフへ変換します。
package script

import (
	"strings"
	"unicode"
)

// sentenceEnders は文境界となる終端記号の集合です。
// 記号は直前の文に残したまま、その直後で分割します。
var sentenceEnders = map[rune]struct{}{
	'。': {},
	'！': {},
	'？': {},
	'!':  {},
	'?':  {},
	'.':  {},
}

// SplitSentences はテキストを文の列に分割します。
// 連続する空白（改行含む）は半角スペース1個に正規化され、終端記号のない
// テキストは全体が1文として扱われます。分割は状態を持たず冪等です。
func SplitSentences(text string) []string {
	normalized := normalizeWhitespace(text)
	if normalized == "" {
		return nil
	}

	var sentences []string
	var buf strings.Builder

	flush := func() {
		s := strings.TrimSpace(buf.String())
		if s != "" && !punctuationOnly(s) {
			sentences = append(sentences, s)
		}
		buf.Reset()
	}

	for _, r := range normalized {
		buf.WriteRune(r)
		if _, ok := sentenceEnders[r]; ok {
			flush()
		}
	}
	flush()

	return sentences
}

// punctuationOnly は文が終端記号だけで構成されているかを判定します。
// 記号だけの断片は文として意味を持たないため捨てます。
func punctuationOnly(s string) bool {
	for _, r := range s {
		if _, ok := sentenceEnders[r]; !ok {
			return false
		}
	}
	return true
}

// normalizeWhitespace は空白の連続を単一スペースにまとめ、前後をトリムします。
func normalizeWhitespace(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}

	return b.String()
}
