package render

import (
	"strings"
	"unicode/utf8"
)

// Measurer は文字列の描画幅を返す関数です。画像レンダラーはフォントの
// 実測幅を、テキストレンダラーは文字数を幅として使います。
type Measurer func(string) float64

// Wrap はテキストを貪欲法で折り返します。既存の改行はハード改行として
// 尊重し、空行も保持します。対象が中国語（単語間に空白がない文字体系）
// であるため、折り返しは単語単位ではなく1文字単位で行います。
// 最後の行が未満行でも必ず出力されます。
func Wrap(text string, measure Measurer, maxWidth float64) string {
	var lines []string

	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			lines = append(lines, "")
			continue
		}

		line := ""
		for _, r := range raw {
			candidate := line + string(r)
			// 空行への1文字目は幅超過でも必ず置く（無限ループ防止）
			if line == "" || measure(candidate) <= maxWidth {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = string(r)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// RuneCountMeasurer は1文字を幅1と数える固定幅メジャラーを返します。
func RuneCountMeasurer() Measurer {
	return func(s string) float64 {
		return float64(utf8.RuneCountInString(s))
	}
}
