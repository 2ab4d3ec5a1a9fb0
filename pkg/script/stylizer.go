package script

import (
	"github.com/shouni/go-comic-kit/pkg/domain"
)

// DefaultSpeakers は話者のローテーション表です。文の位置 i に対して
// i mod len(DefaultSpeakers) 番目の話者が割り当てられます。
var DefaultSpeakers = []string{
	"小未来",
	"知性猫",
	"AI讲解员",
	"热血同学",
	"好奇老师",
}

// DefaultStyles はスタイルタグのローテーション表です。
var DefaultStyles = []string{
	"闪光特写",
	"Q版吐槽",
	"充满元气地",
	"背景音飘过",
	"热血BGM起",
	"小剧场旁白",
}

// styleSuffixes はスタイルごとのフレーバー文です。表にないスタイルは
// ナレーション扱いになるため、この変換は全域関数です。
var styleSuffixes = map[string]string{
	"充满元气地": "！！让梦想燃烧吧",
	"热血BGM起": "！！让梦想燃烧吧",
	"Q版吐槽":  "～（啾咪）",
}

// narrativeSuffix は未知スタイルを含むナレーション系のフレーバー文です。
const narrativeSuffix = "……（场景切换）"

// Stylizer は文の列にローテーション式で話者とスタイルを割り当てます。
// 割り当ては位置の純関数であり、内部状態を持ちません。
type Stylizer struct {
	speakers []string
	styles   []string
}

// NewStylizer は既定の話者・スタイル表を持つ Stylizer を生成します。
func NewStylizer() *Stylizer {
	return &Stylizer{
		speakers: DefaultSpeakers,
		styles:   DefaultStyles,
	}
}

// SpeakerAt は位置 i の話者を返します。
func (s *Stylizer) SpeakerAt(i int) string {
	return s.speakers[i%len(s.speakers)]
}

// StyleAt は位置 i のスタイルタグを返します。
func (s *Stylizer) StyleAt(i int) string {
	return s.styles[i%len(s.styles)]
}

// Stylize は文の列をセリフの列に変換します。順序は保存されます。
func (s *Stylizer) Stylize(sentences []string) []domain.DialogueLine {
	lines := make([]domain.DialogueLine, 0, len(sentences))
	for i, sentence := range sentences {
		style := s.StyleAt(i)
		lines = append(lines, domain.DialogueLine{
			Speaker: s.SpeakerAt(i),
			Style:   style,
			Text:    Flavor(sentence, style),
		})
	}
	return lines
}

// Flavor は文にスタイル固有のフレーバー文を付け足します。
func Flavor(sentence, style string) string {
	if suffix, ok := styleSuffixes[style]; ok {
		return sentence + suffix
	}
	return sentence + narrativeSuffix
}
