package render

import (
	"strings"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

const (
	// DefaultWrapWidth はテキスト出力1行あたりの既定文字数です。
	DefaultWrapWidth = 36
	separatorWidth   = 40
)

// TextRenderer は画像機能を使わないフォールバックのレンダラーです。
// 同じ情報（タイトル・スタイル・セリフ）を構造化プレーンテキストとして
// 出力します。
type TextRenderer struct {
	wrapWidth int
}

// NewTextRenderer は固定文字数で折り返す TextRenderer を生成します。
func NewTextRenderer(wrapWidth int) *TextRenderer {
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}
	return &TextRenderer{wrapWidth: wrapWidth}
}

// Render はタイトル行・スタイル行・区切り線・折り返した本文・末尾の
// 空行からなるUTF-8テキストの成果物を返します。
func (r *TextRenderer) Render(panel domain.Panel, index int) (domain.Artifact, error) {
	var sb strings.Builder
	sb.WriteString(panel.Title)
	sb.WriteByte('\n')
	sb.WriteString("风格：")
	sb.WriteString(panel.StyleLabel())
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("-", separatorWidth))
	sb.WriteByte('\n')
	sb.WriteString(Wrap(panel.Body(), RuneCountMeasurer(), float64(r.wrapWidth)))
	sb.WriteString("\n\n")

	return domain.Artifact{
		Name: ArtifactName(index, "txt"),
		MIME: "text/plain; charset=utf-8",
		Data: []byte(sb.String()),
	}, nil
}
