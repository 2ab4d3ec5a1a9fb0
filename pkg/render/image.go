package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

// キャンバス寸法とレイアウト定数。
const (
	canvasWidth  = 1200
	canvasHeight = 900
	canvasMargin = 60
	borderWidth  = 6
	textInset    = 24

	titleFontSize = 48
	bodyFontSize  = 32
	labelFontSize = 24
	lineSpacing   = 1.6
	titleGap      = 72 // タイトル基線から本文1行目までの距離
)

// ImageRenderer はパネルをPNG画像として描画します。
type ImageRenderer struct {
	font *truetype.Font
}

// NewImageRenderer は解決済みフォントを使う ImageRenderer を生成します。
func NewImageRenderer(font *truetype.Font) *ImageRenderer {
	return &ImageRenderer{font: font}
}

// Render はキャンバスを確保してコマ枠・タイトル・折り返した本文・
// スタイルラベルを描画し、PNGの成果物を返します。
func (r *ImageRenderer) Render(panel domain.Panel, index int) (domain.Artifact, error) {
	dc := gg.NewContext(canvasWidth, canvasHeight)

	// 背景とコマ枠（パネル色で塗り、黒で縁取る）
	dc.SetRGB255(250, 250, 250)
	dc.Clear()
	dc.DrawRectangle(canvasMargin, canvasMargin,
		canvasWidth-2*canvasMargin, canvasHeight-2*canvasMargin)
	dc.SetRGB255(int(panel.Color.R), int(panel.Color.G), int(panel.Color.B))
	dc.FillPreserve()
	dc.SetRGB255(0, 0, 0)
	dc.SetLineWidth(borderWidth)
	dc.Stroke()

	// タイトル
	dc.SetFontFace(truetype.NewFace(r.font, &truetype.Options{Size: titleFontSize}))
	dc.SetRGB255(0, 0, 0)
	titleBaseline := float64(canvasMargin + 18 + titleFontSize)
	dc.DrawString(panel.Title, canvasMargin+textInset, titleBaseline)

	// 本文：フォント実測幅のメジャラーで内側幅に折り返す
	dc.SetFontFace(truetype.NewFace(r.font, &truetype.Options{Size: bodyFontSize}))
	innerWidth := float64(canvasWidth - 2*canvasMargin - 2*textInset)
	measure := func(s string) float64 {
		w, _ := dc.MeasureString(s)
		return w
	}
	wrapped := Wrap(panel.Body(), measure, innerWidth)

	dc.SetRGB255(15, 15, 15)
	y := titleBaseline + titleGap
	for _, line := range strings.Split(wrapped, "\n") {
		dc.DrawString(line, canvasMargin+textInset, y)
		y += bodyFontSize * lineSpacing
	}

	// スタイルラベル（右下隅、半透明）
	if label := panel.StyleLabel(); label != "" {
		dc.SetFontFace(truetype.NewFace(r.font, &truetype.Options{Size: labelFontSize}))
		dc.SetRGBA(0, 0, 0, 0.5)
		w, _ := dc.MeasureString(label)
		dc.DrawString(label,
			canvasWidth-canvasMargin-textInset-w,
			canvasHeight-canvasMargin-textInset)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return domain.Artifact{}, fmt.Errorf("PNGエンコードに失敗しました: %w", err)
	}

	return domain.Artifact{
		Name: ArtifactName(index, "png"),
		MIME: "image/png",
		Data: buf.Bytes(),
	}, nil
}
