// Package render はパネルをPNG画像またはプレーンテキストの成果物に描画します。
//
// 画像とテキストは表現が異なるだけで、タイトル・話者・スタイル・セリフという
// 情報内容は常に一致します。どちらを使うかは構築時に選択され、
// パイプライン本体はこの選択を意識しません。
package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

// PanelRenderer は1枚のパネルを成果物に変換します。
type PanelRenderer interface {
	Render(panel domain.Panel, index int) (domain.Artifact, error)
}

// ErrNoPanels は空のパネル列に対して描画が要求されたことを示します。
// 黙って0ファイルを出力する代わりに、この操作は拒否されます。
var ErrNoPanels = errors.New("render: 描画対象のパネルがありません")

// RenderAll は全パネルを順番どおりに描画します。成果物の順序はパネルの
// 順序と一致します。
func RenderAll(ctx context.Context, r PanelRenderer, panels []domain.Panel) ([]domain.Artifact, error) {
	if len(panels) == 0 {
		return nil, ErrNoPanels
	}

	artifacts := make([]domain.Artifact, 0, len(panels))
	for i, panel := range panels {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		artifact, err := r.Render(panel, i)
		if err != nil {
			return nil, fmt.Errorf("パネル %d の描画に失敗しました: %w", i+1, err)
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

// ArtifactName はゼロ埋め連番付きの衝突しない成果物名を返します。
func ArtifactName(index int, ext string) string {
	return fmt.Sprintf("panel_%02d.%s", index+1, ext)
}
