package runner

import (
	"context"
	"log/slog"

	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/layout"
	"github.com/shouni/go-comic-kit/pkg/render"
)

// RenderRunner は台本をパネルに割り、順番どおりに描画する Runner なのだ。
type RenderRunner struct {
	planner  *layout.Planner
	renderer render.PanelRenderer
}

// NewRenderRunner は RenderRunner の新しいインスタンスを生成して返すのだ。
func NewRenderRunner(planner *layout.Planner, renderer render.PanelRenderer) *RenderRunner {
	return &RenderRunner{planner: planner, renderer: renderer}
}

// Run は台本からパネル構成を決め、全パネルを描画して成果物を返すのだ。
// 成果物の順序はパネルの順序と一致する。
func (rr *RenderRunner) Run(ctx context.Context, comic domain.ComicScript) ([]domain.Artifact, error) {
	panels := rr.planner.Plan(comic.Lines)
	slog.Info("パネル構成が決まったのだ", "panels", len(panels), "lines", len(comic.Lines))

	return render.RenderAll(ctx, rr.renderer, panels)
}
