package runner

import (
	"context"

	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/publisher"
)

// PublishRunner は生成された台本と成果物の保存を担う Runner なのだ。
type PublishRunner struct {
	pub       *publisher.ComicPublisher
	outputDir string
}

// NewPublishRunner は PublishRunner の新しいインスタンスを生成して返すのだ。
func NewPublishRunner(pub *publisher.ComicPublisher, outputDir string) *PublishRunner {
	return &PublishRunner{pub: pub, outputDir: outputDir}
}

// Run は台本Markdownと全パネル成果物を出力先に保存するのだ。
func (pr *PublishRunner) Run(ctx context.Context, comic domain.ComicScript, artifacts []domain.Artifact) (publisher.PublishResult, error) {
	return pr.pub.Publish(ctx, comic, artifacts, publisher.Options{OutputDir: pr.outputDir})
}

// RunScriptOnly は台本Markdownだけを保存し、そのパスを返すのだ。
func (pr *PublishRunner) RunScriptOnly(ctx context.Context, comic domain.ComicScript) (string, error) {
	return pr.pub.PublishScript(ctx, comic, publisher.Options{OutputDir: pr.outputDir})
}
