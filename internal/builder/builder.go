package builder

import (
	"context"
	"fmt"

	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/internal/runner"
	"github.com/shouni/go-comic-kit/pkg/language"
	"github.com/shouni/go-comic-kit/pkg/layout"
	"github.com/shouni/go-comic-kit/pkg/publisher"
	"github.com/shouni/go-comic-kit/pkg/render"

	"github.com/shouni/go-ai-client/v2/pkg/ai/gemini"
	"github.com/shouni/go-web-exact/v2/pkg/extract"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// InitializeAIClient は gemini クライアントを初期化します。
func InitializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	const defaultGeminiTemperature = float32(0.2)
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// newAILimiter は翻訳・言語検出で共有するレートリミッターを生成するのだ。
func newAILimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(config.DefaultRateInterval), config.DefaultRateBurst)
}

// BuildTranslator は中国語化の翻訳機を構築するのだ。
// AIクライアントが無ければヒューリスティック検出＋素通しの構成になる。
func BuildTranslator(appCtx *AppContext) *language.ChineseTranslator {
	if appCtx.aiClient == nil {
		return language.NewChineseTranslator(language.HeuristicDetector{}, nil)
	}

	limiter := newAILimiter()
	model := appCtx.Config.GeminiModel

	detector := language.NewChainDetector(
		language.NewGeminiDetector(appCtx.aiClient, model, limiter, config.DefaultAITimeout),
		language.HeuristicDetector{},
	)
	capability := language.NewGeminiTranslator(appCtx.aiClient, model, limiter, config.DefaultAITimeout)

	return language.NewChineseTranslator(detector, capability)
}

// BuildScriptRunner は物語テキストから台本を作る Runner を構築するのだ。
func BuildScriptRunner(appCtx *AppContext) (*runner.ComicScriptRunner, error) {
	extractor, err := extract.NewExtractor(appCtx.httpClient)
	if err != nil {
		return nil, fmt.Errorf("エクストラクターの初期化に失敗したのだ: %w", err)
	}

	return runner.NewComicScriptRunner(
		appCtx.Options,
		extractor,
		BuildTranslator(appCtx),
		appCtx.Reader,
	), nil
}

// BuildRenderRunner はパネル割りと描画を担当する Runner を構築するのだ。
// --text-only ならテキストレンダラー、それ以外はフォントを解決して
// 画像レンダラーを組み立てる。
func BuildRenderRunner(appCtx *AppContext) (*runner.RenderRunner, error) {
	opts := appCtx.Options
	planner := layout.NewPlanner(layout.Policy(opts.Layout), opts.ChunkSize, opts.Title)

	if opts.TextOnly {
		return runner.NewRenderRunner(planner, render.NewTextRenderer(0)), nil
	}

	fontPath := opts.FontPath
	if fontPath == "" {
		fontPath = appCtx.Config.FontPath
	}
	font, err := render.LoadFont(fontPath)
	if err != nil {
		return nil, fmt.Errorf("フォントの解決に失敗したのだ: %w", err)
	}

	return runner.NewRenderRunner(planner, render.NewImageRenderer(font)), nil
}

// BuildPublisherRunner は成果物の保存を行う Runner を構築するのだ。
func BuildPublisherRunner(appCtx *AppContext) *runner.PublishRunner {
	return runner.NewPublishRunner(
		publisher.NewComicPublisher(appCtx.Writer),
		appCtx.Options.OutputDir,
	)
}
