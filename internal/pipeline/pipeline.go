package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shouni/go-comic-kit/internal/builder"
	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/parser"
	"github.com/shouni/go-comic-kit/pkg/publisher"

	"github.com/shouni/go-ai-client/v2/pkg/ai/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
)

// Execute は、物語テキストから台本化・描画・保存までの全工程を実行するのだ。
func Execute(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	// --- Phase 1: Script Phase (台本化) ---
	comic, err := runScriptStep(ctx, appCtx)
	if err != nil {
		return err
	}

	// --- Phase 2: Render Phase (パネル描画) ---
	artifacts, err := runRenderStep(ctx, appCtx, comic)
	if err != nil {
		return err
	}

	// --- Phase 3: Publish Phase (保存) ---
	result, err := runPublishStep(ctx, appCtx, comic, artifacts)
	if err != nil {
		return err
	}

	printResult(result)
	slog.Info("台本化・描画・保存のすべてが完了したのだ！")
	return nil
}

// ExecuteScriptOnly は、台本Markdownの生成と保存だけを実行するのだ。
// 描画は行わないので、フォントもCanvasも要らないのだよ。
func ExecuteScriptOnly(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	comic, err := runScriptStep(ctx, appCtx)
	if err != nil {
		return err
	}

	publishRunner := builder.BuildPublisherRunner(appCtx)
	scriptPath, err := publishRunner.RunScriptOnly(ctx, comic)
	if err != nil {
		return fmt.Errorf("台本の保存に失敗したのだ: %w", err)
	}

	fmt.Println(scriptPath)
	slog.Info("台本の生成が完了したのだ！", "path", scriptPath)
	return nil
}

// ExecuteRenderOnly は、保存済みの台本Markdownを読み直して描画・保存だけを
// 実行するのだ。台本生成のコストを抑えつつ、配色やレイアウトの調整を
// やり直したい場合に便利なのだ。
func ExecuteRenderOnly(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	rc, err := appCtx.Reader.Open(ctx, cfg.Options.ScriptFile)
	if err != nil {
		return fmt.Errorf("台本ファイル '%s' の読み込みに失敗したのだ: %w", cfg.Options.ScriptFile, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}

	comic, err := parser.NewMarkdownParser().Parse(string(data))
	if err != nil {
		return fmt.Errorf("台本ファイル '%s' の解析に失敗したのだ: %w", cfg.Options.ScriptFile, err)
	}

	artifacts, err := runRenderStep(ctx, appCtx, *comic)
	if err != nil {
		return err
	}

	result, err := runPublishStep(ctx, appCtx, *comic, artifacts)
	if err != nil {
		return err
	}

	printResult(result)
	slog.Info("再描画が完了したのだ！")
	return nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、
// アプリケーションコンテキストを初期化して返すのだ。
// GEMINI_API_KEY が無い、またはAIクライアントの初期化に失敗した場合は、
// 翻訳能力なし（素通し）で続行するのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	timeout := cfg.Options.HTTPTimeout
	if timeout <= 0 {
		timeout = config.DefaultHTTPTimeout
	}
	httpClient := httpkit.New(timeout)

	var aiClient gemini.GenerativeModel
	if cfg.GeminiAPIKey == "" {
		slog.Info("GEMINI_API_KEY が未設定のため、翻訳能力なしで進めるのだ")
	} else {
		client, err := builder.InitializeAIClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			slog.Warn("AIクライアントの初期化に失敗したのだ。翻訳なしで続行するのだ", "error", err)
		} else {
			aiClient = client
		}
	}

	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	appCtx := builder.NewAppContext(cfg, httpClient, aiClient, reader, writer)
	return &appCtx, nil
}

// runScriptStep は ComicScriptRunner を使って物語テキストを台本化するのだ。
func runScriptStep(ctx context.Context, appCtx *builder.AppContext) (domain.ComicScript, error) {
	slog.Info("Phase 1: 台本化を開始するのだ...")
	scriptRunner, err := builder.BuildScriptRunner(appCtx)
	if err != nil {
		return domain.ComicScript{}, fmt.Errorf("ScriptRunnerの構築に失敗したのだ: %w", err)
	}

	comic, err := scriptRunner.Run(ctx)
	if err != nil {
		return domain.ComicScript{}, fmt.Errorf("台本化に失敗したのだ: %w", err)
	}
	return comic, nil
}

// runRenderStep は RenderRunner を使って全パネルを描画するのだ。
func runRenderStep(ctx context.Context, appCtx *builder.AppContext, comic domain.ComicScript) ([]domain.Artifact, error) {
	slog.Info("Phase 2: パネル描画を開始するのだ...", "lines", len(comic.Lines))
	renderRunner, err := builder.BuildRenderRunner(appCtx)
	if err != nil {
		return nil, fmt.Errorf("RenderRunnerの構築に失敗したのだ: %w", err)
	}

	artifacts, err := renderRunner.Run(ctx, comic)
	if err != nil {
		return nil, fmt.Errorf("パネル描画に失敗したのだ: %w", err)
	}
	return artifacts, nil
}

// runPublishStep は PublishRunner を使って台本と成果物を保存するのだ。
func runPublishStep(ctx context.Context, appCtx *builder.AppContext, comic domain.ComicScript, artifacts []domain.Artifact) (publisher.PublishResult, error) {
	slog.Info("Phase 3: 保存処理を開始するのだ...", "artifacts", len(artifacts))
	publishRunner := builder.BuildPublisherRunner(appCtx)

	result, err := publishRunner.Run(ctx, comic, artifacts)
	if err != nil {
		return publisher.PublishResult{}, fmt.Errorf("保存処理に失敗したのだ: %w", err)
	}
	return result, nil
}

// printResult は保存されたファイルのパスを標準出力に並べるのだ。
func printResult(result publisher.PublishResult) {
	for _, path := range result.ArtifactPaths {
		fmt.Println(path)
	}
	fmt.Println(result.ScriptPath)
}
