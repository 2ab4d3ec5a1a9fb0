package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// generateCmd は、物語から漫画パネル一式の生成を実行するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate [story]",
	Short: "物語から漫画パネル一式を生成するのだ。",
	Long: `物語テキストを中国語の台本に変換し、パネルに割り付けて描画するのだ。
出力は台本Markdown（comic_plot.md）とパネルファイル（PNG またはテキスト）になるのだよ。`,
	Args: cobra.MaximumNArgs(1),
	RunE: generateCommand,
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) > 0 {
		opts.Story = args[0]
	}

	// 1. 入力ソースの解決チェック
	if !hasStorySource() {
		if isStdin() {
			// パイプで流し込まれたテキストを物語として扱うのだ
			opts.StoryFile = "-"
		} else {
			return fmt.Errorf("物語ソース（引数、--story-file、--story-url、--demo のいずれか）を指定してほしいのだ")
		}
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.Options = opts

	slog.Info("漫画生成パイプラインを起動するのだ！",
		"layout", opts.Layout,
		"chunk_size", opts.ChunkSize,
		"text_only", opts.TextOnly,
		"output", opts.OutputDir)

	// 3. 更新した config を考慮しつつパイプラインを実行するのだ
	if err := pipeline.Execute(ctx, cfg); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}

// hasStorySource は物語の入力ソースが1つでも指定されているかを返すのだ。
func hasStorySource() bool {
	return opts.Story != "" || opts.StoryFile != "" || opts.StoryURL != "" || opts.UseDemo
}

func isStdin() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
