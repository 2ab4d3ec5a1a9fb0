package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// scriptCmd は、台本Markdownの生成のみを実行するのだ。
var scriptCmd = &cobra.Command{
	Use:   "script [story]",
	Short: "台本Markdownのみを生成して保存するのだ。",
	Long: `物語テキストを中国語化して文に分け、話者とスタイルを割り当てた台本を
Markdown形式で出力するのだ。パネルの描画は行わないのだよ。`,
	Args: cobra.MaximumNArgs(1),
	RunE: scriptCommand,
}

func scriptCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) > 0 {
		opts.Story = args[0]
	}

	// 1. 入力ソースの解決チェック (opts は addAppFlags で紐付け済みと想定)
	if !hasStorySource() {
		if isStdin() {
			opts.StoryFile = "-"
		} else {
			return fmt.Errorf("物語ソース（引数、--story-file、--story-url、--demo のいずれか）を指定してほしいのだ")
		}
	}

	// 2. 設定のロード
	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.Options = opts

	slog.Info("台本生成モードを起動するのだ！",
		"text_model", cfg.GeminiModel,
		"output", opts.OutputDir)

	// 3. 実行
	if err := pipeline.ExecuteScriptOnly(ctx, cfg); err != nil {
		return fmt.Errorf("台本生成中にエラーが発生したのだ: %w", err)
	}

	slog.Info("台本の生成が完了したのだ！")
	return nil
}
