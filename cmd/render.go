package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// renderCmd は、保存済みの台本Markdownを読み直して描画フェーズだけを実行する
// ためのサブコマンドなのだ。台本生成をスキップして、レイアウトや配色の
// 調整をやり直したい場合に便利なのだ。
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "保存済みの台本Markdownからパネルを描画するのだ。",
	Long: `すでに生成・修正済みの台本Markdown（comic_plot.md）を読み込み、
パネルの割り付けと描画・保存を実行するのだ。翻訳やAI呼び出しは行わないのだよ。`,
	RunE: renderCommand,
}

func renderCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 必須となる入力ファイルの存在チェック
	if opts.ScriptFile == "" {
		return fmt.Errorf("読み込む台本Markdown（--script-file）を指定してほしいのだ")
	}

	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("再描画モードを起動するのだ！",
		"input_script", opts.ScriptFile,
		"layout", opts.Layout,
		"output", opts.OutputDir)

	if err := pipeline.ExecuteRenderOnly(ctx, cfg); err != nil {
		return fmt.Errorf("再描画中にエラーが発生したのだ: %w", err)
	}

	slog.Info("再描画が完了したのだ！")
	return nil
}
