package cmd

import (
	"fmt"

	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/pkg/layout"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は全サブコマンドで共有する実行時オプションなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.StoryFile, "story-file", "f", "", "物語ファイルのパス（'-'で標準入力なのだ）。")
	rootCmd.PersistentFlags().StringVarP(&opts.StoryURL, "story-url", "u", "", "Webページから物語を取得するためのURLなのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.UseDemo, "demo", false, "組み込みのデモ物語を使うのだ。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultOutputDir, "保存先ディレクトリ（ローカル or gs://...）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.FontPath, "font", "", "描画に使うTTFフォントのパスなのだ（未指定ならシステムから探すのだ）。")
	rootCmd.PersistentFlags().StringVarP(&opts.Title, "title", "t", "", "作品タイトルなのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.TextOnly, "text-only", false, "PNGの代わりにテキストのパネルを出力するのだ。")

	// --- レイアウト設定 ---
	rootCmd.PersistentFlags().IntVar(&opts.ChunkSize, "chunk-size", config.DefaultChunkSize, "1パネルにまとめる最大セリフ数なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.Layout, "layout", "l", config.DefaultLayout, "パネル割りの方式（grouped or per-line）なのだ。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.AIModel, "model", config.DefaultModel, "翻訳・言語検出に使う Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")

	// --- render コマンド固有設定 ---
	renderCmd.Flags().StringVarP(&opts.ScriptFile, "script-file", "s", config.DefaultScriptFile, "読み直す台本Markdownのパスなのだ。")
}

// preRunAppE は、コマンド実行前にフラグの整合性チェックを行うのだ。
// GEMINI_API_KEY は任意なのだ（無ければ翻訳なしの素通しで動くのだよ）。
func preRunAppE(cmd *cobra.Command, args []string) error {
	if opts.ChunkSize <= 0 {
		return fmt.Errorf("エラー: --chunk-size は1以上を指定してほしいのだ")
	}
	switch layout.Policy(opts.Layout) {
	case layout.PolicyGrouped, layout.PolicyPerLine:
	default:
		return fmt.Errorf("エラー: --layout は grouped か per-line を指定してほしいのだ（指定値: %s）", opts.Layout)
	}
	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"comic-kit",
		addAppFlags,
		preRunAppE,
		generateCmd,
		scriptCmd,
		renderCmd,
	)
}
