package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shouni/go-comic-kit/examples"
	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/language"
	"github.com/shouni/go-comic-kit/pkg/layout"
	"github.com/shouni/go-comic-kit/pkg/script"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-web-exact/v2/pkg/extract"
)

// ComicScriptRunner は、物語テキストの取得から台本化までを担う核となる構造体なのだ。
// 取得 → 中国語化 → 文分割 → 話者・スタイル割り当て、の順で進む。
type ComicScriptRunner struct {
	opts       config.GenerateOptions       // 実行時のコマンドライン引数や設定
	extractor  *extract.Extractor           // Webサイトから本文を抽出するエクストラクター
	translator *language.ChineseTranslator  // 中国語化を担う翻訳機（失敗しても素通しで進む）
	reader     remoteio.InputReader         // ローカルやGCSのファイルを読み込むリーダー
	stylizer   *script.Stylizer             // 話者とスタイルをローテーションで割り当てる
}

// NewComicScriptRunner は、ComicScriptRunnerの新しいインスタンスを生成して返すのだ。
func NewComicScriptRunner(
	opts config.GenerateOptions,
	ext *extract.Extractor,
	translator *language.ChineseTranslator,
	r remoteio.InputReader,
) *ComicScriptRunner {
	return &ComicScriptRunner{
		opts:       opts,
		extractor:  ext,
		translator: translator,
		reader:     r,
		stylizer:   script.NewStylizer(),
	}
}

// Run は、入力ソースの読み込みから台本の完成までを一気に行うのだ。
func (sr *ComicScriptRunner) Run(ctx context.Context) (domain.ComicScript, error) {
	story, err := sr.readStory(ctx)
	if err != nil {
		return domain.ComicScript{}, err
	}

	translated := sr.translator.TranslateToChinese(ctx, story)

	sentences := script.SplitSentences(translated)
	if len(sentences) == 0 {
		return domain.ComicScript{}, fmt.Errorf("物語から有効な文を1つも抽出できなかったのだ")
	}

	title := sr.opts.Title
	if title == "" {
		title = layout.DefaultTitle
	}

	lines := sr.stylizer.Stylize(sentences)
	slog.Info("台本が完成したのだ", "title", title, "sentences", len(sentences))

	return domain.ComicScript{Title: title, Lines: lines}, nil
}

// readStory は、優先順位に従って物語テキストを取得するのだ。
// 位置引数 → ファイル（'-'は標準入力）→ URL → デモ素材、の順で解決する。
func (sr *ComicScriptRunner) readStory(ctx context.Context) (string, error) {
	switch {
	case sr.opts.Story != "":
		return sr.opts.Story, nil

	case sr.opts.StoryFile == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("標準入力の読み込みに失敗したのだ: %w", err)
		}
		return string(data), nil

	case sr.opts.StoryFile != "":
		rc, err := sr.reader.Open(ctx, sr.opts.StoryFile)
		if err != nil {
			return "", fmt.Errorf("物語ファイル '%s' の読み込みに失敗したのだ: %w", sr.opts.StoryFile, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case sr.opts.StoryURL != "":
		text, _, err := sr.extractor.FetchAndExtractText(ctx, sr.opts.StoryURL)
		if err != nil {
			return "", fmt.Errorf("URL '%s' からの本文抽出に失敗したのだ: %w", sr.opts.StoryURL, err)
		}
		return text, nil

	case sr.opts.UseDemo:
		slog.Info("デモ用の物語テキストを使うのだ")
		return examples.DemoStory(), nil
	}

	return "", fmt.Errorf("物語ソース（引数、--story-file、--story-url、--demo のいずれか）を指定してほしいのだ")
}
