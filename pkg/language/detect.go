// Package language は言語検出と中国語への翻訳を提供します。
//
// どちらも「外部AI能力が使えればそれを、だめならヒューリスティック／
// 素通し」という多段フォールバックで動き、失敗がパイプラインの外へ
// 伝播することはありません。
package language

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/shouni/go-ai-client/v2/pkg/ai/gemini"
	"golang.org/x/time/rate"
)

const (
	// TagChinese は簡体字中国語の言語タグです。
	TagChinese = "zh-cn"
	// TagUnknown は判定不能を表すタグです。空文字列は返しません。
	TagUnknown = "unknown"
)

// Detector はテキストの言語タグを返します。
type Detector interface {
	Detect(ctx context.Context, text string) (string, error)
}

// HeuristicDetector はCJK統合漢字（U+4E00〜U+9FFF）の有無だけで判定する、
// 常に利用可能な最終フォールバックです。失敗しません。
type HeuristicDetector struct{}

// Detect は漢字を1文字でも含めば zh-cn、なければ unknown を返します。
func (HeuristicDetector) Detect(_ context.Context, text string) (string, error) {
	for _, r := range text {
		if r >= 0x4E00 && r <= 0x9FFF {
			return TagChinese, nil
		}
	}
	return TagUnknown, nil
}

var langTagRegex = regexp.MustCompile(`^[a-z]{2,3}(-[a-z]{2,4})?$`)

// GeminiDetector は Gemini に言語コードを答えさせる検出能力です。
type GeminiDetector struct {
	client  gemini.GenerativeModel
	model   string
	limiter *rate.Limiter
	timeout time.Duration
}

// NewGeminiDetector は GeminiDetector を生成します。
func NewGeminiDetector(client gemini.GenerativeModel, model string, limiter *rate.Limiter, timeout time.Duration) *GeminiDetector {
	return &GeminiDetector{client: client, model: model, limiter: limiter, timeout: timeout}
}

// Detect は言語コードのみを返すようモデルに指示し、応答を検証します。
// 応答が言語タグとして解釈できない場合はエラーを返し、呼び出し側の
// チェーンに次の手段へ進ませます。
func (d *GeminiDetector) Detect(ctx context.Context, text string) (string, error) {
	var sb strings.Builder
	sb.WriteString("识别以下文本的语言。只返回 ISO 639-1 语言代码本身（简体中文返回 zh-cn），不要输出任何解释。\n\n")
	sb.WriteString("### TEXT ###\n")
	sb.WriteString(truncateText(text, 500))

	raw, err := generateText(ctx, d.client, d.model, sb.String(), d.limiter, d.timeout)
	if err != nil {
		return "", err
	}

	tag := strings.ToLower(strings.Trim(strings.TrimSpace(raw), "`\"'"))
	if !langTagRegex.MatchString(tag) {
		return "", fmt.Errorf("言語タグとして解釈できない応答です: %q", truncateText(raw, 40))
	}
	return tag, nil
}

// ChainDetector は検出手段を順に試すフォールバックチェーンです。
// 途中の失敗は警告ログを出して吸収し、どの手段も答えを出せなければ
// unknown を返します。エラーは決して返しません。
type ChainDetector struct {
	detectors []Detector
}

// NewChainDetector は与えられた順で試す ChainDetector を生成します。
func NewChainDetector(detectors ...Detector) *ChainDetector {
	return &ChainDetector{detectors: detectors}
}

// Detect はチェーンを先頭から評価し、最初に得られたタグを返します。
func (c *ChainDetector) Detect(ctx context.Context, text string) (string, error) {
	for _, d := range c.detectors {
		tag, err := d.Detect(ctx, text)
		if err != nil {
			slog.Warn("言語検出の手段が失敗しました。次の手段に進みます", "error", err)
			continue
		}
		if tag != "" {
			return tag, nil
		}
	}
	return TagUnknown, nil
}

// truncateText はログやプロンプト用にテキストを安全に切り詰めます。
func truncateText(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
