package language

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-ai-client/v2/pkg/ai/gemini"
	"golang.org/x/time/rate"
)

// Capability は翻訳能力です。能力は失敗してよく、失敗は呼び出し側で
// 素通しにフォールバックされます。
type Capability interface {
	Translate(ctx context.Context, text string) (string, error)
}

// GeminiTranslator は Gemini による簡体字中国語への翻訳能力です。
type GeminiTranslator struct {
	client  gemini.GenerativeModel
	model   string
	limiter *rate.Limiter
	timeout time.Duration
}

// NewGeminiTranslator は GeminiTranslator を生成します。
func NewGeminiTranslator(client gemini.GenerativeModel, model string, limiter *rate.Limiter, timeout time.Duration) *GeminiTranslator {
	return &GeminiTranslator{client: client, model: model, limiter: limiter, timeout: timeout}
}

// Translate はテキストを簡体字中国語に翻訳します。
func (t *GeminiTranslator) Translate(ctx context.Context, text string) (string, error) {
	var sb strings.Builder
	sb.WriteString("将以下文本翻译成简体中文。只输出译文本身，保留原文的句子结构和标点，不要添加任何解释。\n\n")
	sb.WriteString("### TEXT ###\n")
	sb.WriteString(text)

	raw, err := generateText(ctx, t.client, t.model, sb.String(), t.limiter, t.timeout)
	if err != nil {
		return "", err
	}

	out := strings.TrimSpace(raw)
	if out == "" {
		return "", fmt.Errorf("翻訳結果が空でした")
	}
	return out, nil
}

// ChineseTranslator は検出→翻訳→素通しのポリシーを実装します。
// 入力がすでに中国語なら無変換で返し、能力が無い・失敗した場合も
// 原文を返します。翻訳の有無にかかわらずパイプラインは止まりません。
type ChineseTranslator struct {
	detector   Detector
	capability Capability
	cache      *cache.Cache
}

// NewChineseTranslator は ChineseTranslator を生成します。
// detector が nil の場合はヒューリスティック検出のみ、capability が
// nil の場合は常に素通しになります。
func NewChineseTranslator(detector Detector, capability Capability) *ChineseTranslator {
	if detector == nil {
		detector = HeuristicDetector{}
	}
	return &ChineseTranslator{
		detector:   detector,
		capability: capability,
		cache:      cache.New(30*time.Minute, 10*time.Minute),
	}
}

// TranslateToChinese は物語テキストを簡体字中国語にします。
// この操作は失敗しません。翻訳できなかった場合は原文がそのまま返ります。
func (t *ChineseTranslator) TranslateToChinese(ctx context.Context, text string) string {
	tag, err := t.detector.Detect(ctx, text)
	if err != nil {
		// ChainDetector はエラーを返さないが、任意の Detector 実装に備える
		slog.Warn("言語検出に失敗しました。未知言語として扱います", "error", err)
		tag = TagUnknown
	}

	if strings.HasPrefix(tag, "zh") {
		slog.Info("入力はすでに中国語のため翻訳をスキップします", "tag", tag)
		return text
	}

	if t.capability == nil {
		slog.Info("翻訳能力が未設定のため原文のまま進めます", "tag", tag)
		return text
	}

	key := cacheKey(text)
	if v, ok := t.cache.Get(key); ok {
		slog.Debug("翻訳キャッシュがヒットしました")
		return v.(string)
	}

	out, err := t.capability.Translate(ctx, text)
	if err != nil {
		slog.Warn("翻訳に失敗しました。原文のまま進めます", "error", err)
		return text
	}

	t.cache.Set(key, out, cache.DefaultExpiration)
	return out
}

// cacheKey は入力テキストのハッシュをキャッシュキーにします。
func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
