package language

import (
	"context"
	"fmt"
	"time"

	"github.com/shouni/go-ai-client/v2/pkg/ai/gemini"
	"golang.org/x/time/rate"
)

// generateText は Gemini 呼び出しの共通経路です。タイムアウトと
// レートリミットをここで一括して適用します。タイムアウト切れは
// 能力が使えない場合と同じ扱い（エラーを返して上位でフォールバック）です。
func generateText(ctx context.Context, client gemini.GenerativeModel, model, prompt string, limiter *rate.Limiter, timeout time.Duration) (string, error) {
	if client == nil {
		return "", fmt.Errorf("AIクライアントが設定されていません")
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("レートリミット待機が中断されました: %w", err)
		}
	}

	resp, err := client.GenerateContent(ctx, prompt, model)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
