package language

import (
	"context"
	"errors"
	"testing"
)

// fakeDetector はテスト用の固定応答 Detector です。
type fakeDetector struct {
	tag string
	err error
}

func (f fakeDetector) Detect(_ context.Context, _ string) (string, error) {
	return f.tag, f.err
}

func TestHeuristicDetector(t *testing.T) {
	d := HeuristicDetector{}
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"漢字を含むテキストは zh-cn になること", "今天天气很好", TagChinese},
		{"漢字が1文字でもあれば zh-cn になること", "hello 世界 world", TagChinese},
		{"ラテン文字のみは unknown になること", "Once upon a time.", TagUnknown},
		{"空文字列は unknown になること", "", TagUnknown},
		{"ひらがなだけでは zh-cn にならないこと", "こんにちは", TagUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Detect(ctx, tt.input)
			if err != nil {
				t.Fatalf("ヒューリスティック検出は失敗しないはず: %v", err)
			}
			if got != tt.want {
				t.Errorf("期待値 %q, 実際の値 %q", tt.want, got)
			}
		})
	}
}

func TestChainDetector(t *testing.T) {
	ctx := context.Background()

	t.Run("先頭の手段が失敗しても次の手段に進むこと", func(t *testing.T) {
		chain := NewChainDetector(
			fakeDetector{err: errors.New("capability down")},
			HeuristicDetector{},
		)
		got, err := chain.Detect(ctx, "你好")
		if err != nil {
			t.Fatalf("チェーンはエラーを伝播しないはず: %v", err)
		}
		if got != TagChinese {
			t.Errorf("期待値 %q, 実際の値 %q", TagChinese, got)
		}
	})

	t.Run("先頭の手段が成功すればその結果を使うこと", func(t *testing.T) {
		chain := NewChainDetector(
			fakeDetector{tag: "fr"},
			HeuristicDetector{},
		)
		got, _ := chain.Detect(ctx, "你好")
		if got != "fr" {
			t.Errorf("期待値 %q, 実際の値 %q", "fr", got)
		}
	})

	t.Run("全手段が失敗したら unknown になること", func(t *testing.T) {
		chain := NewChainDetector(
			fakeDetector{err: errors.New("one")},
			fakeDetector{err: errors.New("two")},
		)
		got, err := chain.Detect(ctx, "text")
		if err != nil {
			t.Fatalf("チェーンはエラーを伝播しないはず: %v", err)
		}
		if got != TagUnknown {
			t.Errorf("期待値 %q, 実際の値 %q", TagUnknown, got)
		}
	})
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("漢字四文字", 3); got != "漢字四..." {
		t.Errorf("ルーン単位で切り詰められていない: %q", got)
	}
	if got := truncateText("short", 10); got != "short" {
		t.Errorf("短いテキストが変更された: %q", got)
	}
}
