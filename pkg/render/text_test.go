package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

func samplePanels(n int) []domain.Panel {
	panels := make([]domain.Panel, 0, n)
	for i := 0; i < n; i++ {
		panels = append(panels, domain.Panel{
			Title: "缤纷动漫课堂 · 第1幕",
			Lines: []domain.DialogueLine{
				{Speaker: "小未来", Style: "闪光特写", Text: "出发。"},
				{Speaker: "知性猫", Style: "Q版吐槽", Text: "又来了～（啾咪）"},
			},
			Color: domain.RGB{R: 247, G: 106, B: 108},
		})
	}
	return panels
}

func TestTextRenderer_Render(t *testing.T) {
	r := NewTextRenderer(36)

	t.Run("Nパネルからちょうど N 個のテキスト成果物ができること", func(t *testing.T) {
		panels := samplePanels(3)
		artifacts, err := RenderAll(context.Background(), r, panels)
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		if len(artifacts) != 3 {
			t.Fatalf("3個を期待したが %d 個だった", len(artifacts))
		}
	})

	t.Run("話者とスタイルが成果物にそのまま含まれること", func(t *testing.T) {
		artifact, err := r.Render(samplePanels(1)[0], 0)
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		body := string(artifact.Data)
		for _, want := range []string{"小未来", "知性猫", "闪光特写", "Q版吐槽"} {
			if !strings.Contains(body, want) {
				t.Errorf("成果物に %q が含まれていない:\n%s", want, body)
			}
		}
	})

	t.Run("固定フォーマット（タイトル・スタイル・区切り・末尾空行）であること", func(t *testing.T) {
		artifact, _ := r.Render(samplePanels(1)[0], 0)
		lines := strings.Split(string(artifact.Data), "\n")
		if lines[0] != "缤纷动漫课堂 · 第1幕" {
			t.Errorf("1行目がタイトルではない: %q", lines[0])
		}
		if !strings.HasPrefix(lines[1], "风格：") {
			t.Errorf("2行目がスタイル行ではない: %q", lines[1])
		}
		if lines[2] != strings.Repeat("-", separatorWidth) {
			t.Errorf("3行目が区切り線ではない: %q", lines[2])
		}
		if !strings.HasSuffix(string(artifact.Data), "\n\n") {
			t.Error("末尾の空行がない")
		}
	})

	t.Run("成果物名がゼロ埋め連番であること", func(t *testing.T) {
		artifact, _ := r.Render(samplePanels(1)[0], 4)
		if artifact.Name != "panel_05.txt" {
			t.Errorf("期待値 %q, 実際の値 %q", "panel_05.txt", artifact.Name)
		}
	})
}

func TestRenderAll_Empty(t *testing.T) {
	_, err := RenderAll(context.Background(), NewTextRenderer(36), nil)
	if !errors.Is(err, ErrNoPanels) {
		t.Errorf("ErrNoPanels を期待したが %v が返った", err)
	}
}
