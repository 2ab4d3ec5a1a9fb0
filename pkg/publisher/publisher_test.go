package publisher

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/parser"
)

// fakeWriter は書き込みを記録するテスト用の OutputWriter です。
type fakeWriter struct {
	paths    []string
	contents map[string]string
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{contents: make(map[string]string)}
}

func (w *fakeWriter) Write(_ context.Context, path string, r io.Reader, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	w.paths = append(w.paths, path)
	w.contents[path] = string(data)
	return nil
}

// 以下の3メソッドは remoteio.OutputWriter を満たすためのスタブです（テストでは Write のみ使用）。
func (w *fakeWriter) WriteToGCS(_ context.Context, _, _ string, _ io.Reader, _ string) error {
	return nil
}

func (w *fakeWriter) WriteToS3(_ context.Context, _, _ string, _ io.Reader, _ string) error {
	return nil
}

func (w *fakeWriter) WriteToLocal(_ context.Context, _ string, _ io.Reader) error {
	return nil
}

func sampleScript() domain.ComicScript {
	return domain.ComicScript{
		Title: "缤纷动漫课堂",
		Lines: []domain.DialogueLine{
			{Speaker: "小未来", Style: "闪光特写", Text: "出发吧……（场景切换）"},
			{Speaker: "知性猫", Style: "Q版吐槽", Text: "又来了～（啾咪）"},
		},
	}
}

func TestComicPublisher_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("成果物と台本がパネル順で書き出されること", func(t *testing.T) {
		w := newFakeWriter()
		p := NewComicPublisher(w)

		artifacts := []domain.Artifact{
			{Name: "panel_01.txt", MIME: "text/plain; charset=utf-8", Data: []byte("一")},
			{Name: "panel_02.txt", MIME: "text/plain; charset=utf-8", Data: []byte("二")},
		}

		result, err := p.Publish(ctx, sampleScript(), artifacts, Options{OutputDir: "output"})
		if err != nil {
			t.Fatalf("Publish失敗: %v", err)
		}

		if len(result.ArtifactPaths) != 2 {
			t.Fatalf("2パスを期待したが %d パスだった", len(result.ArtifactPaths))
		}
		if !strings.HasSuffix(result.ArtifactPaths[0], "panel_01.txt") ||
			!strings.HasSuffix(result.ArtifactPaths[1], "panel_02.txt") {
			t.Errorf("パスの順序が不正: %v", result.ArtifactPaths)
		}
		if result.ScriptPath == "" {
			t.Error("台本パスが空になっている")
		}
	})

	t.Run("空データの成果物はスキップされること", func(t *testing.T) {
		w := newFakeWriter()
		p := NewComicPublisher(w)

		artifacts := []domain.Artifact{
			{Name: "panel_01.txt", Data: nil},
			{Name: "panel_02.txt", Data: []byte("内容")},
		}

		result, err := p.Publish(ctx, sampleScript(), artifacts, Options{OutputDir: "output"})
		if err != nil {
			t.Fatalf("Publish失敗: %v", err)
		}
		if len(result.ArtifactPaths) != 1 {
			t.Errorf("1パスを期待したが %d パスだった", len(result.ArtifactPaths))
		}
	})
}

func TestBuildScriptMarkdown_RoundTrip(t *testing.T) {
	// publisher が書いた台本を parser が復元できること
	script := sampleScript()
	content := BuildScriptMarkdown(script)

	restored, err := parser.NewMarkdownParser().Parse(content)
	if err != nil {
		t.Fatalf("往復パース失敗: %v", err)
	}

	if restored.Title != script.Title {
		t.Errorf("タイトルが一致しない: %q != %q", restored.Title, script.Title)
	}
	if len(restored.Lines) != len(script.Lines) {
		t.Fatalf("行数が一致しない: %d != %d", len(restored.Lines), len(script.Lines))
	}
	for i := range script.Lines {
		if restored.Lines[i] != script.Lines[i] {
			t.Errorf("行 %d が一致しない: %+v != %+v", i, restored.Lines[i], script.Lines[i])
		}
	}
}

func TestResolveOutputPath(t *testing.T) {
	t.Run("ローカルパスは filepath.Join になること", func(t *testing.T) {
		got, err := ResolveOutputPath("output", "panel_01.png")
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		if got != "output/panel_01.png" {
			t.Errorf("期待値 %q, 実際の値 %q", "output/panel_01.png", got)
		}
	})

	t.Run("GCS URIはスキームを保って結合されること", func(t *testing.T) {
		got, err := ResolveOutputPath("gs://bucket/comics", "panel_01.png")
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		if got != "gs://bucket/comics/panel_01.png" {
			t.Errorf("期待値 %q, 実際の値 %q", "gs://bucket/comics/panel_01.png", got)
		}
	})
}
