package script

import (
	"strings"
	"testing"
)

func TestStylizer_Rotation(t *testing.T) {
	s := NewStylizer()

	t.Run("話者とスタイルが位置の剰余で循環すること", func(t *testing.T) {
		if got := s.SpeakerAt(0); got != "小未来" {
			t.Errorf("期待値 %q, 実際の値 %q", "小未来", got)
		}
		if got := s.SpeakerAt(len(DefaultSpeakers)); got != "小未来" {
			t.Errorf("1周後も先頭に戻ること: %q", got)
		}
		if got := s.StyleAt(len(DefaultStyles) + 1); got != DefaultStyles[1] {
			t.Errorf("期待値 %q, 実際の値 %q", DefaultStyles[1], got)
		}
	})

	t.Run("同じ位置の同じ文は常に同じ結果になること", func(t *testing.T) {
		sentences := []string{"甲。", "乙！", "丙？"}
		first := s.Stylize(sentences)
		second := s.Stylize(sentences)
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("位置 %d の結果が一致しない: %+v != %+v", i, first[i], second[i])
			}
		}
	})
}

func TestStylizer_Stylize(t *testing.T) {
	s := NewStylizer()
	lines := s.Stylize([]string{"第一句。", "第二句。", "第三句。"})

	if len(lines) != 3 {
		t.Fatalf("3行を期待したが %d 行だった", len(lines))
	}

	for i, line := range lines {
		if line.Speaker != DefaultSpeakers[i%len(DefaultSpeakers)] {
			t.Errorf("位置 %d の話者が不正: %q", i, line.Speaker)
		}
		if line.Style != DefaultStyles[i%len(DefaultStyles)] {
			t.Errorf("位置 %d のスタイルが不正: %q", i, line.Style)
		}
		if !strings.HasPrefix(line.Text, "第") {
			t.Errorf("元の文が先頭に残っていない: %q", line.Text)
		}
	}
}

func TestFlavor(t *testing.T) {
	tests := []struct {
		name   string
		style  string
		suffix string
	}{
		{"元気スタイルは熱血サフィックス", "充满元气地", "！！让梦想燃烧吧"},
		{"熱血BGMも熱血サフィックス", "热血BGM起", "！！让梦想燃烧吧"},
		{"Q版はかわいいサフィックス", "Q版吐槽", "～（啾咪）"},
		{"ナレーション系は場面転換マーカー", "小剧场旁白", "……（场景切换）"},
		{"未知のスタイルもナレーション扱いで落ちないこと", "谜之风格", "……（场景切换）"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flavor("台词", tt.style)
			want := "台词" + tt.suffix
			if got != want {
				t.Errorf("期待値 %q, 実際の値 %q", want, got)
			}
		})
	}
}
