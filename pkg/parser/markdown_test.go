package parser

import (
	"testing"
)

func TestMarkdownParser_Parse(t *testing.T) {
	p := NewMarkdownParser()

	t.Run("台本Markdownが正しく復元されること", func(t *testing.T) {
		input := `# 缤纷动漫课堂

## Line 1
- speaker: 小未来
- style: 闪光特写
- text: 出发吧……（场景切换）

## Line 2
- speaker: 知性猫
- style: Q版吐槽
- text: 又来了～（啾咪）
`
		script, err := p.Parse(input)
		if err != nil {
			t.Fatalf("パース失敗: %v", err)
		}

		if script.Title != "缤纷动漫课堂" {
			t.Errorf("タイトルが不正: %q", script.Title)
		}
		if len(script.Lines) != 2 {
			t.Fatalf("2行を期待したが %d 行だった", len(script.Lines))
		}
		if script.Lines[0].Speaker != "小未来" || script.Lines[0].Style != "闪光特写" {
			t.Errorf("1行目の属性が不正: %+v", script.Lines[0])
		}
		if script.Lines[1].Text != "又来了～（啾咪）" {
			t.Errorf("2行目のセリフが不正: %q", script.Lines[1].Text)
		}
	})

	t.Run("未知のフィールドは無視されること", func(t *testing.T) {
		input := `# 标题

## Line 1
- speaker: 甲
- style: 旁白
- text: 你好。
- layout: reserved
`
		script, err := p.Parse(input)
		if err != nil {
			t.Fatalf("パース失敗: %v", err)
		}
		if len(script.Lines) != 1 {
			t.Errorf("1行を期待したが %d 行だった", len(script.Lines))
		}
	})

	t.Run("text の無いブロックは捨てられること", func(t *testing.T) {
		input := `# 标题

## Line 1
- speaker: 甲

## Line 2
- speaker: 乙
- style: 旁白
- text: 有内容。
`
		script, err := p.Parse(input)
		if err != nil {
			t.Fatalf("パース失敗: %v", err)
		}
		if len(script.Lines) != 1 || script.Lines[0].Speaker != "乙" {
			t.Errorf("不完全なブロックが混入した: %+v", script.Lines)
		}
	})

	t.Run("セリフが1行も無ければエラーになること", func(t *testing.T) {
		if _, err := p.Parse("# 只有标题\n"); err == nil {
			t.Error("空の台本でエラーが返らなかった")
		}
	})
}
