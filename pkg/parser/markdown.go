// Package parser は公開済みの台本Markdownを ComicScript に復元します。
package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

const (
	fieldKeySpeaker = "speaker"
	fieldKeyStyle   = "style"
	fieldKeyText    = "text"
)

// MarkdownParser は publisher が書き出す台本Markdownを解析する構造体です。
type MarkdownParser struct {
}

// NewMarkdownParser は MarkdownParser を初期化します。
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{}
}

// Parse は台本Markdownを解析して domain.ComicScript に変換します。
// 有効なセリフが1行も見つからない場合はエラーを返します。
func (p *MarkdownParser) Parse(input string) (*domain.ComicScript, error) {
	script := &domain.ComicScript{}
	var current *domain.DialogueLine

	// 直前のセリフを確定して追加するヘルパー
	addPrevious := func() {
		if current != nil && current.Text != "" {
			script.Lines = append(script.Lines, *current)
		}
	}

	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := TitleRegex.FindStringSubmatch(trimmed); m != nil {
			script.Title = strings.TrimSpace(m[1])
			continue
		}

		if LineRegex.MatchString(trimmed) {
			addPrevious()
			current = &domain.DialogueLine{}
			continue
		}

		if current == nil {
			continue
		}
		if m := FieldRegex.FindStringSubmatch(trimmed); m != nil {
			key, val := strings.ToLower(m[1]), strings.TrimSpace(m[2])
			switch key {
			case fieldKeySpeaker:
				current.Speaker = val
			case fieldKeyStyle:
				current.Style = val
			case fieldKeyText:
				current.Text = val
			default:
				slog.Debug("Markdown内に未知のフィールドキーが見つかりました", "key", key)
			}
		}
	}
	addPrevious()

	if len(script.Lines) == 0 {
		return nil, fmt.Errorf("有効なセリフ情報が見つかりませんでした")
	}

	return script, nil
}
