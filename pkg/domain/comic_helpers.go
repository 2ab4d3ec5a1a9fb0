package domain

import (
	"sort"
	"strings"
)

// Body はパネル内の全セリフを表示用に整形し、改行で連結して返します。
func (p Panel) Body() string {
	formatted := make([]string, 0, len(p.Lines))
	for _, line := range p.Lines {
		formatted = append(formatted, line.Format())
	}
	return strings.Join(formatted, "\n")
}

// StyleLabel はパネルの隅に注記するスタイル名を返します。
// 先頭セリフのスタイルを代表値として使います。
func (p Panel) StyleLabel() string {
	if len(p.Lines) == 0 {
		return ""
	}
	return p.Lines[0].Style
}

// UniqueSpeakers は台本から重複しない話者名を抽出します。
func (s ComicScript) UniqueSpeakers() []string {
	set := make(map[string]struct{})
	for _, line := range s.Lines {
		if line.Speaker != "" {
			set[line.Speaker] = struct{}{}
		}
	}

	speakers := make([]string, 0, len(set))
	for name := range set {
		speakers = append(speakers, name)
	}
	sort.Strings(speakers)

	return speakers
}
