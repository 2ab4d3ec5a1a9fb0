// Package layout はセリフの列を漫画パネルの構成に変換します。
package layout

import (
	"fmt"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

// Policy はパネル割りの方式です。
type Policy string

const (
	// PolicyGrouped は最大 ChunkSize 行を1パネルにまとめる標準方式です。
	PolicyGrouped Policy = "grouped"
	// PolicyPerLine は1行ごとに1パネルを割り当てる方式です。
	PolicyPerLine Policy = "per-line"
)

// DefaultChunkSize は grouped 方式の1パネルあたり最大セリフ数です。
const DefaultChunkSize = 4

// DefaultTitle はタイトル未指定時の作品名です。
const DefaultTitle = "缤纷动漫课堂"

// groupedPalette は grouped 方式でパネル位置により循環する背景色です。
var groupedPalette = []domain.RGB{
	{R: 247, G: 106, B: 108},
	{R: 255, G: 203, B: 71},
	{R: 93, G: 179, B: 255},
	{R: 138, G: 201, B: 87},
}

// perLinePalette は per-line 方式用のやわらかい配色です。
var perLinePalette = []domain.RGB{
	{R: 255, G: 183, B: 197},
	{R: 176, G: 224, B: 230},
	{R: 255, G: 239, B: 170},
	{R: 204, G: 255, B: 204},
	{R: 221, G: 204, B: 255},
}

// Planner はセリフの列からパネル構成を決定します。パネル数はセリフ数と
// 方式のみで決まり、同じ入力からは常に同じ構成が得られます。
type Planner struct {
	policy    Policy
	chunkSize int
	title     string
}

// NewPlanner は Planner を生成します。chunkSize が 0 以下の場合は
// DefaultChunkSize、title が空の場合は DefaultTitle が使われます。
func NewPlanner(policy Policy, chunkSize int, title string) *Planner {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if title == "" {
		title = DefaultTitle
	}
	if policy != PolicyPerLine {
		policy = PolicyGrouped
	}
	return &Planner{policy: policy, chunkSize: chunkSize, title: title}
}

// Plan はセリフの列をパネルの列に変換します。セリフが無ければ空の列を
// 返します（空のまま描画を試みるかどうかの判断はレンダラー側の責務です）。
func (p *Planner) Plan(lines []domain.DialogueLine) []domain.Panel {
	if p.policy == PolicyPerLine {
		return p.planPerLine(lines)
	}
	return p.planGrouped(lines)
}

// planGrouped は最大 chunkSize 行ずつの連続チャンクをパネルにします。
func (p *Planner) planGrouped(lines []domain.DialogueLine) []domain.Panel {
	var panels []domain.Panel
	for start := 0; start < len(lines); start += p.chunkSize {
		end := start + p.chunkSize
		if end > len(lines) {
			end = len(lines)
		}
		idx := len(panels)
		panels = append(panels, domain.Panel{
			Title: fmt.Sprintf("%s · 第%d幕", p.title, idx+1),
			Lines: lines[start:end],
			Color: groupedPalette[idx%len(groupedPalette)],
		})
	}
	return panels
}

// planPerLine は1セリフにつき1パネルを割り当てます。
func (p *Planner) planPerLine(lines []domain.DialogueLine) []domain.Panel {
	var panels []domain.Panel
	for i, line := range lines {
		panels = append(panels, domain.Panel{
			Title: fmt.Sprintf("第%d格 · %s", i+1, line.Speaker),
			Lines: []domain.DialogueLine{line},
			Color: perLinePalette[i%len(perLinePalette)],
		})
	}
	return panels
}
