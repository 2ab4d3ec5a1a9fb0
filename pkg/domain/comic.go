package domain

import "fmt"

// ComicScript は物語全体を変換した台本（スタイル付きセリフの列）を保持します。
type ComicScript struct {
	Title string         `json:"title"`
	Lines []DialogueLine `json:"lines"`
}

// DialogueLine は1文のセリフに話者とスタイルを割り当てたものです。
// 話者・スタイルは文の位置から決定論的に導出されるため、同じ入力からは
// 常に同じ台本が得られます。
type DialogueLine struct {
	Speaker string `json:"speaker"`
	Style   string `json:"style"`
	Text    string `json:"text"`
}

// Format は「話者（スタイル）：セリフ」形式の表示用文字列を返します。
func (l DialogueLine) Format() string {
	return fmt.Sprintf("%s（%s）：%s", l.Speaker, l.Style, l.Text)
}

// RGB はパネル背景色の8bitカラー3成分です。
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Panel は漫画の1コマ分の構成（タイトル、セリフ群、背景色）を表します。
type Panel struct {
	Title string         `json:"title"`
	Lines []DialogueLine `json:"lines"`
	Color RGB            `json:"color"`
}

// Artifact はレンダリング済みのパネル1枚分の成果物（PNGまたはプレーンテキスト）です。
type Artifact struct {
	Name string // 出力ファイル名（ゼロ埋め連番付き）
	MIME string
	Data []byte
}
