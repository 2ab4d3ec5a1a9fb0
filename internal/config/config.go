package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultModel        = "gemini-3-flash-preview"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultAITimeout    = 20 * time.Second // 翻訳・言語検出のAI呼び出し1回あたりの上限なのだ
	DefaultRateInterval = 2 * time.Second  // AI呼び出しのレート制限間隔なのだ
	DefaultRateBurst    = 2
	DefaultChunkSize    = 4
	DefaultLayout       = "grouped"
	DefaultOutputDir    = "output"               // パブリッシャーで使用するデフォルト保存先なのだ
	DefaultScriptFile   = "output/comic_plot.md" // render コマンドが読み直す台本のデフォルトパスなのだ
)

// Config はアプリケーション全体の環境設定（APIキーやモデル名）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey string
	GeminiModel  string
	FontPath     string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
// GEMINI_API_KEY は未設定でもよく、その場合は翻訳能力なしで動くのだ。
func LoadConfig() *Config {
	return &Config{
		GeminiAPIKey: envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:  envutil.GetEnv("GEMINI_MODEL", DefaultModel),
		FontPath:     envutil.GetEnv("COMIC_FONT", ""),
	}
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	Story      string // 位置引数でそのまま渡された物語テキスト
	StoryFile  string // --story-file（'-'で標準入力なのだ）
	StoryURL   string // --story-url
	UseDemo    bool   // --demo
	ScriptFile string // --script-file: render コマンドが読み込む台本Markdown

	// 生成結果の出力設定
	OutputDir string // --output-dir（ローカル or gs://...）
	FontPath  string // --font
	Title     string // --title
	TextOnly  bool   // --text-only: PNGの代わりにテキスト成果物を出す

	// レイアウト設定
	ChunkSize int    // --chunk-size
	Layout    string // --layout: grouped or per-line

	// AI挙動設定
	AIModel string // --model: 翻訳・言語検出用のGeminiモデル

	// 実行制御
	HTTPTimeout time.Duration // --http-timeout
}
