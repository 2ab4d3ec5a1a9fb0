package render

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// systemFontCandidates は中国語表示に向くシステムフォントの探索候補です。
// 上から順に試し、見つからない・読めないものはスキップします。
var systemFontCandidates = []string{
	"NotoSansCJKsc-Regular",
	"NotoSansSC-Regular",
	"SourceHanSansSC-Regular",
	"wqy-microhei",
	"wqy-zenhei",
	"PingFang",
	"msyh",
	"Hiragino Sans GB",
}

// LoadFont はフォールバックチェーンでフォントを解決します。
// 明示パス → システムフォント候補 → 組み込みフォントの順で試し、
// 途中の失敗は警告ログを出して次の候補に進みます。組み込みフォントの
// パースまで失敗した場合のみエラーを返します。
func LoadFont(explicitPath string) (*truetype.Font, error) {
	if explicitPath != "" {
		f, err := loadFontFile(explicitPath)
		if err == nil {
			return f, nil
		}
		slog.Warn("指定フォントの読み込みに失敗しました。候補探索に切り替えます",
			"path", explicitPath, "error", err)
	}

	for _, name := range systemFontCandidates {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		f, err := loadFontFile(path)
		if err != nil {
			slog.Debug("候補フォントをスキップします", "path", path, "error", err)
			continue
		}
		slog.Info("システムフォントを使用します", "path", path)
		return f, nil
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("組み込みフォントのパースに失敗しました: %w", err)
	}
	slog.Warn("中国語対応フォントが見つからないため組み込みフォントを使用します。漢字が欠ける可能性があります")
	return f, nil
}

// loadFontFile はTTFファイルを読み込んでパースします。
func loadFontFile(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return truetype.Parse(data)
}
