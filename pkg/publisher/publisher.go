// Package publisher は成果物（台本Markdownとパネルファイル）の永続化を担います。
// 出力先はローカルディレクトリまたは gs:// URI です。
package publisher

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

// Options はパブリッシュ動作を制御する設定項目です。
type Options struct {
	OutputDir string
}

// PublishResult はパブリッシュ処理で生成されたファイルの情報を保持します。
// ArtifactPaths の順序はパネルの順序と一致します。
type PublishResult struct {
	ScriptPath    string   // 台本Markdownのパス
	ArtifactPaths []string // 保存された全パネル成果物のパスリスト
}

const defaultScriptName = "comic_plot.md"

// ComicPublisher は成果物の永続化を担います。
type ComicPublisher struct {
	writer remoteio.OutputWriter
}

// NewComicPublisher は指定されたライターを使う ComicPublisher を生成します。
func NewComicPublisher(writer remoteio.OutputWriter) *ComicPublisher {
	return &ComicPublisher{writer: writer}
}

// Publish はパネル成果物の保存と台本Markdownの書き出しを一括して実行します。
func (p *ComicPublisher) Publish(ctx context.Context, script domain.ComicScript, artifacts []domain.Artifact, opts Options) (PublishResult, error) {
	result := PublishResult{}

	paths, err := p.saveArtifacts(ctx, artifacts, opts.OutputDir)
	if err != nil {
		return result, fmt.Errorf("パネル成果物の書き込みに失敗しました: %w", err)
	}
	result.ArtifactPaths = paths

	scriptPath, err := p.PublishScript(ctx, script, opts)
	if err != nil {
		return result, err
	}
	result.ScriptPath = scriptPath

	return result, nil
}

// PublishScript は台本Markdownのみを書き出し、そのパスを返します。
func (p *ComicPublisher) PublishScript(ctx context.Context, script domain.ComicScript, opts Options) (string, error) {
	scriptPath, err := ResolveOutputPath(opts.OutputDir, defaultScriptName)
	if err != nil {
		return "", err
	}

	content := BuildScriptMarkdown(script)
	if err := p.writer.Write(ctx, scriptPath, strings.NewReader(content), "text/markdown; charset=utf-8"); err != nil {
		return "", fmt.Errorf("台本Markdownの書き込みに失敗しました: %w", err)
	}

	slog.Info("台本を書き出しました", "path", scriptPath, "lines", len(script.Lines))
	return scriptPath, nil
}

// saveArtifacts は成果物を出力先に順番どおり保存し、パスのリストを返します。
func (p *ComicPublisher) saveArtifacts(ctx context.Context, artifacts []domain.Artifact, baseDir string) ([]string, error) {
	var paths []string
	for _, artifact := range artifacts {
		if len(artifact.Data) == 0 {
			continue
		}
		fullPath, err := ResolveOutputPath(baseDir, artifact.Name)
		if err != nil {
			return nil, fmt.Errorf("出力パスの解決に失敗しました: %w", err)
		}

		if err := p.writer.Write(ctx, fullPath, bytes.NewReader(artifact.Data), artifact.MIME); err != nil {
			return nil, fmt.Errorf("成果物の書き込みに失敗しました %s: %w", fullPath, err)
		}
		paths = append(paths, fullPath)
	}
	return paths, nil
}

// BuildScriptMarkdown は台本を pkg/parser が復元可能なMarkdownに整形します。
func BuildScriptMarkdown(script domain.ComicScript) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", script.Title))

	for i, line := range script.Lines {
		sb.WriteString(fmt.Sprintf("## Line %d\n", i+1))
		sb.WriteString(fmt.Sprintf("- speaker: %s\n", line.Speaker))
		sb.WriteString(fmt.Sprintf("- style: %s\n", line.Style))
		sb.WriteString(fmt.Sprintf("- text: %s\n", line.Text))
		sb.WriteString("\n")
	}
	return sb.String()
}
