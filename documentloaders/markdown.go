package documentloaders

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/gochunk/schema"
)

const frontMatterSeparator = "---"

// MarkdownLoader loads a markdown file as a single document. YAML front
// matter is lifted into metadata instead of polluting the chunkable body,
// and the first level-1 heading becomes the title.
type MarkdownLoader struct {
	path     string
	markdown goldmark.Markdown
}

func NewMarkdown(path string) *MarkdownLoader {
	return &MarkdownLoader{
		path: path,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

func (l *MarkdownLoader) Load(_ context.Context) ([]schema.Document, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", l.path, err)
	}

	body, frontMatter := splitFrontMatter(string(raw))

	metadata := map[string]any{
		schema.KeySource:     l.path,
		schema.KeyDocumentID: uuid.NewString(),
	}
	for k, v := range frontMatter {
		if _, reserved := metadata[k]; !reserved {
			metadata[k] = v
		}
	}

	if _, ok := metadata[schema.KeyTitle]; !ok {
		title := l.firstHeading([]byte(body))
		if title == "" {
			title = titleFromFilename(l.path)
		}
		metadata[schema.KeyTitle] = title
	}

	return []schema.Document{schema.NewDocument(body, metadata)}, nil
}

// firstHeading walks the goldmark AST and returns the text of the first
// level-1 heading, or "" when the document has none.
func (l *MarkdownLoader) firstHeading(source []byte) string {
	root := l.markdown.Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 1 {
			return ast.WalkContinue, nil
		}
		title = headingText(heading, source)
		return ast.WalkStop, nil
	})
	return title
}

func headingText(heading *ast.Heading, source []byte) string {
	var sb strings.Builder
	for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			sb.Write(textNode.Segment.Value(source))
		}
	}
	return strings.TrimSpace(sb.String())
}

// splitFrontMatter separates a leading YAML front matter block from the
// markdown body. A malformed block is left in the body untouched.
func splitFrontMatter(content string) (string, map[string]any) {
	lines := strings.Split(content, "\n")
	if len(lines) < 3 || strings.TrimRight(lines[0], "\r") != frontMatterSeparator {
		return content, nil
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == frontMatterSeparator {
			end = i
			break
		}
	}
	if end <= 1 {
		return content, nil
	}

	var frontMatter map[string]any
	block := strings.Join(lines[1:end], "\n")
	if err := yaml.Unmarshal([]byte(block), &frontMatter); err != nil {
		return content, nil
	}

	body := strings.Join(lines[end+1:], "\n")
	return strings.TrimLeft(body, "\n"), frontMatter
}
