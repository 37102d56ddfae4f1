package documentloaders

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"github.com/sevigo/gochunk/schema"
)

const pageMarkerTemplate = "\n--- Page %d ---\n"

var (
	runsOfSpaces   = regexp.MustCompile(`[ \t]+`)
	blankLineRuns  = regexp.MustCompile(`\n[ \t]*\n`)
	excessNewlines = regexp.MustCompile(`\n{3,}`)
)

// PDFLoader extracts the plain text of a PDF file as one document, with
// page markers preserved so paragraph separators still work downstream.
type PDFLoader struct {
	path   string
	logger *slog.Logger
}

// PDFOption configures a PDFLoader.
type PDFOption func(*PDFLoader)

// WithPDFLogger sets a custom logger for the loader.
func WithPDFLogger(logger *slog.Logger) PDFOption {
	return func(l *PDFLoader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func NewPDF(path string, opts ...PDFOption) *PDFLoader {
	loader := &PDFLoader{
		path:   path,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(loader)
	}
	return loader
}

func (l *PDFLoader) Load(ctx context.Context) ([]schema.Document, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", l.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", l.path, err)
	}

	reader, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("reading PDF %s: %w", l.path, err)
	}

	numPages := reader.NumPage()
	l.logger.DebugContext(ctx, "extracting PDF text", "path", l.path, "pages", numPages)

	var sb strings.Builder
	pagesWithText := 0
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			l.logger.Warn("skipping null page", "page", i, "path", l.path)
			continue
		}
		pageText := l.extractPageText(page, i)
		if pageText == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf(pageMarkerTemplate, i))
		sb.WriteString(pageText)
		sb.WriteString("\n")
		pagesWithText++
	}

	if pagesWithText == 0 {
		return nil, fmt.Errorf("no text extracted from PDF %s", l.path)
	}

	doc := schema.NewDocument(sb.String(), map[string]any{
		schema.KeySource:     l.path,
		schema.KeyDocumentID: uuid.NewString(),
		schema.KeyTitle:      titleFromFilename(l.path),
		"page_count":         strconv.Itoa(numPages),
		"file_size":          info.Size(),
	})
	return []schema.Document{doc}, nil
}

// extractPageText prefers the library's plain-text extraction and falls
// back to joining the raw content tokens when it yields nothing.
func (l *PDFLoader) extractPageText(page pdf.Page, pageNum int) string {
	if content, err := page.GetPlainText(nil); err == nil && strings.TrimSpace(content) != "" {
		return cleanExtractedText(content)
	}

	var sb bytes.Buffer
	content := page.Content()
	for i, token := range content.Text {
		sb.WriteString(token.S)
		if i < len(content.Text)-1 && !strings.HasSuffix(token.S, " ") && !strings.HasSuffix(token.S, "\n") {
			sb.WriteString(" ")
		}
	}

	extracted := sb.String()
	if strings.TrimSpace(extracted) == "" {
		l.logger.Debug("no text extracted from page", "page", pageNum, "path", l.path)
		return ""
	}
	return cleanExtractedText(extracted)
}

// cleanExtractedText normalizes whitespace artifacts of PDF extraction so
// the paragraph separator keeps its meaning.
func cleanExtractedText(text string) string {
	text = runsOfSpaces.ReplaceAllString(text, " ")
	text = blankLineRuns.ReplaceAllString(text, "\n\n")
	text = excessNewlines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
