package documentloaders

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sevigo/gochunk/schema"
)

// FileLoader loads a single text file as one document.
type FileLoader struct {
	path string
}

func NewFile(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (l *FileLoader) Load(_ context.Context) ([]schema.Document, error) {
	content, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", l.path, err)
	}

	info, err := os.Stat(l.path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", l.path, err)
	}

	doc := schema.NewDocument(string(content), map[string]any{
		schema.KeySource:     l.path,
		schema.KeyDocumentID: uuid.NewString(),
		schema.KeyTitle:      titleFromFilename(l.path),
		"file_size":          info.Size(),
		"mod_time":           info.ModTime(),
	})
	return []schema.Document{doc}, nil
}

// titleFromFilename derives a readable title from a file path:
// "release_notes_2024.txt" becomes "Release Notes 2024".
func titleFromFilename(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	return cases.Title(language.English).String(base)
}
