package documentloaders

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/sevigo/gochunk/schema"
)

// maxFileSize bounds how large a file the directory loader will read.
const maxFileSize = 10 * 1024 * 1024

// DirLoader walks a directory tree and loads every plausible text file as
// a document. Build directories, binary files and oversized files are
// skipped; unreadable entries are logged and skipped rather than aborting
// the whole walk.
type DirLoader struct {
	path   string
	logger *slog.Logger
}

// DirOption configures a DirLoader.
type DirOption func(*DirLoader)

// WithLogger sets a custom logger. slog.Default() is used otherwise.
func WithLogger(logger *slog.Logger) DirOption {
	return func(l *DirLoader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func NewDir(path string, opts ...DirOption) *DirLoader {
	loader := &DirLoader{
		path:   path,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(loader)
	}
	return loader
}

func (l *DirLoader) Load(ctx context.Context) ([]schema.Document, error) {
	l.logger.InfoContext(ctx, "starting directory load", "path", l.path)

	var documents []schema.Document
	err := filepath.WalkDir(l.path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			l.logger.Warn("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			if shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			l.logger.Warn("could not stat file, skipping", "path", path, "error", err)
			return nil
		}
		if shouldSkipFile(path, info) {
			l.logger.Debug("skipping excluded file", "path", path, "size", info.Size())
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			l.logger.Warn("cannot read file, skipping", "path", path, "error", err)
			return nil
		}

		relPath, err := filepath.Rel(l.path, path)
		if err != nil {
			relPath = path
		}

		documents = append(documents, schema.NewDocument(string(content), map[string]any{
			schema.KeySource:     relPath,
			schema.KeyDocumentID: uuid.NewString(),
			schema.KeyTitle:      titleFromFilename(path),
			"file_size":          info.Size(),
			"mod_time":           info.ModTime(),
		}))
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "directory load completed",
		"path", l.path,
		"total_documents", len(documents),
	)
	return documents, nil
}

// shouldSkipDir reports whether a directory is a dependency, build output
// or VCS bookkeeping tree that never holds documents worth chunking.
func shouldSkipDir(name string) bool {
	skipDirs := []string{
		".git", ".svn", ".hg",
		"vendor", "node_modules", "__pycache__",
		"build", "dist", "target", "out", "bin",
		".vscode", ".idea",
	}
	return slices.Contains(skipDirs, name)
}

// shouldSkipFile reports whether a file is binary or too large to load.
func shouldSkipFile(path string, info fs.FileInfo) bool {
	if info.Size() > maxFileSize {
		return true
	}

	ext := strings.ToLower(filepath.Ext(path))
	binaryExts := map[string]bool{
		".exe": true, ".dll": true, ".so": true, ".dylib": true,
		".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
		".bmp": true, ".tiff": true, ".ico": true,
		".zip": true, ".tar": true, ".gz": true, ".rar": true,
		".7z": true, ".bz2": true, ".xz": true,
		".mp3": true, ".mp4": true, ".avi": true, ".mov": true,
		".wav": true, ".flac": true, ".ogg": true,
		".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
		".ppt": true, ".pptx": true,
		".bin": true, ".dat": true, ".db": true, ".sqlite": true,
	}
	return binaryExts[ext]
}
