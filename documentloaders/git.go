package documentloaders

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-git/go-git/v5"

	"github.com/sevigo/gochunk/schema"
)

// GitLoader shallow-clones a remote repository into a temporary directory
// and loads its text files through a DirLoader. The clone is removed once
// loading finishes.
type GitLoader struct {
	repoURL string
	logger  *slog.Logger
}

// GitOption configures a GitLoader.
type GitOption func(*GitLoader)

// WithGitLogger sets a custom logger for the loader.
func WithGitLogger(logger *slog.Logger) GitOption {
	return func(l *GitLoader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func NewGit(repoURL string, opts ...GitOption) *GitLoader {
	loader := &GitLoader{
		repoURL: repoURL,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(loader)
	}
	return loader
}

func (l *GitLoader) Load(ctx context.Context) ([]schema.Document, error) {
	tempPath, err := os.MkdirTemp("", "gochunk-repo-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp directory: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(tempPath)
	}()

	l.logger.InfoContext(ctx, "cloning repository", "url", l.repoURL, "path", tempPath)
	_, err = git.PlainCloneContext(ctx, tempPath, false, &git.CloneOptions{
		URL:   l.repoURL,
		Depth: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("cloning %q: %w", l.repoURL, err)
	}

	documents, err := NewDir(tempPath, WithLogger(l.logger)).Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range documents {
		documents[i].Metadata["repository_url"] = l.repoURL
	}
	return documents, nil
}
