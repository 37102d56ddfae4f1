// Package documentloaders provides implementations for acquiring raw text
// from external sources (files, directories, commands, git repositories)
// and handing it to the splitting pipeline as documents.
package documentloaders

import (
	"context"

	"github.com/sevigo/gochunk/schema"
	"github.com/sevigo/gochunk/textsplitter"
)

// Loader retrieves documents from a source. Implementations handle
// source-specific logic while returning the shared document format.
type Loader interface {
	Load(ctx context.Context) ([]schema.Document, error)
}

// LoadAndSplit loads documents from the loader and immediately splits
// them into chunks.
func LoadAndSplit(ctx context.Context, loader Loader, splitter textsplitter.TextSplitter) ([]schema.Document, error) {
	docs, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return splitter.SplitDocuments(ctx, docs)
}
