// Package textsplitter turns long documents into ordered sequences of
// bounded-size chunks. Splitting walks a prioritized separator hierarchy
// and recursively subdivides oversized fragments; merging reassembles the
// resulting pieces into chunks of a target size with controlled overlap
// between neighbours.
package textsplitter

import (
	"context"

	"github.com/sevigo/gochunk/schema"
)

// TextSplitter is the contract the chunking engine exposes: raw text (or
// whole documents) in, ordered chunk sequences out.
type TextSplitter interface {
	SplitText(ctx context.Context, text string) ([]string, error)
	SplitDocuments(ctx context.Context, docs []schema.Document) ([]schema.Document, error)
}
