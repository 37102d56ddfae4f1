package textsplitter

import (
	"context"
	"strings"

	"github.com/sevigo/gochunk/schema"
)

// SplitDocuments splits every document and carries its metadata onto each
// resulting chunk. Chunk ordering follows document order.
func (s *RecursiveCharacter) SplitDocuments(ctx context.Context, docs []schema.Document) ([]schema.Document, error) {
	out := make([]schema.Document, 0, len(docs))
	for _, doc := range docs {
		chunks, err := s.splitToDocuments(ctx, doc.PageContent, doc.CloneMetadata)
		if err != nil {
			return nil, err
		}
		out = append(out, chunks...)
	}
	return out, nil
}

// CreateDocuments splits raw texts into chunk documents. metadatas, when
// given, must pair up with texts by index; a nil slice leaves the chunks
// with pipeline metadata only.
func (s *RecursiveCharacter) CreateDocuments(ctx context.Context, texts []string, metadatas []map[string]any) ([]schema.Document, error) {
	var out []schema.Document
	for i, text := range texts {
		base := func() map[string]any {
			metadata := make(map[string]any)
			if i < len(metadatas) {
				for k, v := range metadatas[i] {
					metadata[k] = v
				}
			}
			return metadata
		}
		chunks, err := s.splitToDocuments(ctx, text, base)
		if err != nil {
			return nil, err
		}
		out = append(out, chunks...)
	}
	return out, nil
}

// splitToDocuments splits one text and wraps the chunks as documents,
// attaching positional and size-exceeded metadata.
func (s *RecursiveCharacter) splitToDocuments(ctx context.Context, text string, baseMetadata func() map[string]any) ([]schema.Document, error) {
	chunks, err := s.SplitText(ctx, text)
	if err != nil {
		return nil, err
	}

	docs := make([]schema.Document, 0, len(chunks))
	prevIndex, prevLen := 0, 0
	for i, chunk := range chunks {
		metadata := baseMetadata()
		metadata[schema.KeyChunkIndex] = i
		metadata[schema.KeyTotalChunks] = len(chunks)

		if s.opts.addStartIndex {
			index := findStartIndex(text, chunk, prevIndex, prevLen, s.opts.chunkOverlap)
			metadata[schema.KeyStartIndex] = index
			if index >= 0 {
				prevIndex, prevLen = index, len(chunk)
			}
		}

		if size := s.opts.lenFunc(chunk); size > s.opts.chunkSize {
			metadata[schema.KeySizeExceeded] = true
			s.opts.logger.WarnContext(ctx, "emitting oversized chunk",
				"size", size,
				"chunk_size", s.opts.chunkSize,
				"chunk_index", i,
			)
		}

		docs = append(docs, schema.NewDocument(chunk, metadata))
	}
	return docs, nil
}

// findStartIndex locates a chunk inside its source text. The search
// starts just before where the previous chunk ended, backed off by the
// overlap, so identical chunk text earlier in the document does not
// shadow the right occurrence. Returns -1 when the chunk text no longer
// appears verbatim (possible once whitespace stripping or discarded
// separators rewrote it).
func findStartIndex(text, chunk string, prevIndex, prevLen, overlap int) int {
	from := prevIndex + prevLen - overlap
	if from < 0 {
		from = 0
	}
	if from > len(text) {
		from = len(text)
	}
	if i := strings.Index(text[from:], chunk); i >= 0 {
		return from + i
	}
	return strings.Index(text, chunk)
}
