// Package schema defines the document model shared by loaders, splitters
// and downstream consumers.
package schema

// Metadata keys written by the chunking pipeline.
const (
	// KeySource names the origin of a document (file path, URL, command).
	KeySource = "source"
	// KeyDocumentID carries a stable per-document identifier.
	KeyDocumentID = "document_id"
	// KeyTitle is a human-readable document title.
	KeyTitle = "title"
	// KeyStartIndex is the byte offset of a chunk within its source text.
	KeyStartIndex = "start_index"
	// KeySizeExceeded marks a chunk whose measured length exceeds the
	// configured chunk size. Such chunks are emitted, never dropped.
	KeySizeExceeded = "size_exceeded"
	// KeyChunkIndex is the position of a chunk within its source document.
	KeyChunkIndex = "chunk_index"
	// KeyTotalChunks is the number of chunks produced from the source document.
	KeyTotalChunks = "total_chunks"
)

// Document is the unit of text flowing through the pipeline: raw input on
// the way into a splitter, a bounded-size chunk on the way out.
type Document struct {
	PageContent string
	Metadata    map[string]any
}

func (d Document) String() string {
	return d.PageContent
}

// NewDocument creates a Document, allocating an empty metadata map when
// none is given so callers can always write to it.
func NewDocument(content string, metadata map[string]any) Document {
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return Document{
		PageContent: content,
		Metadata:    metadata,
	}
}

// CloneMetadata returns a shallow copy of the document's metadata. Chunks
// derived from a document extend a copy instead of sharing the map.
func (d Document) CloneMetadata() map[string]any {
	metadata := make(map[string]any, len(d.Metadata))
	for k, v := range d.Metadata {
		metadata[k] = v
	}
	return metadata
}
