package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/gochunk/schema"
)

func TestNewDocument(t *testing.T) {
	doc := schema.NewDocument("content", nil)
	require.NotNil(t, doc.Metadata)

	doc.Metadata[schema.KeySource] = "a.txt"
	assert.Equal(t, "a.txt", doc.Metadata[schema.KeySource])
	assert.Equal(t, "content", doc.String())
}

func TestCloneMetadata(t *testing.T) {
	doc := schema.NewDocument("content", map[string]any{schema.KeySource: "a.txt"})

	clone := doc.CloneMetadata()
	clone["extra"] = true

	_, leaked := doc.Metadata["extra"]
	assert.False(t, leaked)
	assert.Equal(t, "a.txt", clone[schema.KeySource])
}
