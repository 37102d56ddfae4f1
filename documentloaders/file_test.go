package documentloaders_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/gochunk/documentloaders"
	"github.com/sevigo/gochunk/internal/testutil"
	"github.com/sevigo/gochunk/schema"
	"github.com/sevigo/gochunk/textsplitter"
)

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "release_notes_2024.txt")
	content := "Version 1.0 ships the new splitter.\n\nVersion 1.1 fixes overlap accounting."
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	docs, err := documentloaders.NewFile(path).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, content, docs[0].PageContent)
	assert.Equal(t, path, docs[0].Metadata[schema.KeySource])
	assert.Equal(t, "Release Notes 2024", docs[0].Metadata[schema.KeyTitle])

	id, ok := docs[0].Metadata[schema.KeyDocumentID].(string)
	require.True(t, ok)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestFileLoaderMissingFile(t *testing.T) {
	_, err := documentloaders.NewFile(filepath.Join(t.TempDir(), "absent.txt")).Load(context.Background())
	require.Error(t, err)
}

func TestDirLoader(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "node_modules", "pkg"), 0o750))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("Top-level readme."), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "a.md"), []byte("# A\n\nBody of a."), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "node_modules", "pkg", "index.txt"), []byte("skipped"), 0o600))
	// Binary files are skipped by extension.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), []byte{0x89, 0x50}, 0o600))

	logger, _ := testutil.NewTestLogger(t)
	docs, err := documentloaders.NewDir(dir, documentloaders.WithLogger(logger)).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, docs, 2)
	sources := make([]string, 0, len(docs))
	for _, doc := range docs {
		source, ok := doc.Metadata[schema.KeySource].(string)
		require.True(t, ok)
		sources = append(sources, source)
		assert.NotContains(t, source, "node_modules")
	}
	assert.Contains(t, sources, "readme.txt")
	assert.Contains(t, sources, filepath.Join("docs", "a.md"))
}

func TestCommandLoader(t *testing.T) {
	docs, err := documentloaders.NewCommand("echo", "hello splitter").Load(context.Background())
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "hello splitter\n", docs[0].PageContent)
	assert.Contains(t, docs[0].Metadata[schema.KeySource], "echo")
}

func TestLoadAndSplit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	content := strings.Repeat("Some sentence that repeats for bulk. ", 20)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	splitter, err := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(60),
		textsplitter.WithChunkOverlap(10),
	)
	require.NoError(t, err)

	chunks, err := documentloaders.LoadAndSplit(context.Background(), documentloaders.NewFile(path), splitter)
	require.NoError(t, err)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		// Loader metadata survives splitting.
		assert.Equal(t, path, chunk.Metadata[schema.KeySource])
		assert.LessOrEqual(t, textsplitter.RuneLen(chunk.PageContent), 60)
	}
}
