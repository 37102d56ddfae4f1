package documentloaders_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/gochunk/documentloaders"
	"github.com/sevigo/gochunk/schema"
)

func writeMarkdown(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMarkdownLoaderFrontMatter(t *testing.T) {
	path := writeMarkdown(t, "guide.md", `---
title: Chunking Guide
author: Jo
---

# Ignored Because Front Matter Wins

Body text.
`)

	docs, err := documentloaders.NewMarkdown(path).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "Chunking Guide", docs[0].Metadata[schema.KeyTitle])
	assert.Equal(t, "Jo", docs[0].Metadata["author"])
	// Front matter is metadata, not chunkable content.
	assert.NotContains(t, docs[0].PageContent, "author:")
	assert.Contains(t, docs[0].PageContent, "Body text.")
}

func TestMarkdownLoaderTitleFromHeading(t *testing.T) {
	path := writeMarkdown(t, "notes.md", "# Meeting Notes\n\nDiscussed chunk overlap.\n")

	docs, err := documentloaders.NewMarkdown(path).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "Meeting Notes", docs[0].Metadata[schema.KeyTitle])
}

func TestMarkdownLoaderTitleFromFilename(t *testing.T) {
	path := writeMarkdown(t, "weekly_summary.md", "No headings in this file.\n")

	docs, err := documentloaders.NewMarkdown(path).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "Weekly Summary", docs[0].Metadata[schema.KeyTitle])
}

func TestMarkdownLoaderMalformedFrontMatter(t *testing.T) {
	content := "---\nnot yaml: [unclosed\n---\n\nBody.\n"
	path := writeMarkdown(t, "broken.md", content)

	docs, err := documentloaders.NewMarkdown(path).Load(context.Background())
	require.NoError(t, err)

	// A block that fails to parse stays in the body untouched.
	require.Len(t, docs, 1)
	assert.Equal(t, content, docs[0].PageContent)
}
