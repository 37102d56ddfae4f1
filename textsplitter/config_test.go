package textsplitter_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/gochunk/textsplitter"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "splitter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
type: recursive
chunk_size: 120
chunk_overlap: 30
separators: ["\n\n", "\n", " ", ""]
keep_separator: start
add_start_index: true
`)

	cfg, err := textsplitter.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "recursive", cfg.Type)
	assert.Equal(t, 120, cfg.ChunkSize)
	assert.Equal(t, 30, cfg.ChunkOverlap)
	assert.Equal(t, []string{"\n\n", "\n", " ", ""}, cfg.Separators)
	assert.Equal(t, "start", cfg.KeepSeparator)
	assert.True(t, cfg.AddStartIndex)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := textsplitter.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	t.Run("RecursiveDefaults", func(t *testing.T) {
		s, err := textsplitter.NewFromConfig(textsplitter.Config{
			ChunkSize:    10,
			ChunkOverlap: 2,
		})
		require.NoError(t, err)

		chunks, err := s.SplitText(context.Background(), "alpha beta gamma delta")
		require.NoError(t, err)
		require.NotEmpty(t, chunks)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, len(chunk), 10)
		}
	})

	t.Run("MarkdownType", func(t *testing.T) {
		s, err := textsplitter.NewFromConfig(textsplitter.Config{
			Type:         "markdown",
			ChunkSize:    40,
			ChunkOverlap: 0,
		})
		require.NoError(t, err)

		input := "# One\n\nsome text here\n\n## Two\n\nmore text follows here"
		chunks, err := s.SplitText(context.Background(), input)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(chunks), 2)
	})

	t.Run("UnknownType", func(t *testing.T) {
		_, err := textsplitter.NewFromConfig(textsplitter.Config{Type: "fixed"})
		assert.ErrorIs(t, err, textsplitter.ErrUnknownSplitterType)
	})

	t.Run("InvalidKeepSeparator", func(t *testing.T) {
		_, err := textsplitter.NewFromConfig(textsplitter.Config{KeepSeparator: "sideways"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "keep_separator")
	})

	t.Run("InvalidOverlapRejectedEagerly", func(t *testing.T) {
		_, err := textsplitter.NewFromConfig(textsplitter.Config{
			ChunkSize:    50,
			ChunkOverlap: 50,
		})
		assert.ErrorIs(t, err, textsplitter.ErrInvalidChunkOverlap)
	})
}

func TestConfigRoundTrip(t *testing.T) {
	path := writeConfig(t, `
chunk_size: 15
chunk_overlap: 3
`)

	cfg, err := textsplitter.LoadConfig(path)
	require.NoError(t, err)

	s, err := textsplitter.NewFromConfig(cfg)
	require.NoError(t, err)

	input := strings.Repeat("word ", 20)
	chunks, err := s.SplitText(context.Background(), input)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, textsplitter.RuneLen(chunk), 15)
	}
}
