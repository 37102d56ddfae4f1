package documentloaders

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sevigo/gochunk/schema"
)

// CommandLoader runs a command and uses its stdout as the document
// content. Useful for sources that already have an extraction tool
// (pandoc, pg_dump, a crawler) without writing a dedicated loader.
type CommandLoader struct {
	Command string
	Args    []string
}

func NewCommand(command string, args ...string) *CommandLoader {
	return &CommandLoader{Command: command, Args: args}
}

func (l *CommandLoader) Load(ctx context.Context) ([]schema.Document, error) {
	command := filepath.Base(l.Command)
	cmd := exec.CommandContext(ctx, command, l.Args...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("command %q failed: %w\nstderr: %s", l.Command, err, string(exitErr.Stderr))
		}
		return nil, err
	}

	doc := schema.NewDocument(string(output), map[string]any{
		schema.KeySource:     fmt.Sprintf("output of command %q", l.Command),
		schema.KeyDocumentID: uuid.NewString(),
	})
	return []schema.Document{doc}, nil
}
