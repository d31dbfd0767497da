package editor

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"

	workseterrors "worksets.dev/worksets/internal/errors"
)

// pathPlaceholder is replaced with the file path in the open command template
const pathPlaceholder = "{path}"

// defaultCommandTimeout bounds each editor invocation
const defaultCommandTimeout = 30 * time.Second

// CommandHost implements Host by running configured editor commands.
type CommandHost struct {
	openTemplate    string
	closeAllCommand string
	workingDir      string
}

// NewCommandHost creates a host from command templates. openTemplate must
// contain the "{path}" placeholder (it is appended when missing);
// closeAllCommand may be empty, in which case CloseAll is a no-op.
func NewCommandHost(openTemplate, closeAllCommand, workingDir string) *CommandHost {
	if openTemplate != "" && !strings.Contains(openTemplate, pathPlaceholder) {
		openTemplate = openTemplate + " " + pathPlaceholder
	}
	return &CommandHost{
		openTemplate:    openTemplate,
		closeAllCommand: closeAllCommand,
		workingDir:      workingDir,
	}
}

// Open runs the open command for a single file
func (h *CommandHost) Open(ctx context.Context, path string) error {
	if h.openTemplate == "" {
		return workseterrors.ErrNoOpenCommand
	}

	words, err := shellquote.Split(h.openTemplate)
	if err != nil {
		return workseterrors.NewEditorCommandError(h.openTemplate, path, "", err)
	}

	// Substitute after splitting so paths with spaces stay one argument
	for i, word := range words {
		words[i] = strings.ReplaceAll(word, pathPlaceholder, path)
	}

	return h.run(ctx, words, path)
}

// CloseAll runs the close-all command, if one is configured
func (h *CommandHost) CloseAll(ctx context.Context) error {
	if h.closeAllCommand == "" {
		return nil
	}

	words, err := shellquote.Split(h.closeAllCommand)
	if err != nil {
		return workseterrors.NewEditorCommandError(h.closeAllCommand, "", "", err)
	}

	return h.run(ctx, words, "")
}

func (h *CommandHost) run(ctx context.Context, words []string, path string) error {
	if len(words) == 0 {
		return workseterrors.ErrNoOpenCommand
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, words[0], words[1:]...)
	if h.workingDir != "" {
		cmd.Dir = h.workingDir
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return workseterrors.NewEditorCommandError(strings.Join(words, " "), path, stderr.String(), err)
	}
	return nil
}
