package terminal

import (
	"errors"
	"io"

	"github.com/peterh/liner"
)

// Prompter reads one line of input at a time. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// NewLinePrompter returns a liner backed prompter that aborts on Ctrl-C
func NewLinePrompter() *liner.State {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return line
}

// isQuit reports whether the player closed input or pressed Ctrl-C
func isQuit(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, errQuit)
}
