package terminal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/mafia/internal/services/game"
	"github.com/KirkDiggler/mafia/internal/services/narration"
)

var errQuit = errors.New("quit")

// readLine prints a colored prompt and reads a trimmed line
func (s *Shell) readLine(prompt string) (string, error) {
	s.palette.Prompt.Fprint(s.out, prompt)
	input, err := s.prompter.Prompt("")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPublicLine is readLine for setup answers, which go into history.
// Private choices stay out of history so the next player cannot scroll back to them.
func (s *Shell) readPublicLine(prompt string) (string, error) {
	input, err := s.readLine(prompt)
	if err != nil {
		return "", err
	}
	if input != "" {
		s.prompter.AppendHistory(input)
	}
	return input, nil
}

func (s *Shell) waitForEnter(prompt string) error {
	_, err := s.readLine(prompt + " ")
	return err
}

// promptSelection lists numbered options and accepts a number or a name.
// Anything else is returned as typed so the game service can reject it.
func (s *Shell) promptSelection(prompt string, options []string) (string, error) {
	for {
		s.palette.Header.Fprintln(s.out, prompt)
		for i, opt := range options {
			fmt.Fprintf(s.out, " %2d: %s\n", i+1, opt)
		}

		input, err := s.readLine("Enter number or name: ")
		if err != nil {
			return "", err
		}
		if input == "" {
			continue
		}

		if num, err := strconv.Atoi(input); err == nil {
			if num >= 1 && num <= len(options) {
				return options[num-1], nil
			}
			s.palette.Warn.Fprintln(s.out, "Invalid selection.")
			continue
		}

		for _, opt := range options {
			if strings.EqualFold(opt, input) {
				return opt, nil
			}
		}
		return input, nil
	}
}

// confirm asks a yes/no question, defaulting to no
func (s *Shell) confirm(prompt string) (bool, error) {
	input, err := s.readLine(prompt + " [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(input) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// errorType maps game errors onto the narrator's categories
func errorType(err error) narration.ErrorType {
	switch {
	case errors.Is(err, game.ErrValidation):
		return narration.ErrorTypeValidation
	case errors.Is(err, game.ErrWrongPhase):
		return narration.ErrorTypeWrongPhase
	case errors.Is(err, game.ErrIllegalAction):
		return narration.ErrorTypeIllegal
	default:
		return narration.ErrorTypeUnknown
	}
}

// isRejection reports whether err is a rejected input the player can retry
func isRejection(err error) bool {
	return errors.Is(err, game.ErrValidation) || errors.Is(err, game.ErrIllegalAction)
}

func (s *Shell) renderError(ctx context.Context, err error) {
	msg, nerr := s.narrator.GetErrorMessage(ctx, &narration.GetErrorMessageInput{
		ErrorType: errorType(err),
		Detail:    err.Error(),
	})
	if nerr != nil {
		s.palette.Warn.Fprintln(s.out, err.Error())
		return
	}
	s.palette.Warn.Fprintln(s.out, msg.Title)
	fmt.Fprintln(s.out, msg.Message)
}
