package narration

import (
	"strings"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/shuffle"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral states the facts
	ToneNeutral MessageTone = "neutral"

	// ToneDramatic plays up the suspense
	ToneDramatic MessageTone = "dramatic"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"
)

// ParseTone maps a config value to a tone, defaulting to neutral
func ParseTone(s string) MessageTone {
	tone := MessageTone(strings.ToLower(strings.TrimSpace(s)))
	switch tone {
	case ToneDramatic, ToneFunny:
		return tone
	default:
		return ToneNeutral
	}
}

// ErrorType classifies rejections for the shell
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIllegal    ErrorType = "illegal_action"
	ErrorTypeWrongPhase ErrorType = "wrong_phase"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// Config contains configuration for the narration service
type Config struct {
	// Shuffler picks between message variants
	Shuffler shuffle.Shuffler

	// Tone is used when a request does not ask for one
	Tone MessageTone
}

// GetPassDeviceMessageInput contains parameters for GetPassDeviceMessage
type GetPassDeviceMessageInput struct {
	PlayerName string
	Phase      models.Phase
}

// GetPassDeviceMessageOutput contains the generated message
type GetPassDeviceMessageOutput struct {
	Title   string
	Message string
}

// GetRevealMessageInput contains parameters for GetRevealMessage
type GetRevealMessageInput struct {
	PlayerName  string
	Role        models.Role
	Description string
}

// GetRevealMessageOutput contains the generated message
type GetRevealMessageOutput struct {
	Title   string
	Message string
}

// GetNightResultMessageInput contains parameters for GetNightResultMessage
type GetNightResultMessageInput struct {
	Result *models.NightResult

	// PreferredTone overrides the configured tone (optional)
	PreferredTone MessageTone
}

// GetNightResultMessageOutput contains the generated message
type GetNightResultMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetVoteResultMessageInput contains parameters for GetVoteResultMessage
type GetVoteResultMessageInput struct {
	Result *models.VoteResult

	// PreferredTone overrides the configured tone (optional)
	PreferredTone MessageTone
}

// GetVoteResultMessageOutput contains the generated message
type GetVoteResultMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetWinMessageInput contains parameters for GetWinMessage
type GetWinMessageInput struct {
	Winner models.Winner
}

// GetWinMessageOutput contains the generated message
type GetWinMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for GetErrorMessage
type GetErrorMessageInput struct {
	ErrorType ErrorType

	// Detail is the underlying error text
	Detail string
}

// GetErrorMessageOutput contains the generated message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}
