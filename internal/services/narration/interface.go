package narration

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/mafia/internal/services/narration Service

// Service turns game results into text the table reads aloud
type Service interface {
	// GetPassDeviceMessage asks the table to hand the device to a player
	GetPassDeviceMessage(ctx context.Context, input *GetPassDeviceMessageInput) (*GetPassDeviceMessageOutput, error)

	// GetRevealMessage tells the player holding the device who they are
	GetRevealMessage(ctx context.Context, input *GetRevealMessageInput) (*GetRevealMessageOutput, error)

	// GetNightResultMessage announces what happened overnight
	GetNightResultMessage(ctx context.Context, input *GetNightResultMessageInput) (*GetNightResultMessageOutput, error)

	// GetVoteResultMessage announces the outcome of a vote
	GetVoteResultMessage(ctx context.Context, input *GetVoteResultMessageInput) (*GetVoteResultMessageOutput, error)

	// GetWinMessage announces the winning faction
	GetWinMessage(ctx context.Context, input *GetWinMessageInput) (*GetWinMessageOutput, error)

	// GetErrorMessage returns a user-friendly rejection message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
