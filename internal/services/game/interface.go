package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/mafia/internal/services/game Service

// Service is the single entry point a presentation shell drives. Calls are
// synchronous and must come from one goroutine at a time.
type Service interface {
	// DistributeRoles validates the roster and deals roles, moving setup to reveal
	DistributeRoles(ctx context.Context, input *DistributeRolesInput) (*DistributeRolesOutput, error)

	// CurrentRevealPlayer returns whose turn it is to look at their role
	CurrentRevealPlayer(ctx context.Context, input *CurrentRevealPlayerInput) (*CurrentRevealPlayerOutput, error)

	// RevealRole shows the current player their role (reveal phase and night)
	RevealRole(ctx context.Context, input *RevealRoleInput) (*RevealRoleOutput, error)

	// AdvanceReveal hands the device to the next player
	AdvanceReveal(ctx context.Context, input *AdvanceRevealInput) (*AdvanceRevealOutput, error)

	// CurrentNightPlayer returns whose night turn it is
	CurrentNightPlayer(ctx context.Context, input *CurrentNightPlayerInput) (*CurrentNightPlayerOutput, error)

	// SubmitNightAction records or answers the current player's night choice
	SubmitNightAction(ctx context.Context, input *SubmitNightActionInput) (*SubmitNightActionOutput, error)

	// AdvanceNightTurn finishes the current player's night turn
	AdvanceNightTurn(ctx context.Context, input *AdvanceNightTurnInput) (*AdvanceNightTurnOutput, error)

	// ResolveNight applies the night's kill and checks for a winner
	ResolveNight(ctx context.Context, input *ResolveNightInput) (*ResolveNightOutput, error)

	// CurrentVoter returns whose turn it is to vote
	CurrentVoter(ctx context.Context, input *CurrentVoterInput) (*CurrentVoterOutput, error)

	// SubmitVote records the current voter's ballot and moves to the next voter
	SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error)

	// ResolveVoting tallies the ballots and checks for a winner
	ResolveVoting(ctx context.Context, input *ResolveVotingInput) (*ResolveVotingOutput, error)

	// CheckWin reports the winning faction, if any
	CheckWin(ctx context.Context, input *CheckWinInput) (*CheckWinOutput, error)

	// GetStatus returns a public snapshot of the session
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// ResetSession discards all state and returns to setup
	ResetSession(ctx context.Context, input *ResetSessionInput) (*ResetSessionOutput, error)
}
