package game

import (
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/mafia/internal/common/clock"
	"github.com/KirkDiggler/mafia/internal/common/uuid"
	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/roles"
	"github.com/KirkDiggler/mafia/internal/shuffle"
)

// RoleSpec maps each role to how many players receive it
type RoleSpec map[models.Role]int

// Total returns the number of role cards in the spec
func (r RoleSpec) Total() int {
	total := 0
	for _, count := range r {
		total += count
	}
	return total
}

// Config holds configuration for the game service
type Config struct {
	// Registry is the set of roles the session may deal
	Registry *roles.Registry

	// Service dependencies
	Shuffler      shuffle.Shuffler
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional; nil disables logging
	Logger *zerolog.Logger
}

// DistributeRolesInput contains the setup for a new game
type DistributeRolesInput struct {
	// Players is the roster in seating order
	Players []string

	// Roles is the number of each role to deal
	Roles RoleSpec
}

// DistributeRolesOutput contains the result of dealing roles
type DistributeRolesOutput struct {
	SessionID string

	// Players is the dealt roster. Shells must not show it to the table.
	Players []models.Player

	Phase models.Phase
}

// CurrentRevealPlayerInput contains parameters for CurrentRevealPlayer
type CurrentRevealPlayerInput struct{}

// CurrentRevealPlayerOutput names whose turn it is to see their role
type CurrentRevealPlayerOutput struct {
	Player   string
	Revealed bool

	// Position is the 1-based turn number within the cycle
	Position int
	Total    int
}

// RevealRoleInput contains parameters for RevealRole
type RevealRoleInput struct {
	Player string
}

// RevealRoleOutput is the private information for the player holding the device
type RevealRoleOutput struct {
	Player      string
	Role        models.Role
	Description string

	// Action is what the player may do now; ActionNone outside the night
	Action models.ActionKind

	// Targets lists the legal choices for Action
	Targets []string
}

// AdvanceRevealInput contains parameters for AdvanceReveal
type AdvanceRevealInput struct {
	Player string
}

// AdvanceRevealOutput contains the result of passing the device on
type AdvanceRevealOutput struct {
	// PhaseComplete is true when the last player has seen their role
	PhaseComplete bool

	Phase  models.Phase
	Winner models.Winner
}

// CurrentNightPlayerInput contains parameters for CurrentNightPlayer
type CurrentNightPlayerInput struct{}

// CurrentNightPlayerOutput describes the current night turn
type CurrentNightPlayerOutput struct {
	Player   string
	Revealed bool
	Acted    bool

	// Result is the private outcome of the player's action, once acted
	Result string

	Position int
	Total    int
	Round    int
}

// SubmitNightActionInput contains a player's night choice
type SubmitNightActionInput struct {
	Player string

	// Role is optional; when set it must match the player's dealt role
	Role models.Role

	// Target is ignored for roles without a night action
	Target string
}

// SubmitNightActionOutput contains the private result of a night action
type SubmitNightActionOutput struct {
	Action models.ActionKind
	Target string

	// Match is the answer for investigative actions: the target is mafia
	// (police) or the target is police (likend)
	Match bool

	// Result is the text shown to the acting player
	Result string
}

// AdvanceNightTurnInput contains parameters for AdvanceNightTurn
type AdvanceNightTurnInput struct {
	Player string
}

// AdvanceNightTurnOutput contains the result of ending a night turn
type AdvanceNightTurnOutput struct {
	Remaining     int
	PhaseComplete bool
}

// ResolveNightInput contains parameters for ResolveNight
type ResolveNightInput struct{}

// ResolveNightOutput contains the outcome of the night
type ResolveNightOutput struct {
	Result *models.NightResult
	Phase  models.Phase
	Winner models.Winner
}

// CurrentVoterInput contains parameters for CurrentVoter
type CurrentVoterInput struct{}

// CurrentVoterOutput names the current voter and their options
type CurrentVoterOutput struct {
	Player string

	// Candidates are the living players other than the voter
	Candidates []string

	Position int
	Total    int
	Round    int
}

// SubmitVoteInput contains a ballot
type SubmitVoteInput struct {
	Player string

	// Choice is models.SkipVote or the name of another living player
	Choice string
}

// SubmitVoteOutput contains the result of casting a ballot
type SubmitVoteOutput struct {
	Choice        string
	Remaining     int
	PhaseComplete bool
}

// ResolveVotingInput contains parameters for ResolveVoting
type ResolveVotingInput struct{}

// ResolveVotingOutput contains the outcome of the vote
type ResolveVotingOutput struct {
	Result *models.VoteResult
	Phase  models.Phase
	Winner models.Winner
}

// CheckWinInput contains parameters for CheckWin
type CheckWinInput struct{}

// CheckWinOutput reports the winner
type CheckWinOutput struct {
	Winner models.Winner
	Ended  bool
}

// GetStatusInput contains parameters for GetStatus
type GetStatusInput struct{}

// GetStatusOutput is the public view of the session. It never includes roles
// of living players.
type GetStatusOutput struct {
	SessionID string
	Phase     models.Phase
	Round     int
	Winner    models.Winner
	Alive     []string
	Dead      []string

	History []models.RoundRecord
}

// ResetSessionInput contains parameters for ResetSession
type ResetSessionInput struct{}

// ResetSessionOutput contains the new session ID
type ResetSessionOutput struct {
	SessionID string
	Phase     models.Phase
}
