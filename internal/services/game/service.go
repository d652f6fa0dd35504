package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/mafia/internal/common/clock"
	"github.com/KirkDiggler/mafia/internal/common/uuid"
	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/roles"
	"github.com/KirkDiggler/mafia/internal/shuffle"
)

// session is everything that belongs to one game. ResetSession replaces it
// wholesale.
type session struct {
	id      string
	phase   models.Phase
	players []*models.Player
	byName  map[string]*models.Player
	round   int
	winner  models.Winner

	turns   *Sequencer
	night   *nightActions
	ballots map[string]string
	history []models.RoundRecord
}

// service implements the Service interface
type service struct {
	registry      *roles.Registry
	shuffler      shuffle.Shuffler
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        zerolog.Logger

	state *session
}

// New creates a new game service sitting in setup
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}
	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	s := &service{
		registry:      cfg.Registry,
		shuffler:      cfg.Shuffler,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger.With().Str("component", "game").Logger(),
	}
	s.reset()
	return s, nil
}

func (s *service) reset() {
	s.state = &session{
		id:     s.uuidGenerator.NewUUID(),
		phase:  models.PhaseSetup,
		byName: make(map[string]*models.Player),
	}
}

func (s *service) log() *zerolog.Logger {
	l := s.logger.With().
		Str("session_id", s.state.id).
		Str("phase", s.state.phase.String()).
		Int("round", s.state.round).
		Logger()
	return &l
}

// transition moves the session to the next phase and prepares its turn order
func (s *service) transition(next models.Phase) {
	st := s.state
	prev := st.phase
	st.phase = next

	switch next {
	case models.PhaseReveal:
		st.turns = NewSequencer(s.roster())
	case models.PhaseNight:
		st.round++
		st.turns = NewSequencer(s.living())
		st.night = newNightActions()
	case models.PhaseVoting:
		st.turns = NewSequencer(s.living())
		st.ballots = make(map[string]string)
	case models.PhaseEnded:
		st.turns = nil
		st.night = nil
		st.ballots = nil
	}

	s.log().Info().
		Str("from", prev.String()).
		Str("winner", string(st.winner)).
		Msg("phase transition")
}

// endIfWon runs the win check and ends the game when a faction has won.
// Returns the winner, WinnerNone if play continues.
func (s *service) endIfWon() models.Winner {
	winner := evaluatePlayers(s.registry, s.state.players)
	if winner != models.WinnerNone {
		s.state.winner = winner
		s.transition(models.PhaseEnded)
	}
	return winner
}

func (s *service) roster() []string {
	names := make([]string, len(s.state.players))
	for i, p := range s.state.players {
		names[i] = p.Name
	}
	return names
}

func (s *service) living() []string {
	names := make([]string, 0, len(s.state.players))
	for _, p := range s.state.players {
		if p.Alive {
			names = append(names, p.Name)
		}
	}
	return names
}

func (s *service) dead() []string {
	names := make([]string, 0)
	for _, p := range s.state.players {
		if !p.Alive {
			names = append(names, p.Name)
		}
	}
	return names
}

// targetsFor lists the living players an action may target
func (s *service) targetsFor(player string, action models.ActionKind) []string {
	if !action.NeedsTarget() {
		return []string{}
	}
	targets := make([]string, 0, len(s.state.players))
	for _, name := range s.living() {
		if name == player && !action.AllowsSelfTarget() {
			continue
		}
		targets = append(targets, name)
	}
	return targets
}

func (s *service) requirePhase(op string, phase models.Phase) error {
	if s.state.phase != phase {
		return wrongPhase(op, s.state.phase)
	}
	return nil
}

// DistributeRoles validates the roster and deals roles, moving setup to reveal
func (s *service) DistributeRoles(ctx context.Context, input *DistributeRolesInput) (*DistributeRolesOutput, error) {
	if input == nil {
		return nil, invalid("input cannot be nil")
	}
	if err := s.requirePhase("distribute roles", models.PhaseSetup); err != nil {
		return nil, err
	}

	dealt, err := AssignRoles(s.registry, s.shuffler, input.Players, input.Roles)
	if err != nil {
		s.log().Debug().Err(err).Msg("role distribution rejected")
		return nil, err
	}

	st := s.state
	st.players = make([]*models.Player, len(dealt))
	for i := range dealt {
		p := dealt[i]
		st.players[i] = &p
		st.byName[p.Name] = &p
	}
	s.transition(models.PhaseReveal)

	return &DistributeRolesOutput{
		SessionID: st.id,
		Players:   dealt,
		Phase:     st.phase,
	}, nil
}

// CurrentRevealPlayer returns whose turn it is to look at their role
func (s *service) CurrentRevealPlayer(ctx context.Context, input *CurrentRevealPlayerInput) (*CurrentRevealPlayerOutput, error) {
	switch s.state.phase {
	case models.PhaseReveal:
	case models.PhaseSetup:
		return nil, wrongPhase("current reveal player", s.state.phase)
	default:
		return nil, ErrPhaseComplete
	}

	turn, err := s.state.turns.Current()
	if err != nil {
		return nil, err
	}
	return &CurrentRevealPlayerOutput{
		Player:   turn.Player,
		Revealed: turn.Revealed,
		Position: s.state.turns.Position(),
		Total:    s.state.turns.Len(),
	}, nil
}

// RevealRole shows the current player their role. During the night it also
// unlocks their action and lists the legal targets.
func (s *service) RevealRole(ctx context.Context, input *RevealRoleInput) (*RevealRoleOutput, error) {
	if input == nil {
		return nil, illegal("input cannot be nil")
	}
	if !s.state.phase.IsReveal() && !s.state.phase.IsNight() {
		return nil, wrongPhase("reveal role", s.state.phase)
	}

	turn, err := s.state.turns.Expect(input.Player)
	if err != nil {
		return nil, err
	}

	player := s.state.byName[input.Player]
	caps, _ := s.registry.Lookup(player.Role)
	turn.Revealed = true

	out := &RevealRoleOutput{
		Player:      player.Name,
		Role:        player.Role,
		Description: caps.Description,
		Action:      models.ActionNone,
		Targets:     []string{},
	}
	if s.state.phase.IsNight() {
		out.Action = caps.Action
		out.Targets = s.targetsFor(player.Name, caps.Action)
	}
	return out, nil
}

// AdvanceReveal hands the device to the next player. After the last player
// the session enters the first night, unless the roster already decides the
// game.
func (s *service) AdvanceReveal(ctx context.Context, input *AdvanceRevealInput) (*AdvanceRevealOutput, error) {
	if input == nil {
		return nil, illegal("input cannot be nil")
	}
	if err := s.requirePhase("advance reveal", models.PhaseReveal); err != nil {
		return nil, err
	}
	if _, err := s.state.turns.Expect(input.Player); err != nil {
		return nil, err
	}

	if err := s.state.turns.Advance(); err != nil {
		return nil, err
	}

	out := &AdvanceRevealOutput{}
	if s.state.turns.Done() {
		out.PhaseComplete = true
		if s.endIfWon() == models.WinnerNone {
			s.transition(models.PhaseNight)
		}
	}
	out.Phase = s.state.phase
	out.Winner = s.state.winner
	return out, nil
}

// CurrentNightPlayer returns whose night turn it is, or ErrPhaseComplete once
// everyone alive has acted and the night is ready to resolve
func (s *service) CurrentNightPlayer(ctx context.Context, input *CurrentNightPlayerInput) (*CurrentNightPlayerOutput, error) {
	if err := s.requirePhase("current night player", models.PhaseNight); err != nil {
		return nil, err
	}

	turn, err := s.state.turns.Current()
	if err != nil {
		return nil, err
	}
	return &CurrentNightPlayerOutput{
		Player:   turn.Player,
		Revealed: turn.Revealed,
		Acted:    turn.Acted,
		Result:   turn.Result,
		Position: s.state.turns.Position(),
		Total:    s.state.turns.Len(),
		Round:    s.state.round,
	}, nil
}

// SubmitNightAction records the mafia kill or doctor save, or answers the
// police and likend questions on the spot. Rejected submissions change nothing.
func (s *service) SubmitNightAction(ctx context.Context, input *SubmitNightActionInput) (*SubmitNightActionOutput, error) {
	if input == nil {
		return nil, illegal("input cannot be nil")
	}
	if err := s.requirePhase("submit night action", models.PhaseNight); err != nil {
		return nil, err
	}

	turn, err := s.state.turns.Expect(input.Player)
	if err != nil {
		s.log().Debug().Err(err).Str("player", input.Player).Msg("night action rejected")
		return nil, err
	}
	if !turn.Revealed {
		return nil, illegal("%s must reveal their role before acting", input.Player)
	}
	if turn.Acted {
		return nil, illegal("%s has already acted tonight", input.Player)
	}

	player := s.state.byName[input.Player]
	if input.Role != "" && input.Role != player.Role {
		return nil, illegal("%s does not hold the %s role", input.Player, input.Role)
	}

	action := s.registry.ActionOf(player.Role)
	out := &SubmitNightActionOutput{Action: action}

	if action.NeedsTarget() {
		if err := s.checkTarget(player.Name, input.Target, action); err != nil {
			s.log().Debug().Err(err).Str("player", input.Player).Msg("night action rejected")
			return nil, err
		}
		out.Target = input.Target
	}

	target := s.state.byName[input.Target]
	switch action {
	case models.ActionKill:
		s.state.night.recordKill(player.Name, target.Name)
		out.Result = fmt.Sprintf("You chose to kill %s.", target.Name)
	case models.ActionSave:
		s.state.night.recordSave(target.Name)
		out.Result = fmt.Sprintf("You chose to save %s.", target.Name)
	case models.ActionInvestigate:
		out.Match = s.registry.IsMafia(target.Role)
		if out.Match {
			out.Result = fmt.Sprintf("%s is Mafia.", target.Name)
		} else {
			out.Result = fmt.Sprintf("%s is Not Mafia.", target.Name)
		}
	case models.ActionIdentifyPolice:
		out.Match = s.registry.ActionOf(target.Role) == models.ActionInvestigate
		if out.Match {
			out.Result = fmt.Sprintf("%s is Police.", target.Name)
		} else {
			out.Result = fmt.Sprintf("%s is Not Police.", target.Name)
		}
	default:
		out.Result = "You did nothing."
	}

	turn.Acted = true
	turn.Result = out.Result
	return out, nil
}

func (s *service) checkTarget(player, target string, action models.ActionKind) error {
	if target == "" {
		return illegal("%s must choose a target", player)
	}
	p, ok := s.state.byName[target]
	if !ok {
		return illegal("unknown player %q", target)
	}
	if !p.Alive {
		return illegal("%s is dead", target)
	}
	if target == player && !action.AllowsSelfTarget() {
		return illegal("%s cannot target themselves", player)
	}
	return nil
}

// AdvanceNightTurn finishes the current player's turn once they have acted
func (s *service) AdvanceNightTurn(ctx context.Context, input *AdvanceNightTurnInput) (*AdvanceNightTurnOutput, error) {
	if input == nil {
		return nil, illegal("input cannot be nil")
	}
	if err := s.requirePhase("advance night turn", models.PhaseNight); err != nil {
		return nil, err
	}

	turn, err := s.state.turns.Expect(input.Player)
	if err != nil {
		return nil, err
	}
	if !turn.Acted {
		return nil, illegal("%s has not acted yet", input.Player)
	}
	if err := s.state.turns.Advance(); err != nil {
		return nil, err
	}

	return &AdvanceNightTurnOutput{
		Remaining:     s.state.turns.Remaining(),
		PhaseComplete: s.state.turns.Done(),
	}, nil
}

// ResolveNight applies the kill, records the night, checks for a winner and
// moves on to voting
func (s *service) ResolveNight(ctx context.Context, input *ResolveNightInput) (*ResolveNightOutput, error) {
	if err := s.requirePhase("resolve night", models.PhaseNight); err != nil {
		return nil, err
	}
	st := s.state
	if !st.turns.Done() {
		return nil, illegal("%d night turns remaining", st.turns.Remaining())
	}

	killed, saved := resolveKill(st.night.mafiaTarget(), st.night.doctor)
	result := &models.NightResult{
		Round:    st.round,
		Saved:    saved,
		Warnings: []string{},
	}

	if killed != "" {
		victim, ok := st.byName[killed]
		if ok && victim.Alive {
			victim.Alive = false
			result.Killed = killed
		} else {
			warning := fmt.Sprintf("tried to remove %s, but they were already removed", killed)
			result.Warnings = append(result.Warnings, warning)
			s.log().Warn().Str("target", killed).Msg("night kill target not in living set")
		}
	}

	st.history = append(st.history, models.RoundRecord{
		Phase:      models.PhaseNight,
		Night:      result,
		ResolvedAt: s.clock.Now(),
	})
	s.log().Info().
		Str("killed", result.Killed).
		Bool("saved", result.Saved).
		Msg("night resolved")

	if s.endIfWon() == models.WinnerNone {
		s.transition(models.PhaseVoting)
	}

	return &ResolveNightOutput{
		Result: result,
		Phase:  st.phase,
		Winner: st.winner,
	}, nil
}

// CurrentVoter returns whose turn it is to vote
func (s *service) CurrentVoter(ctx context.Context, input *CurrentVoterInput) (*CurrentVoterOutput, error) {
	if err := s.requirePhase("current voter", models.PhaseVoting); err != nil {
		return nil, err
	}

	turn, err := s.state.turns.Current()
	if err != nil {
		return nil, err
	}

	candidates := make([]string, 0)
	for _, name := range s.living() {
		if name != turn.Player {
			candidates = append(candidates, name)
		}
	}

	return &CurrentVoterOutput{
		Player:     turn.Player,
		Candidates: candidates,
		Position:   s.state.turns.Position(),
		Total:      s.state.turns.Len(),
		Round:      s.state.round,
	}, nil
}

// SubmitVote records the current voter's ballot and moves to the next voter
func (s *service) SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error) {
	if input == nil {
		return nil, illegal("input cannot be nil")
	}
	if err := s.requirePhase("submit vote", models.PhaseVoting); err != nil {
		return nil, err
	}

	if _, err := s.state.turns.Expect(input.Player); err != nil {
		s.log().Debug().Err(err).Str("player", input.Player).Msg("vote rejected")
		return nil, err
	}

	choice := input.Choice
	if strings.EqualFold(strings.TrimSpace(choice), models.SkipVote) {
		choice = models.SkipVote
	} else if err := s.checkTarget(input.Player, choice, models.ActionKill); err != nil {
		s.log().Debug().Err(err).Str("player", input.Player).Msg("vote rejected")
		return nil, err
	}

	s.state.ballots[input.Player] = choice
	if err := s.state.turns.Advance(); err != nil {
		return nil, err
	}

	return &SubmitVoteOutput{
		Choice:        choice,
		Remaining:     s.state.turns.Remaining(),
		PhaseComplete: s.state.turns.Done(),
	}, nil
}

// ResolveVoting tallies the ballots, eliminates a clear leader, checks for a
// winner and moves on to the next night
func (s *service) ResolveVoting(ctx context.Context, input *ResolveVotingInput) (*ResolveVotingOutput, error) {
	if err := s.requirePhase("resolve voting", models.PhaseVoting); err != nil {
		return nil, err
	}
	st := s.state
	if !st.turns.Done() {
		return nil, illegal("%d voters remaining", st.turns.Remaining())
	}

	ballots := make(map[string]string, len(st.ballots))
	for voter, choice := range st.ballots {
		ballots[voter] = choice
	}
	tally := tallyVotes(ballots)
	result := &models.VoteResult{
		Round:   st.round,
		Tally:   tally,
		Ballots: ballots,
	}

	if eliminated := decideElimination(tally); eliminated != "" {
		st.byName[eliminated].Alive = false
		result.Eliminated = eliminated
	}

	st.history = append(st.history, models.RoundRecord{
		Phase:      models.PhaseVoting,
		Vote:       result,
		ResolvedAt: s.clock.Now(),
	})
	s.log().Info().
		Str("eliminated", result.Eliminated).
		Interface("tally", tally).
		Msg("voting resolved")

	if s.endIfWon() == models.WinnerNone {
		s.transition(models.PhaseNight)
	}

	return &ResolveVotingOutput{
		Result: result,
		Phase:  st.phase,
		Winner: st.winner,
	}, nil
}

// CheckWin reports the winning faction without changing any state
func (s *service) CheckWin(ctx context.Context, input *CheckWinInput) (*CheckWinOutput, error) {
	st := s.state
	if st.phase.IsSetup() {
		return &CheckWinOutput{Winner: models.WinnerNone}, nil
	}
	if st.phase.IsEnded() {
		return &CheckWinOutput{Winner: st.winner, Ended: true}, nil
	}

	winner := evaluatePlayers(s.registry, st.players)
	return &CheckWinOutput{
		Winner: winner,
		Ended:  winner != models.WinnerNone,
	}, nil
}

// GetStatus returns a public snapshot of the session
func (s *service) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	st := s.state
	history := make([]models.RoundRecord, len(st.history))
	for i, record := range st.history {
		history[i] = record.Clone()
	}

	return &GetStatusOutput{
		SessionID: st.id,
		Phase:     st.phase,
		Round:     st.round,
		Winner:    st.winner,
		Alive:     s.living(),
		Dead:      s.dead(),
		History:   history,
	}, nil
}

// ResetSession discards all state and returns to setup
func (s *service) ResetSession(ctx context.Context, input *ResetSessionInput) (*ResetSessionOutput, error) {
	previous := s.state.id
	s.reset()
	s.log().Info().Str("previous_session_id", previous).Msg("session reset")

	return &ResetSessionOutput{
		SessionID: s.state.id,
		Phase:     s.state.phase,
	}, nil
}
