package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/roles"
	"github.com/KirkDiggler/mafia/internal/services/game"
	"github.com/KirkDiggler/mafia/internal/services/narration"
)

// Shell runs a pass-the-phone game on one terminal
type Shell struct {
	gameService game.Service
	narrator    narration.Service
	registry    *roles.Registry
	prompter    Prompter
	out         io.Writer
	palette     *palette
	logger      zerolog.Logger
	handlers    map[models.Phase]phaseHandler

	// setup remembered between games; preset is used once without prompting
	roles   game.RoleSpec
	players []string
	preset  bool

	// dealt is the roster of the current game, shown when it ends
	dealt []models.Player
}

type phaseHandler func(ctx context.Context) error

// Config holds the configuration for the shell
type Config struct {
	GameService game.Service
	Narrator    narration.Service

	// Registry formats and parses role lists at setup
	Registry *roles.Registry

	Prompter Prompter
	Out      io.Writer

	// Roles and Players skip the setup prompts for the first game when both are set
	Roles   game.RoleSpec
	Players []string

	// Logger is optional; nil disables logging
	Logger *zerolog.Logger
}

// New creates a new terminal shell
func New(cfg *Config) (*Shell, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.Narrator == nil {
		return nil, errors.New("narrator cannot be nil")
	}
	if cfg.Registry == nil {
		return nil, errors.New("role registry cannot be nil")
	}
	if cfg.Prompter == nil {
		return nil, errors.New("prompter cannot be nil")
	}
	if cfg.Out == nil {
		return nil, errors.New("output writer cannot be nil")
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	s := &Shell{
		gameService: cfg.GameService,
		narrator:    cfg.Narrator,
		registry:    cfg.Registry,
		prompter:    cfg.Prompter,
		out:         cfg.Out,
		palette:     newPalette(),
		logger:      logger.With().Str("component", "terminal").Logger(),
		roles:       cfg.Roles,
		players:     cfg.Players,
		preset:      cfg.Roles.Total() > 0 && len(cfg.Players) > 0,
	}
	s.handlers = map[models.Phase]phaseHandler{
		models.PhaseSetup:  s.handleSetup,
		models.PhaseReveal: s.handleReveal,
		models.PhaseNight:  s.handleNight,
		models.PhaseVoting: s.handleVoting,
		models.PhaseEnded:  s.handleEnded,
	}

	return s, nil
}

// Run drives the game until the players quit or ctx is cancelled
func (s *Shell) Run(ctx context.Context) error {
	s.palette.Header.Fprintln(s.out, "--- Mafia: pass the phone ---")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		status, err := s.gameService.GetStatus(ctx, &game.GetStatusInput{})
		if err != nil {
			return fmt.Errorf("failed to get game status: %w", err)
		}

		handler, ok := s.handlers[status.Phase]
		if !ok {
			return fmt.Errorf("no handler for phase %q", status.Phase)
		}

		err = handler(ctx)
		switch {
		case err == nil:
		case isQuit(err):
			s.palette.Info.Fprintln(s.out, "Goodbye!")
			return nil
		case isRejection(err):
			s.logger.Debug().Err(err).Str("phase", status.Phase.String()).Msg("input rejected")
			s.renderError(ctx, err)
		default:
			return err
		}
	}
}

func (s *Shell) handleSetup(ctx context.Context) error {
	spec, players := s.roles, s.players
	if !s.preset {
		var err error
		if spec, err = s.promptRoles(ctx); err != nil {
			return err
		}
		if players, err = s.promptPlayers(); err != nil {
			return err
		}
	}
	s.preset = false

	// remembered even when rejected so the next prompt offers them back
	s.roles, s.players = spec, players

	out, err := s.gameService.DistributeRoles(ctx, &game.DistributeRolesInput{
		Players: players,
		Roles:   spec,
	})
	if err != nil {
		return err
	}

	s.dealt = out.Players
	s.palette.Info.Fprintf(s.out, "Roles dealt to %d players.\n", len(out.Players))
	return nil
}

func (s *Shell) promptRoles(ctx context.Context) (game.RoleSpec, error) {
	current := game.FormatRoleSpec(s.registry, s.roles)
	example := "mafia:1, police:1, doctor:1, citizen:2"

	for {
		prompt := fmt.Sprintf("Roles (e.g. %s): ", example)
		if current != "" {
			prompt = fmt.Sprintf("Roles [%s]: ", current)
		}

		input, err := s.readPublicLine(prompt)
		if err != nil {
			return nil, err
		}
		if input == "" {
			if current != "" {
				return s.roles, nil
			}
			continue
		}

		spec, err := game.ParseRoleSpec(s.registry, input)
		if err != nil {
			s.renderError(ctx, err)
			continue
		}
		return spec, nil
	}
}

func (s *Shell) promptPlayers() ([]string, error) {
	s.palette.Header.Fprintln(s.out, "Enter player names, one per line. Blank line to finish.")
	if len(s.players) > 0 {
		fmt.Fprintf(s.out, "Blank first line keeps: %s\n", strings.Join(s.players, ", "))
	}

	lines := make([]string, 0)
	for {
		input, err := s.readPublicLine(fmt.Sprintf("Player %d: ", len(lines)+1))
		if err != nil {
			return nil, err
		}
		if input == "" {
			break
		}
		lines = append(lines, input)
	}

	if len(lines) == 0 && len(s.players) > 0 {
		return s.players, nil
	}
	return game.ParsePlayerNames(strings.Join(lines, "\n")), nil
}

// passDevice asks the table to hand over the device and waits for the holder
func (s *Shell) passDevice(ctx context.Context, player string, phase models.Phase, position, total int) error {
	msg, err := s.narrator.GetPassDeviceMessage(ctx, &narration.GetPassDeviceMessageInput{
		PlayerName: player,
		Phase:      phase,
	})
	if err != nil {
		return fmt.Errorf("failed to get pass device message: %w", err)
	}

	s.palette.Header.Fprintf(s.out, "\n[%d/%d] %s\n", position, total, msg.Title)
	s.palette.Info.Fprintln(s.out, msg.Message)
	return s.waitForEnter(fmt.Sprintf("Press Enter when you are %s.", player))
}

func (s *Shell) showRole(ctx context.Context, role *game.RevealRoleOutput) error {
	msg, err := s.narrator.GetRevealMessage(ctx, &narration.GetRevealMessageInput{
		PlayerName:  role.Player,
		Role:        role.Role,
		Description: role.Description,
	})
	if err != nil {
		return fmt.Errorf("failed to get reveal message: %w", err)
	}

	s.palette.roleColor(s.registry, role.Role).Fprintln(s.out, msg.Title)
	fmt.Fprintln(s.out, msg.Message)
	return nil
}

func (s *Shell) handleReveal(ctx context.Context) error {
	current, err := s.gameService.CurrentRevealPlayer(ctx, &game.CurrentRevealPlayerInput{})
	if err != nil {
		return err
	}

	if err := s.passDevice(ctx, current.Player, models.PhaseReveal, current.Position, current.Total); err != nil {
		return err
	}

	role, err := s.gameService.RevealRole(ctx, &game.RevealRoleInput{Player: current.Player})
	if err != nil {
		return err
	}
	if err := s.showRole(ctx, role); err != nil {
		return err
	}
	if err := s.waitForEnter("Press Enter to hide your role and pass the phone."); err != nil {
		return err
	}
	s.clearScreen()

	out, err := s.gameService.AdvanceReveal(ctx, &game.AdvanceRevealInput{Player: current.Player})
	if err != nil {
		return err
	}
	if out.PhaseComplete && out.Phase.IsNight() {
		s.palette.Header.Fprintln(s.out, "Everyone has seen their role. Night falls.")
	}
	return nil
}

func (s *Shell) handleNight(ctx context.Context) error {
	current, err := s.gameService.CurrentNightPlayer(ctx, &game.CurrentNightPlayerInput{})
	if errors.Is(err, game.ErrPhaseComplete) {
		return s.resolveNight(ctx)
	}
	if err != nil {
		return err
	}

	if !current.Acted {
		if err := s.passDevice(ctx, current.Player, models.PhaseNight, current.Position, current.Total); err != nil {
			return err
		}

		role, err := s.gameService.RevealRole(ctx, &game.RevealRoleInput{Player: current.Player})
		if err != nil {
			return err
		}
		if err := s.showRole(ctx, role); err != nil {
			return err
		}

		result, err := s.nightAction(ctx, role)
		if err != nil {
			return err
		}
		s.palette.Info.Fprintln(s.out, result)

		if err := s.waitForEnter("Press Enter to hide and pass the phone."); err != nil {
			return err
		}
		s.clearScreen()
	}

	_, err = s.gameService.AdvanceNightTurn(ctx, &game.AdvanceNightTurnInput{Player: current.Player})
	return err
}

// nightAction collects a target until the game service accepts it. Every
// player is woken, including those with nothing to do.
func (s *Shell) nightAction(ctx context.Context, role *game.RevealRoleOutput) (string, error) {
	for {
		target := ""
		if role.Action.NeedsTarget() {
			var err error
			target, err = s.promptSelection(actionPrompt(role.Action), role.Targets)
			if err != nil {
				return "", err
			}
		}

		out, err := s.gameService.SubmitNightAction(ctx, &game.SubmitNightActionInput{
			Player: role.Player,
			Role:   role.Role,
			Target: target,
		})
		if err == nil {
			return out.Result, nil
		}
		if !isRejection(err) || !role.Action.NeedsTarget() {
			return "", err
		}
		s.renderError(ctx, err)
	}
}

func actionPrompt(action models.ActionKind) string {
	switch action {
	case models.ActionKill:
		return "Who do you want to kill?"
	case models.ActionSave:
		return "Who do you want to save?"
	case models.ActionInvestigate:
		return "Who do you want to investigate?"
	case models.ActionIdentifyPolice:
		return "Who do you think is the Police?"
	default:
		return "Choose a player."
	}
}

func (s *Shell) resolveNight(ctx context.Context) error {
	out, err := s.gameService.ResolveNight(ctx, &game.ResolveNightInput{})
	if err != nil {
		return err
	}

	msg, err := s.narrator.GetNightResultMessage(ctx, &narration.GetNightResultMessageInput{Result: out.Result})
	if err != nil {
		return fmt.Errorf("failed to get night result message: %w", err)
	}

	s.palette.Header.Fprintf(s.out, "\n%s\n", msg.Title)
	fmt.Fprintln(s.out, msg.Message)
	for _, warning := range out.Result.Warnings {
		s.palette.Warn.Fprintln(s.out, warning)
	}

	if out.Phase.IsVoting() {
		return s.waitForEnter("Press Enter to start voting.")
	}
	return nil
}

func (s *Shell) handleVoting(ctx context.Context) error {
	current, err := s.gameService.CurrentVoter(ctx, &game.CurrentVoterInput{})
	if errors.Is(err, game.ErrPhaseComplete) {
		return s.resolveVoting(ctx)
	}
	if err != nil {
		return err
	}

	if err := s.passDevice(ctx, current.Player, models.PhaseVoting, current.Position, current.Total); err != nil {
		return err
	}

	options := append([]string{models.SkipVote}, current.Candidates...)
	for {
		choice, err := s.promptSelection("Who do you vote to eliminate?", options)
		if err != nil {
			return err
		}

		_, err = s.gameService.SubmitVote(ctx, &game.SubmitVoteInput{
			Player: current.Player,
			Choice: choice,
		})
		if err == nil {
			break
		}
		if !isRejection(err) {
			return err
		}
		s.renderError(ctx, err)
	}

	s.clearScreen()
	return nil
}

func (s *Shell) resolveVoting(ctx context.Context) error {
	out, err := s.gameService.ResolveVoting(ctx, &game.ResolveVotingInput{})
	if err != nil {
		return err
	}

	msg, err := s.narrator.GetVoteResultMessage(ctx, &narration.GetVoteResultMessageInput{Result: out.Result})
	if err != nil {
		return fmt.Errorf("failed to get vote result message: %w", err)
	}

	s.renderTally(msg.Title, out.Result)
	fmt.Fprintln(s.out, msg.Message)

	if out.Phase.IsNight() {
		return s.waitForEnter("Press Enter when everyone is ready for night.")
	}
	return nil
}

func (s *Shell) handleEnded(ctx context.Context) error {
	status, err := s.gameService.GetStatus(ctx, &game.GetStatusInput{})
	if err != nil {
		return fmt.Errorf("failed to get game status: %w", err)
	}

	msg, err := s.narrator.GetWinMessage(ctx, &narration.GetWinMessageInput{Winner: status.Winner})
	if err != nil {
		return fmt.Errorf("failed to get win message: %w", err)
	}

	s.palette.Header.Fprintf(s.out, "\n%s\n", msg.Title)
	fmt.Fprintln(s.out, msg.Message)
	s.renderRoster(s.dealt, status)
	s.renderHistory(status.History)

	again, err := s.confirm("Restart game?")
	if err != nil {
		return err
	}
	if !again {
		return errQuit
	}

	reset, err := s.gameService.ResetSession(ctx, &game.ResetSessionInput{})
	if err != nil {
		return err
	}
	s.dealt = nil
	s.logger.Info().Str("session_id", reset.SessionID).Msg("game restarted")
	return nil
}

func (s *Shell) clearScreen() {
	fmt.Fprint(s.out, "\033[H\033[2J")
}

// palette holds the shell's colors
type palette struct {
	Header, Info, Warn, Prompt, Mafia, Citizen *color.Color
}

func newPalette() *palette {
	return &palette{
		Header:  color.New(color.FgWhite, color.Bold),
		Info:    color.New(color.FgCyan),
		Warn:    color.New(color.FgHiYellow),
		Prompt:  color.New(color.FgHiWhite),
		Mafia:   color.New(color.FgRed, color.Bold),
		Citizen: color.New(color.FgGreen, color.Bold),
	}
}

func (p *palette) roleColor(registry *roles.Registry, role models.Role) *color.Color {
	if registry.IsMafia(role) {
		return p.Mafia
	}
	return p.Citizen
}
