package narration

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/shuffle"
)

// ErrNilShuffler is returned when the config has no shuffler
var ErrNilShuffler = errors.New("shuffler cannot be nil")

// service implements the Service interface
type service struct {
	shuffler shuffle.Shuffler
	tone     MessageTone
}

// New creates a new narration service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}

	tone := cfg.Tone
	if tone == "" {
		tone = ToneNeutral
	}

	return &service{
		shuffler: cfg.Shuffler,
		tone:     tone,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.shuffler.Intn(len(messages))]
}

func (s *service) toneFor(preferred MessageTone) MessageTone {
	if preferred == "" {
		return s.tone
	}
	return preferred
}

// GetPassDeviceMessage asks the table to hand the device to a player
func (s *service) GetPassDeviceMessage(ctx context.Context, input *GetPassDeviceMessageInput) (*GetPassDeviceMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch input.Phase {
	case models.PhaseNight:
		message = "Everyone else, close your eyes."
	case models.PhaseVoting:
		message = "Cast your vote in private."
	default:
		message = "Make sure nobody else can see the screen."
	}

	return &GetPassDeviceMessageOutput{
		Title:   fmt.Sprintf("%s, hold the phone", input.PlayerName),
		Message: message,
	}, nil
}

// GetRevealMessage tells the player holding the device who they are
func (s *service) GetRevealMessage(ctx context.Context, input *GetRevealMessageInput) (*GetRevealMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetRevealMessageOutput{
		Title:   fmt.Sprintf("You are: %s", displayRole(input.Role)),
		Message: input.Description,
	}, nil
}

// GetNightResultMessage announces what happened overnight
func (s *service) GetNightResultMessage(ctx context.Context, input *GetNightResultMessageInput) (*GetNightResultMessageOutput, error) {
	if input == nil || input.Result == nil {
		return nil, errors.New("night result cannot be nil")
	}

	tone := s.toneFor(input.PreferredTone)
	result := input.Result

	var messages []string
	switch {
	case result.Killed != "":
		switch tone {
		case ToneDramatic:
			messages = []string{
				fmt.Sprintf("The town wakes to a scream. %s was killed by the mafia.", result.Killed),
				fmt.Sprintf("Dawn breaks, but %s will not see it. The mafia struck in the night.", result.Killed),
			}
		case ToneFunny:
			messages = []string{
				fmt.Sprintf("%s has been permanently excused from the game. Mafia says hi.", result.Killed),
				fmt.Sprintf("%s slept with the fishes. Literally, the mafia got them.", result.Killed),
			}
		default:
			messages = []string{fmt.Sprintf("%s was killed by the mafia.", result.Killed)}
		}
	case result.Saved:
		switch tone {
		case ToneDramatic:
			messages = []string{
				"The mafia struck, but the doctor was faster. No player was killed.",
				"A knife in the dark, a steady hand in reply. Everyone lives to see the morning.",
			}
		case ToneFunny:
			messages = []string{
				"The doctor is on call tonight. No player was killed.",
				"Somebody's insurance actually paid out. No player was killed.",
			}
		default:
			messages = []string{"No player was killed."}
		}
	default:
		messages = []string{"No player was killed."}
	}

	return &GetNightResultMessageOutput{
		Title:   fmt.Sprintf("Night %d Results", result.Round),
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetVoteResultMessage announces the outcome of a vote
func (s *service) GetVoteResultMessage(ctx context.Context, input *GetVoteResultMessageInput) (*GetVoteResultMessageOutput, error) {
	if input == nil || input.Result == nil {
		return nil, errors.New("vote result cannot be nil")
	}

	tone := s.toneFor(input.PreferredTone)
	result := input.Result

	var messages []string
	if result.Eliminated != "" {
		votes := result.Tally[result.Eliminated]
		switch tone {
		case ToneDramatic:
			messages = []string{
				fmt.Sprintf("With %d votes, the town has spoken. %s is eliminated.", votes, result.Eliminated),
			}
		case ToneFunny:
			messages = []string{
				fmt.Sprintf("%s has been voted off the island with %d votes.", result.Eliminated, votes),
				fmt.Sprintf("%d people agree %s looked shifty. Bye!", votes, result.Eliminated),
			}
		default:
			messages = []string{fmt.Sprintf("%s was eliminated with %d votes.", result.Eliminated, votes)}
		}
	} else {
		reason := "No one received enough votes."
		if leaders := topCandidates(result.Tally); len(leaders) > 1 {
			reason = fmt.Sprintf("%s are tied.", strings.Join(leaders, " and "))
		}
		messages = []string{fmt.Sprintf("%s No player was eliminated.", reason)}
	}

	return &GetVoteResultMessageOutput{
		Title:   fmt.Sprintf("Vote %d Results", result.Round),
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetWinMessage announces the winning faction
func (s *service) GetWinMessage(ctx context.Context, input *GetWinMessageInput) (*GetWinMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch input.Winner {
	case models.WinnerCitizens:
		return &GetWinMessageOutput{
			Title:   "Citizens win!",
			Message: "All mafia are dead. Citizens win!",
		}, nil
	case models.WinnerMafia:
		return &GetWinMessageOutput{
			Title:   "Mafia win!",
			Message: "Mafia have taken over. Mafia win!",
		}, nil
	default:
		return nil, fmt.Errorf("no winner to announce: %q", input.Winner)
	}
}

// GetErrorMessage returns a user-friendly rejection message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out := &GetErrorMessageOutput{Message: input.Detail}
	switch input.ErrorType {
	case ErrorTypeValidation:
		out.Title = "Please fix the setup"
	case ErrorTypeIllegal:
		out.Title = "That move is not allowed"
	case ErrorTypeWrongPhase:
		out.Title = "Not now"
	default:
		out.Title = "Something went wrong"
	}
	return out, nil
}

func displayRole(role models.Role) string {
	name := string(role)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// topCandidates returns the players sharing the highest count, sorted
func topCandidates(tally map[string]int) []string {
	top := 0
	for _, count := range tally {
		if count > top {
			top = count
		}
	}
	if top == 0 {
		return nil
	}

	leaders := make([]string, 0)
	for name, count := range tally {
		if count == top {
			leaders = append(leaders, name)
		}
	}
	sort.Strings(leaders)
	return leaders
}
