package game

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/roles"
	"github.com/KirkDiggler/mafia/internal/shuffle"
)

// AssignRoles validates the roster against the role spec and deals one role
// card to every player. Every permutation of the deck is equally likely. It
// has no side effects; the caller stores the result.
func AssignRoles(registry *roles.Registry, shuffler shuffle.Shuffler, players []string, spec RoleSpec) ([]models.Player, error) {
	players = trimNames(players)
	if err := validateRoster(players); err != nil {
		return nil, err
	}

	deck, err := buildDeck(registry, spec)
	if err != nil {
		return nil, err
	}

	if len(deck) != len(players) {
		return nil, invalid("%d players but %d roles, please match counts", len(players), len(deck))
	}

	shuffler.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	dealt := make([]models.Player, len(players))
	for i, name := range players {
		dealt[i] = models.Player{
			Name:  name,
			Role:  deck[i],
			Alive: true,
		}
	}
	return dealt, nil
}

// trimNames returns a copy of players with surrounding whitespace removed
func trimNames(players []string) []string {
	trimmed := make([]string, len(players))
	for i, name := range players {
		trimmed[i] = strings.TrimSpace(name)
	}
	return trimmed
}

// validateRoster expects names already trimmed
func validateRoster(players []string) error {
	if len(players) == 0 {
		return invalid("no players")
	}

	seen := make(map[string]bool, len(players))
	for i, name := range players {
		if name == "" {
			return invalid("player %d has an empty name", i+1)
		}
		if strings.EqualFold(name, models.SkipVote) {
			return invalid("%q is reserved", name)
		}
		if seen[name] {
			return invalid("duplicate player name %q", name)
		}
		seen[name] = true
	}
	return nil
}

// buildDeck expands the spec into role cards in registry order so the
// shuffle input does not depend on map iteration
func buildDeck(registry *roles.Registry, spec RoleSpec) ([]models.Role, error) {
	unknown := make([]string, 0)
	for role, count := range spec {
		if _, ok := registry.Lookup(role); !ok {
			unknown = append(unknown, string(role))
			continue
		}
		if count < 0 {
			return nil, invalid("negative count %d for %s", count, role)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, invalid("unknown roles: %s", strings.Join(unknown, ", "))
	}

	deck := make([]models.Role, 0, spec.Total())
	for _, role := range registry.Roles() {
		for i := 0; i < spec[role]; i++ {
			deck = append(deck, role)
		}
	}
	return deck, nil
}
