// Package roles maps role identifiers to what they can do.
package roles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/mafia/internal/models"
)

var (
	// ErrUnknownRole is returned when an identifier is not registered
	ErrUnknownRole = errors.New("unknown role")

	// ErrRoleExists is returned when registering an identifier twice
	ErrRoleExists = errors.New("role already registered")

	// ErrInvalidRoleName is returned for blank or malformed identifiers
	ErrInvalidRoleName = errors.New("invalid role name")
)

// Capabilities describes a role's faction and night behavior
type Capabilities struct {
	// Faction is the side the role wins with
	Faction models.Faction

	// Action is what the role does at night
	Action models.ActionKind

	// Description is shown to the player when the role is revealed
	Description string
}

// HasNightAction reports whether the role makes a choice at night
func (c Capabilities) HasNightAction() bool {
	return c.Action.NeedsTarget()
}

// Registry is the closed set of roles a session can deal
type Registry struct {
	roles map[models.Role]Capabilities
	order []models.Role
}

// NewRegistry returns a registry holding the standard roles
func NewRegistry() *Registry {
	r := &Registry{
		roles: make(map[models.Role]Capabilities),
	}

	r.mustRegister(models.RoleMafia, Capabilities{
		Faction:     models.FactionMafia,
		Action:      models.ActionKill,
		Description: "Each night, choose someone to kill.",
	})
	r.mustRegister(models.RolePolice, Capabilities{
		Faction:     models.FactionCitizens,
		Action:      models.ActionInvestigate,
		Description: "Each night, learn whether one player is Mafia.",
	})
	r.mustRegister(models.RoleDoctor, Capabilities{
		Faction:     models.FactionCitizens,
		Action:      models.ActionSave,
		Description: "Each night, choose someone (yourself included) to save.",
	})
	r.mustRegister(models.RoleLikend, Capabilities{
		Faction:     models.FactionCitizens,
		Action:      models.ActionIdentifyPolice,
		Description: "Each night, guess who the Police is.",
	})
	r.mustRegister(models.RoleCitizen, Capabilities{
		Faction:     models.FactionCitizens,
		Action:      models.ActionNone,
		Description: "You do nothing at night. Find the Mafia by day.",
	})

	return r
}

func (r *Registry) mustRegister(role models.Role, caps Capabilities) {
	if err := r.Register(role, caps); err != nil {
		panic(err)
	}
}

// Register adds a role to the registry
func (r *Registry) Register(role models.Role, caps Capabilities) error {
	normalized := models.Role(normalize(string(role)))
	if normalized == "" || strings.ContainsAny(string(normalized), ":,\n") {
		return fmt.Errorf("%w: %q", ErrInvalidRoleName, role)
	}

	if _, ok := r.roles[normalized]; ok {
		return fmt.Errorf("%w: %s", ErrRoleExists, normalized)
	}

	if caps.Action == "" {
		caps.Action = models.ActionNone
	}

	r.roles[normalized] = caps
	r.order = append(r.order, normalized)
	return nil
}

// RegisterCitizenLike adds a town role with no night action
func (r *Registry) RegisterCitizenLike(name string) error {
	return r.Register(models.Role(name), Capabilities{
		Faction:     models.FactionCitizens,
		Action:      models.ActionNone,
		Description: "You do nothing at night. Find the Mafia by day.",
	})
}

// Parse resolves a user supplied identifier. Matching is exact after
// trimming and lower-casing.
func (r *Registry) Parse(name string) (models.Role, error) {
	role := models.Role(normalize(name))
	if _, ok := r.roles[role]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, strings.TrimSpace(name))
	}
	return role, nil
}

// Lookup returns the capabilities of a role
func (r *Registry) Lookup(role models.Role) (Capabilities, bool) {
	caps, ok := r.roles[role]
	return caps, ok
}

// Roles returns every registered role in registration order
func (r *Registry) Roles() []models.Role {
	out := make([]models.Role, len(r.order))
	copy(out, r.order)
	return out
}

// IsMafia reports whether the role belongs to the mafia faction
func (r *Registry) IsMafia(role models.Role) bool {
	caps, ok := r.roles[role]
	return ok && caps.Faction == models.FactionMafia
}

// ActionOf returns the night action of a role, ActionNone if unknown
func (r *Registry) ActionOf(role models.Role) models.ActionKind {
	caps, ok := r.roles[role]
	if !ok {
		return models.ActionNone
	}
	return caps.Action
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
