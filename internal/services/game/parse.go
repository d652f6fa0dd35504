package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/mafia/internal/roles"
)

// ParseRoleSpec reads a delimited role list such as
// "mafia:1, police:1, doctor:1, citizen:2". Entries may be separated by
// commas or newlines; repeated roles add up.
func ParseRoleSpec(registry *roles.Registry, text string) (RoleSpec, error) {
	spec := make(RoleSpec)

	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	})
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		name, countText, ok := strings.Cut(field, ":")
		if !ok {
			return nil, invalid("expected role:count, got %q", field)
		}

		role, err := registry.Parse(name)
		if err != nil {
			if errors.Is(err, roles.ErrUnknownRole) {
				return nil, invalid("%s", err)
			}
			return nil, err
		}

		count, err := strconv.Atoi(strings.TrimSpace(countText))
		if err != nil {
			return nil, invalid("count for %s is not a number: %q", role, strings.TrimSpace(countText))
		}
		if count < 0 {
			return nil, invalid("negative count %d for %s", count, role)
		}

		spec[role] += count
	}

	return spec, nil
}

// FormatRoleSpec writes spec back out in registry order, skipping zero counts.
// The result parses back to the same spec.
func FormatRoleSpec(registry *roles.Registry, spec RoleSpec) string {
	parts := make([]string, 0, len(spec))
	for _, role := range registry.Roles() {
		if count := spec[role]; count > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", role, count))
		}
	}
	return strings.Join(parts, ", ")
}

// ParsePlayerNames splits a newline-delimited roster, trimming whitespace and
// dropping blank lines. Duplicates are kept so DistributeRoles can report them.
func ParsePlayerNames(text string) []string {
	players := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			players = append(players, name)
		}
	}
	return players
}
