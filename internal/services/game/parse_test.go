package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/roles"
)

func TestParseRoleSpec(t *testing.T) {
	registry := roles.NewRegistry()

	spec, err := ParseRoleSpec(registry, "mafia:1, police:1, doctor:1, likend:1, citizen:2")
	require.NoError(t, err)
	assert.Equal(t, RoleSpec{
		models.RoleMafia:   1,
		models.RolePolice:  1,
		models.RoleDoctor:  1,
		models.RoleLikend:  1,
		models.RoleCitizen: 2,
	}, spec)
	assert.Equal(t, 6, spec.Total())
}

func TestParseRoleSpecAddsRepeatsAndAcceptsNewlines(t *testing.T) {
	registry := roles.NewRegistry()

	spec, err := ParseRoleSpec(registry, "Mafia: 1\ncitizen:1,\n CITIZEN : 2 ,")
	require.NoError(t, err)
	assert.Equal(t, RoleSpec{models.RoleMafia: 1, models.RoleCitizen: 3}, spec)
}

func TestParseRoleSpecErrors(t *testing.T) {
	registry := roles.NewRegistry()

	for _, text := range []string{
		"mafia",
		"maf:1",
		"mafia:one",
		"mafia:-1",
		"werewolf:2",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseRoleSpec(registry, text)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestParseRoleSpecEmpty(t *testing.T) {
	spec, err := ParseRoleSpec(roles.NewRegistry(), "  ")
	require.NoError(t, err)
	assert.Equal(t, 0, spec.Total())
}

func TestParsePlayerNames(t *testing.T) {
	players := ParsePlayerNames("Alice\n  Bob \n\n\tCarol\r\nAlice\n")
	assert.Equal(t, []string{"Alice", "Bob", "Carol", "Alice"}, players)
	assert.Empty(t, ParsePlayerNames("\n \n"))
}

func TestFormatRoleSpec(t *testing.T) {
	registry := roles.NewRegistry()
	spec := RoleSpec{
		models.RoleCitizen: 2,
		models.RoleMafia:   1,
		models.RoleDoctor:  0,
		models.RolePolice:  1,
	}

	text := FormatRoleSpec(registry, spec)
	assert.Equal(t, "mafia:1, police:1, citizen:2", text)

	parsed, err := ParseRoleSpec(registry, text)
	require.NoError(t, err)
	assert.Equal(t, 4, parsed.Total())
	assert.Equal(t, 2, parsed[models.RoleCitizen])

	assert.Empty(t, FormatRoleSpec(registry, nil))
}
