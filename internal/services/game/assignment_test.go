package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/roles"
	"github.com/KirkDiggler/mafia/internal/shuffle"
)

func TestAssignRolesIsBijection(t *testing.T) {
	registry := roles.NewRegistry()
	players := []string{"Alice", "Bob", "Carol", "Dave", "Eve"}
	spec := RoleSpec{
		models.RoleMafia:   1,
		models.RoleDoctor:  1,
		models.RolePolice:  1,
		models.RoleCitizen: 2,
	}

	dealt, err := AssignRoles(registry, shuffle.New(&shuffle.Config{Seed: 1}), players, spec)
	require.NoError(t, err)
	require.Len(t, dealt, len(players))

	counts := make(map[models.Role]int)
	for i, p := range dealt {
		assert.Equal(t, players[i], p.Name)
		assert.True(t, p.Alive)
		counts[p.Role]++
	}
	assert.Equal(t, map[models.Role]int(spec), counts)
}

func TestAssignRolesValidation(t *testing.T) {
	registry := roles.NewRegistry()

	testCases := []struct {
		name    string
		players []string
		spec    RoleSpec
	}{
		{
			name:    "more players than roles",
			players: []string{"Alice", "Bob", "Carol"},
			spec:    RoleSpec{models.RoleMafia: 1, models.RoleCitizen: 1},
		},
		{
			name:    "more roles than players",
			players: []string{"Alice", "Bob"},
			spec:    RoleSpec{models.RoleMafia: 1, models.RoleCitizen: 2},
		},
		{
			name:    "zero players and zero roles",
			players: []string{},
			spec:    RoleSpec{},
		},
		{
			name:    "zero players with roles",
			players: nil,
			spec:    RoleSpec{models.RoleMafia: 1},
		},
		{
			name:    "players with zero roles",
			players: []string{"Alice"},
			spec:    RoleSpec{},
		},
		{
			name:    "duplicate name",
			players: []string{"Alice", "Bob", "Alice"},
			spec:    RoleSpec{models.RoleMafia: 1, models.RoleCitizen: 2},
		},
		{
			name:    "duplicate name after trimming",
			players: []string{"Alice", " Alice", "Bob"},
			spec:    RoleSpec{models.RoleMafia: 1, models.RoleCitizen: 2},
		},
		{
			name:    "reserved skip name with spaces",
			players: []string{"Alice", " Skip ", "Carol"},
			spec:    RoleSpec{models.RoleMafia: 1, models.RoleCitizen: 2},
		},
		{
			name:    "blank name",
			players: []string{"Alice", "  ", "Carol"},
			spec:    RoleSpec{models.RoleMafia: 1, models.RoleCitizen: 2},
		},
		{
			name:    "reserved skip name",
			players: []string{"Alice", "skip", "Carol"},
			spec:    RoleSpec{models.RoleMafia: 1, models.RoleCitizen: 2},
		},
		{
			name:    "unknown role",
			players: []string{"Alice", "Bob"},
			spec:    RoleSpec{"werewolf": 1, models.RoleCitizen: 1},
		},
		{
			name:    "negative count",
			players: []string{"Alice", "Bob"},
			spec:    RoleSpec{models.RoleMafia: 3, models.RoleCitizen: -1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dealt, err := AssignRoles(registry, shuffle.New(&shuffle.Config{Seed: 1}), tc.players, tc.spec)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, dealt)
		})
	}
}

func TestAssignRolesTrimsNames(t *testing.T) {
	registry := roles.NewRegistry()
	players := []string{" Alice", "Bob\t", "Carol"}

	dealt, err := AssignRoles(registry, shuffle.New(&shuffle.Config{Seed: 1}), players, RoleSpec{
		models.RoleMafia:   1,
		models.RoleCitizen: 2,
	})
	require.NoError(t, err)

	names := make([]string, len(dealt))
	for i, p := range dealt {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, names)
	assert.Equal(t, " Alice", players[0])
}

func TestAssignRolesIsUniform(t *testing.T) {
	registry := roles.NewRegistry()
	shuffler := shuffle.New(&shuffle.Config{Seed: 20240601})
	players := []string{"Alice", "Bob", "Carol"}
	spec := RoleSpec{
		models.RoleMafia:  1,
		models.RolePolice: 1,
		models.RoleDoctor: 1,
	}

	const trials = 6000
	permutations := make(map[[3]models.Role]int)
	for i := 0; i < trials; i++ {
		dealt, err := AssignRoles(registry, shuffler, players, spec)
		require.NoError(t, err)
		permutations[[3]models.Role{dealt[0].Role, dealt[1].Role, dealt[2].Role}]++
	}

	require.Len(t, permutations, 6, "every permutation should appear")
	for perm, count := range permutations {
		assert.InDelta(t, trials/6, count, 200, "permutation %v is biased", perm)
	}
}

func TestAssignRolesMafiaSeatIsUniform(t *testing.T) {
	registry := roles.NewRegistry()
	shuffler := shuffle.New(&shuffle.Config{Seed: 99})
	players := []string{"Alice", "Bob", "Carol"}
	spec := RoleSpec{models.RoleMafia: 1, models.RoleCitizen: 2}

	const trials = 3000
	mafiaSeats := make(map[string]int)
	for i := 0; i < trials; i++ {
		dealt, err := AssignRoles(registry, shuffler, players, spec)
		require.NoError(t, err)
		for _, p := range dealt {
			if p.Role == models.RoleMafia {
				mafiaSeats[p.Name]++
			}
		}
	}

	for _, name := range players {
		assert.InDelta(t, trials/3, mafiaSeats[name], 150, "%s is dealt mafia too often or too rarely", name)
	}
}
