package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/roles"
	"github.com/KirkDiggler/mafia/internal/services/game"
)

func TestNewCmdDefaults(t *testing.T) {
	cfg := &Config{}
	newCmd(cfg)

	assert.Equal(t, "neutral", cfg.tone)
	assert.Equal(t, "disabled", cfg.logLevel)
	assert.Len(t, cfg.counts, 5)
	assert.NoError(t, cfg.validate())
}

func TestNewCmdReadsEnvironment(t *testing.T) {
	t.Setenv("MAFIA_TONE", "funny")
	t.Setenv("MAFIA_MAFIA", "2")
	t.Setenv("MAFIA_PLAYERS", "Alice, Bob")

	cfg := &Config{}
	newCmd(cfg)

	assert.Equal(t, "funny", cfg.tone)
	assert.Equal(t, 2, *cfg.counts[models.RoleMafia])
	assert.Equal(t, "Alice, Bob", cfg.players)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("MAFIA_TONE", "funny")

	cfg := &Config{}
	cmd := newCmd(cfg)
	require.NoError(t, cmd.Flags().Parse([]string{"--tone", "dramatic"}))

	assert.Equal(t, "dramatic", cfg.tone)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *Config)
		errMsg string
	}{
		{
			name:   "bad tone",
			modify: func(cfg *Config) { cfg.tone = "sarcastic" },
			errMsg: "invalid tone",
		},
		{
			name:   "bad log level",
			modify: func(cfg *Config) { cfg.logLevel = "loud" },
			errMsg: "invalid log level",
		},
		{
			name:   "negative count",
			modify: func(cfg *Config) { *cfg.counts[models.RoleDoctor] = -1 },
			errMsg: "invalid --doctor count",
		},
		{
			name: "both player sources",
			modify: func(cfg *Config) {
				cfg.players = "Alice"
				cfg.playersFile = "players.txt"
			},
			errMsg: "cannot be used together",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			newCmd(cfg)
			tt.modify(cfg)

			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRoleSpecMergesCounts(t *testing.T) {
	cfg := &Config{}
	newCmd(cfg)
	cfg.roles = "mafia:1, police:1"
	*cfg.counts[models.RoleMafia] = 1
	*cfg.counts[models.RoleCitizen] = 3

	spec, err := cfg.roleSpec(roles.NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, game.RoleSpec{
		models.RoleMafia:   2,
		models.RolePolice:  1,
		models.RoleCitizen: 3,
	}, spec)
}

func TestRoleSpecRejectsUnknownRole(t *testing.T) {
	cfg := &Config{}
	newCmd(cfg)
	cfg.roles = "werewolf:1"

	_, err := cfg.roleSpec(roles.NewRegistry())
	assert.ErrorIs(t, err, game.ErrValidation)
}

func TestPlayerNames(t *testing.T) {
	cfg := &Config{players: "Alice, Bob,,Carol "}
	players, err := cfg.playerNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, players)

	path := filepath.Join(t.TempDir(), "players.txt")
	require.NoError(t, os.WriteFile(path, []byte("Dave\n\nEve\n"), 0o600))

	cfg = &Config{playersFile: path}
	players, err = cfg.playerNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Dave", "Eve"}, players)

	cfg = &Config{playersFile: filepath.Join(t.TempDir(), "missing.txt")}
	_, err = cfg.playerNames()
	assert.Error(t, err)
}

func TestConfigValue(t *testing.T) {
	assert.Equal(t, "jester,mayor", configValue([]any{"jester", "mayor"}))
	assert.Equal(t, "3", configValue(3))
}
