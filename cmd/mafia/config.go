package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/roles"
	"github.com/KirkDiggler/mafia/internal/services/game"
	"github.com/KirkDiggler/mafia/internal/services/narration"
)

type Config struct {
	configFile  string
	roles       string
	counts      map[models.Role]*int
	players     string
	playersFile string
	extraRoles  []string
	seed        int64
	tone        string
	logLevel    string
	noColor     bool
}

func (c *Config) validate() error {
	for role, count := range c.counts {
		if *count < 0 {
			return fmt.Errorf("invalid --%s count (must not be negative): %d", role, *count)
		}
	}
	switch narration.MessageTone(strings.ToLower(c.tone)) {
	case narration.ToneNeutral, narration.ToneDramatic, narration.ToneFunny:
	default:
		return fmt.Errorf("invalid tone (must be neutral, dramatic or funny): %q", c.tone)
	}
	if _, err := zerolog.ParseLevel(c.logLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.players != "" && c.playersFile != "" {
		return errors.New("--players and --players-file cannot be used together")
	}
	return nil
}

// roleSpec merges --roles with the per-role count flags
func (c *Config) roleSpec(registry *roles.Registry) (game.RoleSpec, error) {
	spec, err := game.ParseRoleSpec(registry, c.roles)
	if err != nil {
		return nil, err
	}
	for role, count := range c.counts {
		if *count > 0 {
			spec[role] += *count
		}
	}
	return spec, nil
}

// playerNames reads the roster from --players or --players-file
func (c *Config) playerNames() ([]string, error) {
	if c.playersFile != "" {
		data, err := os.ReadFile(c.playersFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read players file: %w", err)
		}
		return game.ParsePlayerNames(string(data)), nil
	}
	return game.ParsePlayerNames(strings.ReplaceAll(c.players, ",", "\n")), nil
}

func (c *Config) logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.logLevel)
	if err != nil {
		level = zerolog.Disabled
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("MAFIA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "mafia",
		Short:         "Play Mafia on one device, passed from player to player.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.configFile != "" {
				v.SetConfigFile(cfg.configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("failed to read config file: %w", err)
				}
				applyConfig(v, cmd.Flags())
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.configFile, "config", "c", "", "path to a yaml, toml or json config file (env: MAFIA_CONFIG)")
	fs.StringVarP(&cfg.roles, "roles", "r", "", `role counts, e.g. "mafia:1, police:1, doctor:1, citizen:2" (env: MAFIA_ROLES)`)

	cfg.counts = make(map[models.Role]*int)
	for _, role := range []models.Role{models.RoleMafia, models.RolePolice, models.RoleDoctor, models.RoleLikend, models.RoleCitizen} {
		count := new(int)
		cfg.counts[role] = count
		fs.IntVar(count, string(role), 0, fmt.Sprintf("number of %s players (env: MAFIA_%s)", role, strings.ToUpper(string(role))))
	}

	fs.StringVarP(&cfg.players, "players", "p", "", "comma separated player names in seating order (env: MAFIA_PLAYERS)")
	fs.StringVar(&cfg.playersFile, "players-file", "", "file with one player name per line (env: MAFIA_PLAYERS_FILE)")
	fs.StringSliceVar(&cfg.extraRoles, "extra-roles", nil, "additional citizen roles with no night action (env: MAFIA_EXTRA_ROLES)")
	fs.Int64Var(&cfg.seed, "seed", 0, "shuffle seed for a reproducible deal, 0 for random (env: MAFIA_SEED)")
	fs.StringVarP(&cfg.tone, "tone", "t", string(narration.ToneNeutral), "announcement tone: neutral, dramatic or funny (env: MAFIA_TONE)")
	fs.StringVar(&cfg.logLevel, "log-level", "disabled", "log level written to stderr (env: MAFIA_LOG_LEVEL)")
	fs.BoolVar(&cfg.noColor, "no-color", false, "disable colored output (env: MAFIA_NO_COLOR)")

	applyConfig(v, fs)

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("mafia v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

// applyConfig copies env and config file values onto flags the user did not set
func applyConfig(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, configValue(v.Get(f.Name)))
		}
	})
}

// configValue formats a viper value for pflag.Set. Lists from config files
// become comma separated.
func configValue(value any) string {
	if list, ok := value.([]any); ok {
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = fmt.Sprintf("%v", item)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprintf("%v", value)
}
