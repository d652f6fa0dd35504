package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mafia/internal/common/clock"
	"github.com/KirkDiggler/mafia/internal/common/uuid"
	"github.com/KirkDiggler/mafia/internal/handlers/terminal"
	"github.com/KirkDiggler/mafia/internal/roles"
	gameService "github.com/KirkDiggler/mafia/internal/services/game"
	"github.com/KirkDiggler/mafia/internal/services/narration"
	"github.com/KirkDiggler/mafia/internal/shuffle"
)

const (
	releaseVersion = "0.1.0"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg).ExecuteContext(ctx))
}

func run(ctx context.Context, cfg *Config) error {
	if cfg.noColor {
		color.NoColor = true
	}
	logger := cfg.logger()

	// Initialize role registry
	registry := roles.NewRegistry()
	for _, name := range cfg.extraRoles {
		if err := registry.RegisterCitizenLike(name); err != nil {
			return fmt.Errorf("failed to register role %q: %w", name, err)
		}
	}

	spec, err := cfg.roleSpec(registry)
	if err != nil {
		return err
	}
	players, err := cfg.playerNames()
	if err != nil {
		return err
	}

	// Initialize shuffler
	shuffler := shuffle.New(&shuffle.Config{Seed: cfg.seed})

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		Registry:      registry,
		Shuffler:      shuffler,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        &logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	// Initialize narrator
	narrator, err := narration.New(&narration.Config{
		Shuffler: shuffler,
		Tone:     narration.ParseTone(cfg.tone),
	})
	if err != nil {
		return fmt.Errorf("failed to create narrator: %w", err)
	}

	line := terminal.NewLinePrompter()
	defer line.Close()

	shell, err := terminal.New(&terminal.Config{
		GameService: gameSvc,
		Narrator:    narrator,
		Registry:    registry,
		Prompter:    line,
		Out:         color.Output,
		Roles:       spec,
		Players:     players,
		Logger:      &logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create terminal shell: %w", err)
	}

	return shell.Run(ctx)
}
