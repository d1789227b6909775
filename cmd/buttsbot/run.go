package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/oklahomer/go-kasumi/logger"
	"github.com/oklahomer/go-sarah/v4"
	"github.com/spf13/cobra"

	"github.com/buttsbot/buttsbot"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to Discord and serve until interrupted",
	RunE:  runBot,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runBot(_ *cobra.Command, _ []string) error {
	// Load from .env (if present) and then from the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	config, err := buttsbot.LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	adapter, err := buttsbot.NewAdapter(config)
	if err != nil {
		return fmt.Errorf("failed to create adapter: %w", err)
	}

	// The in-memory user context storage keeps conversational state such as a pending prefix change.
	storage := sarah.NewUserContextStorage(sarah.NewCacheConfig())
	bot := sarah.NewBot(adapter, sarah.BotWithStorage(storage))
	sarah.RegisterBot(bot)

	handler := buttsbot.NewHandler(buttsbot.NewGuildState(config))
	for _, props := range handler.CommandProps() {
		sarah.RegisterCommandProps(props)
	}

	// Set up a context that cancels on SIGINT or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err = sarah.Run(ctx, sarah.NewConfig())
	if err != nil {
		return fmt.Errorf("failed to run: %w", err)
	}

	logger.Infof("Bot is running. Press Ctrl+C to stop.")

	// Block until shutdown signal.
	<-ctx.Done()

	logger.Infof("Shutting down...")
	return nil
}
