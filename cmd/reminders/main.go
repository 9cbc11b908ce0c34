package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"reminders/internal/config"
	"reminders/internal/logging"
	"reminders/internal/shortcuts"
	"reminders/internal/ui"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup happens before exit.
func run() int {
	configPath := config.ResolveConfigPath()
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		return 1
	}

	logger, closer, err := logging.Open(cfg.LogPath)
	if err != nil {
		fmt.Printf("failed to open log file: %v\n", err)
		return 1
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := shortcuts.New(cfg.Command, cfg.Shortcut, logger)
	if err := ui.Run(ctx, src, cfg, logger); err != nil {
		logger.Error("session ended with error", "error", err)
		fmt.Println(failureMessage(err))
		return 1
	}
	logger.Info("session ended")
	return 0
}

// failureMessage is what the user sees once the terminal is restored.
func failureMessage(err error) string {
	var loadErr *ui.LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Error()
	}
	return fmt.Sprintf("error running program: %v", err)
}
