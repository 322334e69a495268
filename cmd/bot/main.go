package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"the7threason/internal/cli"
	"the7threason/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.New(loadRuntime).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadRuntime() (*cli.Runtime, error) {
	services, err := di.InitializeServices()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return &cli.Runtime{
		Notifier:       services.Dispatcher,
		DefaultChannel: services.Config.DiscordChannelID,
		Serve:          services.App.Run,
	}, nil
}
