package cli

import (
	"context"

	"github.com/spf13/cobra"

	"the7threason/internal/domain/model"
	"the7threason/internal/usecase"
)

// Notifier is the command-facing surface of usecase.Dispatcher.
type Notifier interface {
	Confirm(ctx context.Context, channelID string, req model.NotificationRequest) (usecase.Receipt, error)
	Announce(ctx context.Context, channelID string, req model.NotificationRequest) (usecase.Receipt, error)
	PollAvailability(ctx context.Context, channelID string) (usecase.Receipt, error)
}

// Runtime is what commands need once configuration has been loaded.
type Runtime struct {
	Notifier       Notifier
	DefaultChannel string
	Serve          func(ctx context.Context) error
}

// Loader builds the Runtime. It runs only when a command executes, so help output needs no credentials.
type Loader func() (*Runtime, error)

// New creates the root command with all subcommands registered.
func New(load Loader) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bot",
		Short: "Team coordination notices for Discord",
		Long: `Posts confirmation requests, event announcements and weekly
availability polls to a Discord channel, with the reactions members
use to answer already attached.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(NewCmdConfirm(load))
	rootCmd.AddCommand(NewCmdAnnounce(load))
	rootCmd.AddCommand(NewCmdPoll(load))
	rootCmd.AddCommand(NewCmdServe(load))

	return rootCmd
}
