package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"the7threason/internal/domain/model"
	"the7threason/internal/usecase"
)

const (
	flagChannel   = "channel"
	flagEventType = "event-type"
	flagDay       = "day"
	flagTime      = "time"
	flagOpponent  = "opponent"
)

var errNoChannel = errors.New("no channel: pass --channel or set DISCORD_CHANNEL_ID")

// NewCmdConfirm creates the confirm command.
func NewCmdConfirm(load Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confirm",
		Short: "Ask the team to confirm attendance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, channel, err := prepare(cmd, load)
			if err != nil {
				return err
			}
			receipt, err := rt.Notifier.Confirm(cmd.Context(), channel, requestFromFlags(cmd))
			return report(cmd, receipt, err)
		},
	}
	addChannelFlag(cmd)
	cmd.Flags().String(flagEventType, "", "event type, e.g. Scrim")
	cmd.Flags().String(flagDay, "", "day of the event")
	cmd.Flags().String(flagTime, "", "time of the event")
	cmd.Flags().String(flagOpponent, "", "who the event is against")
	return cmd
}

// NewCmdAnnounce creates the announce command.
func NewCmdAnnounce(load Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "announce",
		Short: "Announce an event and collect hour availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, channel, err := prepare(cmd, load)
			if err != nil {
				return err
			}
			receipt, err := rt.Notifier.Announce(cmd.Context(), channel, requestFromFlags(cmd))
			return report(cmd, receipt, err)
		},
	}
	addChannelFlag(cmd)
	cmd.Flags().String(flagEventType, "", "event type, e.g. Scrim")
	cmd.Flags().String(flagDay, "", "day of the event")
	cmd.Flags().String(flagOpponent, "", "who the event is against")
	return cmd
}

// NewCmdPoll creates the poll command.
func NewCmdPoll(load Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poll",
		Short: "Poll availability for the next seven days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, channel, err := prepare(cmd, load)
			if err != nil {
				return err
			}
			receipt, err := rt.Notifier.PollAvailability(cmd.Context(), channel)
			return report(cmd, receipt, err)
		},
	}
	addChannelFlag(cmd)
	return cmd
}

func addChannelFlag(cmd *cobra.Command) {
	cmd.Flags().String(flagChannel, "", "Discord channel ID (defaults to DISCORD_CHANNEL_ID)")
}

func prepare(cmd *cobra.Command, load Loader) (*Runtime, string, error) {
	rt, err := load()
	if err != nil {
		return nil, "", err
	}
	channel, _ := cmd.Flags().GetString(flagChannel)
	if channel == "" {
		channel = rt.DefaultChannel
	}
	if channel == "" {
		return nil, "", errNoChannel
	}
	return rt, channel, nil
}

// requestFromFlags treats a flag as present only if the user set it, even to "".
func requestFromFlags(cmd *cobra.Command) model.NotificationRequest {
	return model.NotificationRequest{
		EventType: optionalFlag(cmd, flagEventType),
		Day:       optionalFlag(cmd, flagDay),
		Time:      optionalFlag(cmd, flagTime),
		Opponent:  optionalFlag(cmd, flagOpponent),
	}
}

func optionalFlag(cmd *cobra.Command, name string) *string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil || !flag.Changed {
		return nil
	}
	value := flag.Value.String()
	return &value
}

func report(cmd *cobra.Command, receipt usecase.Receipt, err error) error {
	if err != nil {
		return fmt.Errorf("%s %s: %w", receipt.Kind, receipt.Stage, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "posted %s to channel %s (message %s, %d reactions)\n",
		receipt.Kind, receipt.Message.ChannelID, receipt.Message.MessageID, receipt.Reactions)
	return nil
}
