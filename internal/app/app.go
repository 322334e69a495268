package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"the7threason/internal/domain/ports"
	"the7threason/internal/usecase"
)

// Poller posts an availability poll to a channel.
type Poller interface {
	PollAvailability(ctx context.Context, channelID string) (usecase.Receipt, error)
}

// Schedule configures the recurring availability poll.
type Schedule struct {
	Cron      string
	ChannelID string
}

// App manages the lifecycle of the availability poll scheduler.
type App struct {
	cron     *cron.Cron
	poller   Poller
	logger   ports.Logger
	schedule Schedule
}

// New constructs an App instance.
func New(poller Poller, logger ports.Logger, schedule Schedule) *App {
	return &App{
		cron:     cron.New(),
		poller:   poller,
		logger:   logger,
		schedule: schedule,
	}
}

// Run posts availability polls according to the cron schedule until ctx is done.
func (a *App) Run(ctx context.Context) error {
	if a.schedule.Cron == "" {
		return errors.New("POLL_SCHEDULE_CRON is empty, nothing to schedule")
	}
	if a.schedule.ChannelID == "" {
		return errors.New("DISCORD_CHANNEL_ID is required for scheduled polls")
	}
	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule.Cron, "channel", a.schedule.ChannelID)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) scheduleJob() error {
	if _, err := a.cron.AddFunc(a.schedule.Cron, a.runScheduledPoll); err != nil {
		return fmt.Errorf("parse poll schedule %q: %w", a.schedule.Cron, err)
	}
	return nil
}

func (a *App) runScheduledPoll() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if _, err := a.poller.PollAvailability(ctx, a.schedule.ChannelID); err != nil {
		a.logger.Error(ctx, "scheduled availability poll failed", "error", err)
	}
}
