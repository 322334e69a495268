package di

import (
	"log/slog"
	"os"

	"the7threason/internal/adapter/discord"
	"the7threason/internal/adapter/logging"
	"the7threason/internal/app"
	"the7threason/internal/config"
	"the7threason/internal/domain/ports"
	"the7threason/internal/usecase"
)

// Services bundles what the command layer needs for one process.
type Services struct {
	Config     *config.Config
	Dispatcher *usecase.Dispatcher
	App        *app.App
}

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewJSON(os.Stdout, cfg.LogLevel)
}

func provideTransport(cfg *config.Config, logger ports.Logger) ports.Transport {
	return discord.NewClient(cfg.DiscordAPIBase, cfg.DiscordBotToken, cfg.RequestTimeout, logger,
		discord.WithRateLimit(uint64(cfg.RateLimitRetries), cfg.RateLimitMaxWait))
}

func provideSchedule(cfg *config.Config) app.Schedule {
	return app.Schedule{
		Cron:      cfg.PollScheduleCron,
		ChannelID: cfg.DiscordChannelID,
	}
}
