//go:build wireinject

package di

import (
	"github.com/google/wire"

	"the7threason/internal/adapter/clock"
	"the7threason/internal/adapter/logging"
	"the7threason/internal/app"
	"the7threason/internal/config"
	"the7threason/internal/domain/ports"
	"the7threason/internal/usecase"
)

// InitializeServices wires the application components together.
func InitializeServices() (*Services, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		clock.NewLocal,
		wire.Bind(new(ports.Clock), new(*clock.Local)),
		provideTransport,
		usecase.NewDispatcher,
		wire.Bind(new(app.Poller), new(*usecase.Dispatcher)),
		provideSchedule,
		app.New,
		wire.Struct(new(Services), "*"),
	)
	return nil, nil
}
