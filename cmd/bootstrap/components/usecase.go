package components

import (
	"time"

	"slotify/internal/pkg/clock"
	"slotify/internal/pkg/config"
	"slotify/internal/usecase/commands"
	"slotify/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.BookingConfig {
		return cfg.Booking
	},
	func(cfg config.Config) config.ReminderConfig {
		return cfg.Reminder
	},
	func(cfg config.Config) (*time.Location, error) {
		return cfg.Booking.Location()
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewMachineQueries,
	),
)
