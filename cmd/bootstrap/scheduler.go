package bootstrap

import (
	"context"

	"slotify/internal/infra/readstore"
	"slotify/internal/infra/repository"
	"slotify/internal/scheduler"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		fx.Annotate(
			readstore.NewReminderReadStore,
			fx.As(new(scheduler.CandidateStore)),
		),
		fx.Annotate(
			repository.NewReminderLogRepository,
			fx.As(new(scheduler.ReminderLog)),
		),
		fx.Annotate(
			scheduler.NewTxDispatcher,
			fx.As(new(scheduler.Dispatcher)),
		),
		scheduler.NewReminder,
	),
	fx.Invoke(startScheduler),
)

func startScheduler(lc fx.Lifecycle, reminder *scheduler.Reminder) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			reminder.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			reminder.Stop()
			return nil
		},
	})
}
