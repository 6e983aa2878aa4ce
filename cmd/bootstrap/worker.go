package bootstrap

import (
	"context"

	"zen-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewNotificationRetryWorker,
	),
	fx.Invoke(startRetryWorker),
)

func startRetryWorker(lc fx.Lifecycle, w *worker.NotificationRetryWorker) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go w.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
