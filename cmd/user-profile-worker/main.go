package main

import (
	"context"

	"github.com/upservice/user-profile-service/internal/pkg/cmd"
	"github.com/upservice/user-profile-service/internal/userprofile"
	pkgcmd "github.com/upservice/user-profile-service/pkg/cmd"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	container := userprofile.NewDependencyContainer(
		infra.DB,
		infra.DBMigrations,
		infra.MessageBroker,
		infra.Logger,
	)

	notificationListener := container.MustCreateNotificationListener(
		infra.MessageBroker,
		infra.HTTPClientFactory,
		infra.Logger,
		infra.Metrics,
	)

	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		notificationListener.WorkerJob(),
	)
}
