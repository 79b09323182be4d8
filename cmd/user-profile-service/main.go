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

	httpServer := infra.HTTPServer.MustLoad()
	container.MustRegisterHTTPHandlers(httpServer)

	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
