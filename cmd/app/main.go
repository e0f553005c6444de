package main

import (
	"context"
	"saapadu/config"
	"saapadu/di"
	"saapadu/shared/logger"
	"time"
)

const shutdownTimeout = 10 * time.Second

//	@title						Oor Saapadu Admin API
//	@version					1.0
//	@description				Admin back office for the Oor Saapadu food ordering platform.
//	@BasePath					/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	app := di.InitializeApp()
	app.Start(ctx)

	app.HTTP.Serve()

	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	app.Shutdown(shutdownCtx)
}
