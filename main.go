package main

import (
	"context"
	"log"

	"leads-server/internal/bootstrap"
	"leads-server/internal/config"
	"leads-server/internal/observability"
	"leads-server/internal/server"
)

func main() {
	ctx := context.Background()
	logger := observability.NewLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %s", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		log.Fatalf("failed to start server: %s", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("Server exiting")
}
