package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/bramapp/bram/internal/cli"
	"github.com/bramapp/bram/internal/config"
	"github.com/bramapp/bram/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
