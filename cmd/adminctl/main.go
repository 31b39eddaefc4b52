package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/uyhome/adminctl/internal/buildinfo"
	"github.com/uyhome/adminctl/internal/cli"
	"github.com/uyhome/adminctl/internal/config"
	"github.com/uyhome/adminctl/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	logger := logging.NewTerminalLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.Run(ctx)
}
