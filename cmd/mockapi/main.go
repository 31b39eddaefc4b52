package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/uyhome/adminctl/internal/logging"
	"github.com/uyhome/adminctl/internal/mockapi"
)

// mockapi serves an in-memory copy of the admin API for local development.
func main() {
	addr := flag.String("a", "localhost:8080", "address to listen on")
	flag.Parse()

	logger := logging.NewTerminalLogger(os.Stderr, logging.ParseLevel("info"))

	ctx := context.Background()
	srv := mockapi.New()
	logger.Info(ctx, "mock API listening", "addr", *addr,
		"phone", mockapi.AdminPhone, "password", mockapi.AdminPassword)

	if err := http.ListenAndServe(*addr, srv.Handler()); err != nil {
		logger.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}
