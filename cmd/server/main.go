package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/marksweb/internal/config"
	"github.com/nfrund/marksweb/internal/logging"
	"github.com/nfrund/marksweb/internal/server"
)

func main() {
	logging.New()
	if err := run(config.New()); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Provider) error {
	s, err := server.New(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	s.RegisterRoutes()
	return s.Start()
}
