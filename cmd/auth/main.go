// Command auth runs the pitwall authentication service.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aussiebroadwan/pitwall/internal/auth/app"
)

func main() {
	if err := run(); err != nil {
		slog.Error("auth service exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	return application.Run()
}
