// Package main is the entry point for the taskman CLI.
package main

import (
	"context"
	"os"

	"taskman/internal/backend/memory"
	"taskman/internal/cli"
	"taskman/internal/commands"
	"taskman/internal/config"
	"taskman/internal/service"
)

func main() {
	// Each run gets a fresh, empty store; nothing outlives the process.
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return memory.New(), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}
