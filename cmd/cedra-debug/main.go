// Command cedra-debug runs single contract calls and prints what comes back.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/inferenco/cedra-randomness-demos/internal/app"
	"github.com/inferenco/cedra-randomness-demos/internal/config"
	"github.com/inferenco/cedra-randomness-demos/internal/debugcmd"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env, err := app.Bootstrap(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	root := debugcmd.NewRootCommand(&debugcmd.Deps{
		CLI:             env.CLI,
		Indexer:         env.Indexer,
		Journal:         env.Journal,
		ContractAddress: cfg.Cedra.ContractAddress,
		Module:          cfg.Cedra.Module,
	})

	err = root.ExecuteContext(ctx)
	env.Close()
	if err != nil {
		os.Exit(1)
	}
}
