package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/inferenco/cedra-randomness-demos/internal/config"
	"github.com/inferenco/cedra-randomness-demos/internal/demos"
)

// Demo is one of the demos.Runner methods, e.g. (*demos.Runner).DiceRoll
type Demo func(r *demos.Runner, ctx context.Context) error

// RunDemo is the whole main function of a demo binary. Ctrl+C prints
// "Exiting..." and exits cleanly even while the demo waits on stdin.
func RunDemo(demo Demo) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Println("Standard input is not a terminal; prompts will end at EOF")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	env, err := Bootstrap(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer env.Close()

	runner, err := env.Runner(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to create demo: %v", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer signal.Stop(sc)

	done := make(chan error, 1)
	go func() {
		done <- demo(runner, ctx)
	}()

	select {
	case <-sc:
		cancel()
		fmt.Println("\nExiting...")
	case err := <-done:
		if err != nil && ctx.Err() == nil {
			env.Close()
			log.Fatalf("Demo failed: %v", err)
		}
	}
}
