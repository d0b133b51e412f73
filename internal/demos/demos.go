// Package demos holds the terminal programs. Each demo reads moves from an
// io.Reader and draws to an io.Writer so it can run against a pipe in tests.
package demos

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	internal "github.com/inferenco/cedra-randomness-demos/internal"
	"github.com/inferenco/cedra-randomness-demos/internal/announce"
	"github.com/inferenco/cedra-randomness-demos/internal/bestiary"
	"github.com/inferenco/cedra-randomness-demos/internal/dice"
	"github.com/inferenco/cedra-randomness-demos/internal/domain/cards"
	"github.com/inferenco/cedra-randomness-demos/internal/domain/combat"
	"github.com/inferenco/cedra-randomness-demos/internal/domain/loot"
	"github.com/inferenco/cedra-randomness-demos/internal/randomness"
	"github.com/inferenco/cedra-randomness-demos/internal/render"
)

//go:generate mockgen -destination=mock/mock_randomness.go -package=mockdemos . Randomness

// Randomness is the slice of the provider the demos use
type Randomness interface {
	RollPair(ctx context.Context) randomness.Result[randomness.Pair]
	Flip(ctx context.Context) randomness.Result[randomness.CoinFace]
	OpenContainer(ctx context.Context, n int) randomness.Result[[]loot.Item]
	DealHand(ctx context.Context) randomness.Result[[]cards.Card]
	ResolveAttack(ctx context.Context, minDmg, maxDmg, critChancePercent int) randomness.Result[combat.Attack]
}

// Config holds the dependencies shared by every demo
type Config struct {
	In         io.Reader
	Out        io.Writer
	Randomness Randomness
	Animator   *render.Animator
	Roller     dice.Roller        // animation frames and enemy counter-attacks
	Announcer  announce.Announcer // Optional
	Bestiary   *bestiary.Bestiary // Optional
}

// Runner runs demos against one terminal
type Runner struct {
	in         *bufio.Scanner
	out        io.Writer
	randomness Randomness
	animator   *render.Animator
	roller     dice.Roller
	announcer  announce.Announcer
	bestiary   *bestiary.Bestiary
}

// New creates a demo runner
func New(cfg *Config) (*Runner, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.In == nil {
		return nil, internal.NewMissingParamError("cfg.In")
	}
	if cfg.Out == nil {
		return nil, internal.NewMissingParamError("cfg.Out")
	}
	if cfg.Randomness == nil {
		return nil, internal.NewMissingParamError("cfg.Randomness")
	}
	if cfg.Roller == nil {
		return nil, internal.NewMissingParamError("cfg.Roller")
	}

	animator := cfg.Animator
	if animator == nil {
		animator = render.NewAnimator(cfg.Out)
	}

	var announcer announce.Announcer = announce.Noop{}
	if cfg.Announcer != nil {
		announcer = cfg.Announcer
	}

	return &Runner{
		in:         bufio.NewScanner(cfg.In),
		out:        cfg.Out,
		randomness: cfg.Randomness,
		animator:   animator,
		roller:     cfg.Roller,
		announcer:  announcer,
		bestiary:   cfg.Bestiary,
	}, nil
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Runner) println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// readLine returns the next trimmed line, or false once input is exhausted
func (r *Runner) readLine() (string, bool) {
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func (r *Runner) announce(ctx context.Context, message string) {
	if err := r.announcer.Announce(ctx, message); err != nil {
		log.Printf("Failed to announce result: %v", err)
	}
}

func (r *Runner) simulationNote(simulated bool, message string) {
	if simulated {
		r.println(render.Dim.Sprint(message))
	}
}
