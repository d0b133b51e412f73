package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/inferenco/cedra-randomness-demos/internal/poll"
)

const (
	cursorPrevLine = "\033[F"
	clearLine      = "\033[K"
	clearScreen    = "\033[H\033[2J"
)

// ClearScreen homes the cursor and wipes the terminal
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, clearScreen)
}

// Animator draws frames in place on a terminal
type Animator struct {
	Out     io.Writer
	Sleeper poll.Sleeper // Optional - defaults to the wall clock
}

// NewAnimator creates an animator on the wall clock
func NewAnimator(out io.Writer) *Animator {
	return &Animator{Out: out, Sleeper: poll.RealSleeper{}}
}

func (a *Animator) sleeper() poll.Sleeper {
	if a.Sleeper == nil {
		return poll.RealSleeper{}
	}
	return a.Sleeper
}

// Play draws count frames. Every frame, the last included, is erased before
// returning so the caller can draw the settled result in the same place.
func (a *Animator) Play(ctx context.Context, count int, delay time.Duration, frame func(i int) []string) error {
	for i := 0; i < count; i++ {
		lines := frame(i)
		fmt.Fprint(a.Out, Join(lines))

		if err := a.sleeper().Sleep(ctx, delay); err != nil {
			return err
		}

		fmt.Fprint(a.Out, strings.Repeat(cursorPrevLine+clearLine, len(lines)))
	}
	return nil
}

// Dots writes label followed by count dots, delay apart
func (a *Animator) Dots(ctx context.Context, label string, count int, delay time.Duration) error {
	fmt.Fprint(a.Out, label)
	for i := 0; i < count; i++ {
		fmt.Fprint(a.Out, ".")
		if err := a.sleeper().Sleep(ctx, delay); err != nil {
			return err
		}
	}
	return nil
}

// Pause waits d unless ctx ends first
func (a *Animator) Pause(ctx context.Context, d time.Duration) error {
	return a.sleeper().Sleep(ctx, d)
}
