package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Frame is advanced once per frame by a Scheduler.
type Frame interface {
	// Update advances the frame by one tick.
	// Returning ebiten.Termination ends the run without error.
	Update() error
}

// Scheduler drives a Frame until it terminates or ctx is cancelled.
type Scheduler interface {
	Run(ctx context.Context, frame Frame) error
}

// EbitenScheduler runs the frame in a real window at the engine's tick rate.
// The frame must also implement ebiten.Game.
type EbitenScheduler struct {
	Options *ebiten.RunGameOptions
}

// Run implements Scheduler.
func (s *EbitenScheduler) Run(ctx context.Context, frame Frame) error {
	g, ok := frame.(ebiten.Game)
	if !ok {
		return fmt.Errorf("frame %T does not implement ebiten.Game", frame)
	}
	return ebiten.RunGameWithOptions(withContext(ctx, g), s.Options)
}

// withContext wraps g so the loop stops once ctx is cancelled.
// Optional interfaces ebiten looks for on the game (FinalScreenDrawer) stay visible.
func withContext(ctx context.Context, g ebiten.Game) ebiten.Game {
	cg := &contextGame{Game: g, ctx: ctx}
	if fd, ok := g.(ebiten.FinalScreenDrawer); ok {
		return &contextFinalGame{contextGame: cg, drawer: fd}
	}
	return cg
}

// contextGame stops the ebiten loop once ctx is cancelled.
type contextGame struct {
	ebiten.Game
	ctx context.Context
}

type contextFinalGame struct {
	*contextGame
	drawer ebiten.FinalScreenDrawer
}

func (g *contextFinalGame) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	g.drawer.DrawFinalScreen(screen, offscreen, geoM)
}

func (g *contextGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	return g.Game.Update()
}

// FixedStepScheduler advances the frame a fixed number of times with no real
// time passing. Used by tests and headless tools for deterministic stepping.
type FixedStepScheduler struct {
	// Frames is the number of ticks to run.
	Frames int

	// AfterEach, if set, runs after every tick with the 1-based tick number.
	AfterEach func(tick int)
}

// Run implements Scheduler.
func (s *FixedStepScheduler) Run(ctx context.Context, frame Frame) error {
	for i := 1; i <= s.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := frame.Update(); err != nil {
			if errors.Is(err, ebiten.Termination) {
				return nil
			}
			return err
		}
		if s.AfterEach != nil {
			s.AfterEach(i)
		}
	}
	return nil
}
