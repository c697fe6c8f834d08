package game

import (
	"context"
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type countingFrame struct {
	updates int
	stopAt  int
	err     error
}

func (f *countingFrame) Update() error {
	f.updates++
	if f.stopAt > 0 && f.updates == f.stopAt {
		return f.err
	}
	return nil
}

func TestFixedStepScheduler(t *testing.T) {
	frame := &countingFrame{}
	ticks := make([]int, 0, 5)
	s := &FixedStepScheduler{Frames: 5, AfterEach: func(tick int) { ticks = append(ticks, tick) }}

	if err := s.Run(context.Background(), frame); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if frame.updates != 5 {
		t.Errorf("Updates: got %d, want 5", frame.updates)
	}
	if len(ticks) != 5 || ticks[0] != 1 || ticks[4] != 5 {
		t.Errorf("AfterEach ticks: got %v", ticks)
	}
}

func TestFixedStepScheduler_Termination(t *testing.T) {
	frame := &countingFrame{stopAt: 3, err: ebiten.Termination}
	s := &FixedStepScheduler{Frames: 10}

	if err := s.Run(context.Background(), frame); err != nil {
		t.Fatalf("Termination should end the run without error, got %v", err)
	}
	if frame.updates != 3 {
		t.Errorf("Updates: got %d, want 3", frame.updates)
	}
}

func TestFixedStepScheduler_Error(t *testing.T) {
	boom := errors.New("boom")
	frame := &countingFrame{stopAt: 2, err: boom}
	s := &FixedStepScheduler{Frames: 10}

	if err := s.Run(context.Background(), frame); !errors.Is(err, boom) {
		t.Errorf("Run() error: got %v, want %v", err, boom)
	}
}

func TestFixedStepScheduler_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frame := &countingFrame{}
	s := &FixedStepScheduler{Frames: 10}
	if err := s.Run(ctx, frame); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error: got %v, want context.Canceled", err)
	}
	if frame.updates != 0 {
		t.Errorf("Updates after cancel: got %d, want 0", frame.updates)
	}
}

func TestEbitenScheduler_RequiresGame(t *testing.T) {
	s := &EbitenScheduler{}
	if err := s.Run(context.Background(), &countingFrame{}); err == nil {
		t.Error("Expected error for a frame that is not an ebiten.Game")
	}
}

type plainGame struct{ countingFrame }

func (g *plainGame) Draw(*ebiten.Image)         {}
func (g *plainGame) Layout(w, h int) (int, int) { return w, h }

type finalScreenGame struct {
	plainGame
	finalDraws int
}

func (g *finalScreenGame) DrawFinalScreen(ebiten.FinalScreen, *ebiten.Image, ebiten.GeoM) {
	g.finalDraws++
}

func TestWithContext_ForwardsFinalScreenDrawer(t *testing.T) {
	g := &finalScreenGame{}
	wrapped := withContext(context.Background(), g)

	fd, ok := wrapped.(ebiten.FinalScreenDrawer)
	if !ok {
		t.Fatal("wrapper should implement ebiten.FinalScreenDrawer when the game does")
	}
	fd.DrawFinalScreen(nil, nil, ebiten.GeoM{})
	if g.finalDraws != 1 {
		t.Errorf("DrawFinalScreen calls: got %d, want 1", g.finalDraws)
	}

	if err := wrapped.Update(); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if g.updates != 1 {
		t.Errorf("Updates: got %d, want 1", g.updates)
	}
}

func TestWithContext_PlainGame(t *testing.T) {
	wrapped := withContext(context.Background(), &plainGame{})
	if _, ok := wrapped.(ebiten.FinalScreenDrawer); ok {
		t.Error("wrapper should not add DrawFinalScreen for a game without it")
	}
}

func TestWithContext_CancelTerminates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := &finalScreenGame{}
	wrapped := withContext(ctx, g)
	cancel()

	if err := wrapped.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() after cancel: got %v, want ebiten.Termination", err)
	}
	if g.updates != 0 {
		t.Errorf("Updates after cancel: got %d, want 0", g.updates)
	}
}
