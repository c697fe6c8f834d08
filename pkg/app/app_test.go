package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/solarsystem/pkg/embedded"
	"github.com/decker502/solarsystem/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// App 通过 EbitenScheduler 运行时，DrawFinalScreen 必须对 ebiten 可见
var _ ebiten.FinalScreenDrawer = (*App)(nil)

func initRepoFS(t *testing.T) {
	t.Helper()
	root := os.DirFS(filepath.Join("..", ".."))
	embedded.Init(root, root)
	t.Cleanup(embedded.Reset)
}

func TestNewApp_Headless(t *testing.T) {
	initRepoFS(t)

	a, err := NewApp(Config{Headless: true})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	if w, h := a.Resize(1280, 720, 1); w != 1280 || h != 720 {
		t.Errorf("surface = %dx%d, want 1280x720", w, h)
	}

	scheduler := &game.FixedStepScheduler{Frames: 60}
	if err := scheduler.Run(context.Background(), a); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := a.Scene().Ticks(); got != 60 {
		t.Errorf("ticks = %d, want 60", got)
	}
	if got := len(a.Scene().SolarSystem().Planets); got != 6 {
		t.Errorf("planets = %d, want 6", got)
	}
	if a.Scene().Playback().State() != game.PlaybackPaused {
		t.Error("playback should start paused")
	}

	a.Close()
}

func TestNewApp_InvalidRegistry(t *testing.T) {
	initRepoFS(t)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	content := `
sun: {name: Sun, radius: 5, material: sun}
materials:
  - {id: sun, kind: basic}
bodies:
  - name: Earth
    radius: 1
    distance: 20
    speed: 0.005
    material: sun
    moons:
      - {name: Moon, radius: 0.3, distance: 3, speed: 0.015, material: sun, color: "#fff"}
`
	if err := os.WriteFile(bad, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewApp(Config{Headless: true, RegistryPath: bad})
	if err == nil {
		t.Fatal("expected error for registry with a stray field")
	}
	if !strings.Contains(err.Error(), "color") {
		t.Errorf("error should name the offending field: %v", err)
	}
}

func TestNewApp_MissingSceneConfig(t *testing.T) {
	initRepoFS(t)

	if _, err := NewApp(Config{Headless: true, ScenePath: "data/does_not_exist.yaml"}); err == nil {
		t.Error("expected error for missing scene config")
	}
}
