package game

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/decker502/solarsystem/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio context shared by all tests
// Ebitengine only allows one audio context to be created
var testAudioContext *audio.Context

// TestMain sets up the shared audio context before running tests
func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(48000)
	os.Exit(m.Run())
}

const testResourceYAML = `
version: "1.0"
base_path: assets
groups:
  textures:
    images:
      - id: TEX_ROCK
        path: textures/rock.png
      - id: TEX_MISSING
        path: textures/missing.png
      - id: TEX_NOEXT
        path: textures/plain
  music:
    sounds:
      - id: MUSIC_WAV
        path: audio/track.wav
`

// encodeTestPNG creates a simple 10x10 blue PNG.
func encodeTestPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	blue := color.RGBA{B: 255, A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, blue)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func newTestResourceManager(t *testing.T) *ResourceManager {
	t.Helper()
	embedded.Init(fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte(testResourceYAML)},
		"assets/textures/rock.png":     {Data: encodeTestPNG(t)},
		"assets/audio/track.wav":       {Data: []byte("RIFF")},
	}, fstest.MapFS{})
	t.Cleanup(embedded.Reset)

	rm := NewResourceManager(testAudioContext)
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig() error: %v", err)
	}
	return rm
}

func drain(t *testing.T, rm *ResourceManager) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rm.Drain(ctx); err != nil {
		t.Fatalf("Drain() error: %v", err)
	}
}

// TestParseResourceConfigShipped tests the resources.yaml shipped with the app
func TestParseResourceConfigShipped(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "assets", "config", "resources.yaml"))
	if err != nil {
		t.Fatalf("Failed to read shipped resource config: %v", err)
	}

	config, resourceMap, err := ParseResourceConfig(data)
	if err != nil {
		t.Fatalf("ParseResourceConfig() error: %v", err)
	}
	if config.BasePath != "assets" {
		t.Errorf("Expected base_path 'assets', got '%s'", config.BasePath)
	}

	expected := map[string]string{
		"TEX_SUN":          "assets/textures/2k_sun.jpg",
		"TEX_MOON":         "assets/textures/2k_moon.jpg",
		"MUSIC_BACKGROUND": "assets/audio/background.mp3",
	}
	for id, want := range expected {
		if got := resourceMap[id]; got != want {
			t.Errorf("resourceMap[%s]: got %q, want %q", id, got, want)
		}
	}
}

func TestParseResourceConfigDuplicateID(t *testing.T) {
	yamlContent := `
base_path: assets
groups:
  a:
    images:
      - {id: TEX_X, path: x.png}
  b:
    images:
      - {id: TEX_X, path: y.png}
`
	_, _, err := ParseResourceConfig([]byte(yamlContent))
	if err == nil || !strings.Contains(err.Error(), "duplicate resource ID TEX_X") {
		t.Errorf("Expected duplicate ID error, got %v", err)
	}
}

func TestResourceManager_DefaultExtension(t *testing.T) {
	rm := newTestResourceManager(t)
	if p, _ := rm.ResolvePath("TEX_NOEXT"); p != "assets/textures/plain.png" {
		t.Errorf("ResolvePath(TEX_NOEXT): got %q, want assets/textures/plain.png", p)
	}
}

func TestResourceManager_LoadImageAsync(t *testing.T) {
	rm := newTestResourceManager(t)

	var loaded *ebiten.Image
	if err := rm.LoadImageAsync("TEX_ROCK", func(id string, img *ebiten.Image) {
		loaded = img
	}); err != nil {
		t.Fatalf("LoadImageAsync() error: %v", err)
	}
	if rm.Pending() != 1 {
		t.Errorf("Pending: got %d, want 1", rm.Pending())
	}

	drain(t, rm)

	if loaded == nil {
		t.Fatal("Callback was not invoked")
	}
	if w, h := loaded.Bounds().Dx(), loaded.Bounds().Dy(); w != 10 || h != 10 {
		t.Errorf("Image size: got %dx%d, want 10x10", w, h)
	}
	if rm.GetImage("TEX_ROCK") != loaded {
		t.Error("Loaded image should be cached")
	}

	// 已缓存时回调立即执行
	calledSync := false
	rm.LoadImageAsync("TEX_ROCK", func(string, *ebiten.Image) { calledSync = true })
	if !calledSync {
		t.Error("Callback for a cached image should run immediately")
	}
	if rm.Pending() != 0 {
		t.Errorf("Pending after cached load: got %d, want 0", rm.Pending())
	}
}

func TestResourceManager_LoadFailureIsAbsorbed(t *testing.T) {
	rm := newTestResourceManager(t)

	called := false
	if err := rm.LoadImageAsync("TEX_MISSING", func(string, *ebiten.Image) { called = true }); err != nil {
		t.Fatalf("LoadImageAsync() should not fail synchronously for a missing file: %v", err)
	}
	drain(t, rm)

	if called {
		t.Error("Callback must not run for a failed load")
	}
	if rm.GetImage("TEX_MISSING") != nil {
		t.Error("Failed image must not be cached")
	}
	if rm.LoadError("TEX_MISSING") == nil {
		t.Error("LoadError should record the failure")
	}
}

func TestResourceManager_UnknownID(t *testing.T) {
	rm := newTestResourceManager(t)
	if err := rm.LoadImageAsync("TEX_NOPE", nil); err == nil {
		t.Error("Expected error for unknown resource ID")
	}
	if err := rm.LoadMusicAsync("MUSIC_NOPE", true, nil); err == nil {
		t.Error("Expected error for unknown resource ID")
	}
}

func TestResourceManager_UnsupportedMusic(t *testing.T) {
	rm := newTestResourceManager(t)

	called := false
	if err := rm.LoadMusicAsync("MUSIC_WAV", true, func(string, *audio.Player) { called = true }); err != nil {
		t.Fatalf("LoadMusicAsync() error: %v", err)
	}
	drain(t, rm)

	if called {
		t.Error("Callback must not run for an unsupported format")
	}
	if err := rm.LoadError("MUSIC_WAV"); err == nil || !strings.Contains(err.Error(), "unsupported audio format") {
		t.Errorf("LoadError: got %v, want unsupported audio format", err)
	}
}

func TestResourceManager_NoAudioContext(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte(testResourceYAML)},
	}, fstest.MapFS{})
	defer embedded.Reset()

	rm := NewResourceManager(nil)
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatal(err)
	}
	if err := rm.LoadMusicAsync("MUSIC_WAV", true, nil); err != nil {
		t.Fatalf("LoadMusicAsync() error: %v", err)
	}
	if rm.Pending() != 0 {
		t.Errorf("No load should be started without an audio context, pending=%d", rm.Pending())
	}
	if rm.LoadError("MUSIC_WAV") != ErrNoAudioContext {
		t.Errorf("LoadError: got %v, want ErrNoAudioContext", rm.LoadError("MUSIC_WAV"))
	}
}

func TestLoadFont(t *testing.T) {
	rm := NewResourceManager(nil)

	small, err := rm.LoadFont(12)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	large, err := rm.LoadFont(24)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}

	if small.Size != 12 || large.Size != 24 {
		t.Errorf("unexpected sizes %v, %v", small.Size, large.Size)
	}
	if small.Source != large.Source {
		t.Error("font source should be parsed once and shared")
	}
}
