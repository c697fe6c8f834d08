package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSceneConfigShipped(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "data", "scene.yaml"))
	if err != nil {
		t.Fatalf("Failed to read shipped scene config: %v", err)
	}

	cfg, err := ParseSceneConfig(data)
	if err != nil {
		t.Fatalf("ParseSceneConfig() error: %v", err)
	}

	if cfg.Controls.MinDistance != 20 || cfg.Controls.MaxDistance != 50 {
		t.Errorf("Zoom bounds: got [%v, %v], want [20, 50]", cfg.Controls.MinDistance, cfg.Controls.MaxDistance)
	}
	if cfg.Camera.Position != [3]float64{20, 10, 40} {
		t.Errorf("Camera position: got %v", cfg.Camera.Position)
	}
	if cfg.StarField.Count != 5000 {
		t.Errorf("Star count: got %d, want 5000", cfg.StarField.Count)
	}
	if cfg.Audio.Volume != 0.5 || !cfg.Audio.Loop {
		t.Errorf("Audio config: got %+v", cfg.Audio)
	}
}

func TestParseSceneConfigDefaults(t *testing.T) {
	cfg, err := ParseSceneConfig([]byte("camera:\n  fov: 60\n"))
	if err != nil {
		t.Fatalf("ParseSceneConfig() error: %v", err)
	}

	if cfg.Camera.FOV != 60 {
		t.Errorf("FOV: got %v, want 60", cfg.Camera.FOV)
	}
	// 未出现的字段保留默认值
	if cfg.Camera.Far != 1000 {
		t.Errorf("Far: got %v, want default 1000", cfg.Camera.Far)
	}
	if cfg.Controls.DampingFactor != 0.05 {
		t.Errorf("DampingFactor: got %v, want default 0.05", cfg.Controls.DampingFactor)
	}
}

func TestParseSceneConfigErrors(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		errContains string
	}{
		{"inverted zoom bounds", "controls:\n  minDistance: 60\n  maxDistance: 50\n", "minDistance"},
		{"bad fov", "camera:\n  fov: 0\n", "camera.fov"},
		{"near after far", "camera:\n  near: 10\n  far: 5\n", "near < far"},
		{"bad damping", "controls:\n  dampingFactor: 1.5\n", "dampingFactor"},
		{"bad color", "lights:\n  ambient:\n    color: white\n", "lights.ambient.color"},
		{"volume out of range", "audio:\n  volume: 2\n", "audio.volume"},
		{"unknown field", "camera:\n  zoom: 3\n", "zoom"},
		{"wrong vector size", "camera:\n  position: [1, 2]\n", "want 3 elements"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSceneConfig([]byte(tt.yamlContent))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Error %q does not contain %q", err.Error(), tt.errContains)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    [4]uint8
		wantErr bool
	}{
		{"#ffffff", [4]uint8{255, 255, 255, 255}, false},
		{"#c1440e", [4]uint8{0xc1, 0x44, 0x0e, 255}, false},
		{"0x102030", [4]uint8{0x10, 0x20, 0x30, 255}, false},
		{"#11223380", [4]uint8{0x11, 0x22, 0x33, 0x80}, false},
		{"#fff", [4]uint8{}, true},
		{"#gggggg", [4]uint8{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if [4]uint8{got.R, got.G, got.B, got.A} != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
