package systems

import (
	"os"
	"testing"

	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/entities"
)

// newTestScene 组装完整的测试场景（星星数量缩减）
func newTestScene(t *testing.T) (*ecs.EntityManager, *config.Registry, *entities.SolarSystem) {
	t.Helper()

	data, err := os.ReadFile("../../data/solar_system.yaml")
	if err != nil {
		t.Fatalf("read registry: %v", err)
	}
	reg, err := config.ParseRegistry(data)
	if err != nil {
		t.Fatalf("parse registry: %v", err)
	}

	cfg := config.DefaultSceneConfig()
	cfg.StarField.Count = 50

	em := ecs.NewEntityManager()
	ss, err := entities.AssembleSolarSystem(em, reg, cfg)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	return em, reg, ss
}

// newSingleBodyScene 只有一个天体的场景
func newSingleBodyScene(t *testing.T, body config.Body) (*ecs.EntityManager, *entities.SolarSystem) {
	t.Helper()

	reg := &config.Registry{
		Sun:       config.SunConfig{Name: "Sun", Radius: 5, Material: "plain"},
		Materials: []config.Material{{ID: "plain", Kind: config.MaterialStandard, Color: "#ffffff"}},
		Planets:   []config.Body{body},
	}
	if err := reg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	cfg := config.DefaultSceneConfig()
	cfg.StarField.Count = 0

	em := ecs.NewEntityManager()
	ss, err := entities.AssembleSolarSystem(em, reg, cfg)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	return em, ss
}
