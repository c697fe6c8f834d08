package entities

import (
	"os"
	"testing"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

func loadShippedRegistry(t *testing.T) *config.Registry {
	t.Helper()
	data, err := os.ReadFile("../../data/solar_system.yaml")
	if err != nil {
		t.Fatalf("read registry: %v", err)
	}
	reg, err := config.ParseRegistry(data)
	if err != nil {
		t.Fatalf("parse registry: %v", err)
	}
	return reg
}

func testSceneConfig() *config.SceneConfig {
	cfg := config.DefaultSceneConfig()
	cfg.StarField.Count = 100
	return cfg
}

func bodyName(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) string {
	t.Helper()
	orbit, ok := ecs.GetComponent[*components.OrbitComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no OrbitComponent", id)
	}
	return orbit.Body.Name
}

func TestAssembleSolarSystem_OrderAndCardinality(t *testing.T) {
	reg := loadShippedRegistry(t)
	em := ecs.NewEntityManager()

	ss, err := AssembleSolarSystem(em, reg, testSceneConfig())
	if err != nil {
		t.Fatalf("AssembleSolarSystem failed: %v", err)
	}

	bodies := reg.Bodies()
	if len(ss.Planets) != len(bodies) {
		t.Fatalf("expected %d planets, got %d", len(bodies), len(ss.Planets))
	}

	for i, id := range ss.Planets {
		body := &bodies[i]
		if got := bodyName(t, em, id); got != body.Name {
			t.Errorf("planet %d: expected %s, got %s", i, body.Name, got)
		}

		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		if transform.Scale != body.Radius {
			t.Errorf("%s: scale = %v, want radius %v", body.Name, transform.Scale, body.Radius)
		}
		if transform.Position != (mgl64.Vec3{body.Distance, 0, 0}) {
			t.Errorf("%s: initial position = %v, want (%v, 0, 0)", body.Name, transform.Position, body.Distance)
		}

		h, _ := ecs.GetComponent[*components.HierarchyComponent](em, id)
		if h.Parent != ss.Root {
			t.Errorf("%s: parent = %d, want root %d", body.Name, h.Parent, ss.Root)
		}

		moons := Children(em, id)
		if len(moons) != len(body.Moons) {
			t.Fatalf("%s: expected %d moons, got %d", body.Name, len(body.Moons), len(moons))
		}
		for j, moonID := range moons {
			if got := bodyName(t, em, moonID); got != body.Moons[j].Name {
				t.Errorf("%s moon %d: expected %s, got %s", body.Name, j, body.Moons[j].Name, got)
			}
		}
	}
}

func TestAssembleSolarSystem_MarsHasPhobosThenDeimos(t *testing.T) {
	reg := loadShippedRegistry(t)
	em := ecs.NewEntityManager()

	ss, err := AssembleSolarSystem(em, reg, testSceneConfig())
	if err != nil {
		t.Fatalf("AssembleSolarSystem failed: %v", err)
	}

	var mars ecs.EntityID
	for _, id := range ss.Planets {
		if bodyName(t, em, id) == "Mars" {
			mars = id
		}
	}
	if mars == ecs.InvalidEntity {
		t.Fatal("Mars not found")
	}

	children := Children(em, mars)
	if len(children) != 2 {
		t.Fatalf("Mars should have 2 children, got %d", len(children))
	}
	if bodyName(t, em, children[0]) != "Phobos" || bodyName(t, em, children[1]) != "Deimos" {
		t.Errorf("Mars children = [%s, %s], want [Phobos, Deimos]",
			bodyName(t, em, children[0]), bodyName(t, em, children[1]))
	}

	moonTransform, _ := ecs.GetComponent[*components.TransformComponent](em, children[0])
	if moonTransform.Position != (mgl64.Vec3{2, 0, 0}) {
		t.Errorf("Phobos local position = %v, want (2, 0, 0)", moonTransform.Position)
	}
}

func TestAssembleSolarSystem_SunAndEnvironment(t *testing.T) {
	reg := loadShippedRegistry(t)
	em := ecs.NewEntityManager()
	cfg := testSceneConfig()

	ss, err := AssembleSolarSystem(em, reg, cfg)
	if err != nil {
		t.Fatalf("AssembleSolarSystem failed: %v", err)
	}

	sunTransform, ok := ecs.GetComponent[*components.TransformComponent](em, ss.Sun)
	if !ok || sunTransform.Scale != 5 {
		t.Errorf("sun scale should be 5, got %+v", sunTransform)
	}
	if ecs.HasComponent[*components.OrbitComponent](em, ss.Sun) {
		t.Error("sun should not orbit")
	}
	sunMesh, _ := ecs.GetComponent[*components.MeshComponent](em, ss.Sun)
	if sunMesh.Lit() {
		t.Error("sun material should be unlit")
	}

	stars, ok := ecs.GetComponent[*components.StarFieldComponent](em, ss.StarField)
	if !ok || len(stars.Points) != cfg.StarField.Count {
		t.Fatalf("expected %d stars", cfg.StarField.Count)
	}
	half := cfg.StarField.Spread / 2
	for _, p := range stars.Points {
		if p.X() < -half || p.X() >= half || p.Z() < -half+cfg.StarField.OffsetZ || p.Z() >= half+cfg.StarField.OffsetZ {
			t.Fatalf("star %v out of range", p)
		}
	}

	point, ok := ecs.GetComponent[*components.PointLightComponent](em, ss.PointLight)
	if !ok || point.Intensity != 2000 || point.Decay != 2 {
		t.Errorf("unexpected point light %+v", point)
	}
	ambient, ok := ecs.GetComponent[*components.AmbientLightComponent](em, ss.AmbientLight)
	if !ok || ambient.Intensity != 0.1 {
		t.Errorf("unexpected ambient light %+v", ambient)
	}

	rootChildren := Children(em, ss.Root)
	// sun + 2 lights + star field + planets
	if len(rootChildren) != 4+len(ss.Planets) {
		t.Errorf("root should own %d children, got %d", 4+len(ss.Planets), len(rootChildren))
	}
}

func TestAssembleSolarSystem_StarFieldDeterministic(t *testing.T) {
	reg := loadShippedRegistry(t)
	cfg := testSceneConfig()

	em1 := ecs.NewEntityManager()
	ss1, _ := AssembleSolarSystem(em1, reg, cfg)
	em2 := ecs.NewEntityManager()
	ss2, _ := AssembleSolarSystem(em2, reg, cfg)

	s1, _ := ecs.GetComponent[*components.StarFieldComponent](em1, ss1.StarField)
	s2, _ := ecs.GetComponent[*components.StarFieldComponent](em2, ss2.StarField)
	for i := range s1.Points {
		if s1.Points[i] != s2.Points[i] {
			t.Fatalf("star %d differs between runs with the same seed", i)
		}
	}
}

func TestAssembleSolarSystem_Camera(t *testing.T) {
	reg := loadShippedRegistry(t)
	em := ecs.NewEntityManager()

	ss, err := AssembleSolarSystem(em, reg, testSceneConfig())
	if err != nil {
		t.Fatalf("AssembleSolarSystem failed: %v", err)
	}

	cam, ok := ecs.GetComponent[*components.CameraComponent](em, ss.Camera)
	if !ok {
		t.Fatal("camera entity missing CameraComponent")
	}
	if !cam.Position.ApproxEqualThreshold(mgl64.Vec3{20, 10, 40}, 1e-9) {
		t.Errorf("camera position = %v, want (20, 10, 40)", cam.Position)
	}

	ctrl, ok := ecs.GetComponent[*components.OrbitControlsComponent](em, ss.Camera)
	if !ok {
		t.Fatal("camera entity missing OrbitControlsComponent")
	}
	if ctrl.MinDistance != 20 || ctrl.MaxDistance != 50 || ctrl.DampingFactor != 0.05 {
		t.Errorf("unexpected controls %+v", ctrl)
	}
}

func TestAssembleSolarSystem_MoonDefaultMaterial(t *testing.T) {
	reg := loadShippedRegistry(t)
	em := ecs.NewEntityManager()

	ss, err := AssembleSolarSystem(em, reg, testSceneConfig())
	if err != nil {
		t.Fatalf("AssembleSolarSystem failed: %v", err)
	}

	earth := ss.Planets[2]
	moon := Children(em, earth)[0]
	mesh, _ := ecs.GetComponent[*components.MeshComponent](em, moon)
	want, _ := reg.Material(reg.DefaultMoonMaterial)
	if mesh.TextureID != want.Texture || !mesh.Lit() {
		t.Errorf("moon mesh = %+v, want material %s", mesh, want.ID)
	}
}

func TestAssembleSolarSystem_NilInputs(t *testing.T) {
	em := ecs.NewEntityManager()
	if _, err := AssembleSolarSystem(em, nil, testSceneConfig()); err == nil {
		t.Error("expected error for nil registry")
	}
}

func TestNewPlaybackButton(t *testing.T) {
	em := ecs.NewEntityManager()
	clicked := false
	ui := config.DefaultSceneConfig().UI

	id := NewPlaybackButton(em, "Play", nil, ui, func() { clicked = true })

	btn, ok := ecs.GetComponent[*components.ButtonComponent](em, id)
	if !ok {
		t.Fatal("button component missing")
	}
	if btn.Visible || btn.Enabled {
		t.Error("button should start hidden and disabled")
	}
	if btn.Width != ui.ButtonWidth || btn.OffsetRight != ui.Margin {
		t.Errorf("unexpected layout %+v", btn)
	}
	btn.OnClick()
	if !clicked {
		t.Error("OnClick not wired")
	}
}
