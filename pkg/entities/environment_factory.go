package entities

import (
	"math/rand"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// NewAmbientLightEntity 创建环境光实体
func NewAmbientLightEntity(em *ecs.EntityManager, parent ecs.EntityID, cfg config.AmbientLightConfig) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.AmbientLightComponent{
		Color:     cfg.Color.RGBA(),
		Intensity: cfg.Intensity,
	})
	ecs.AddComponent(em, entity, &components.HierarchyComponent{})
	attachChild(em, parent, entity)
	return entity
}

// NewPointLightEntity 创建点光源实体（默认位于太阳中心）
func NewPointLightEntity(em *ecs.EntityManager, parent ecs.EntityID, cfg config.PointLightConfig) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.TransformComponent{
		Position: mgl64.Vec3(cfg.Position),
		Scale:    1,
	})
	ecs.AddComponent(em, entity, &components.PointLightComponent{
		Color:     cfg.Color.RGBA(),
		Intensity: cfg.Intensity,
		Decay:     cfg.Decay,
	})
	ecs.AddComponent(em, entity, &components.HierarchyComponent{})
	attachChild(em, parent, entity)
	return entity
}

// NewStarFieldEntity 创建星空实体
//
// 星星坐标在 [-Spread/2, Spread/2) 内均匀分布，z 再加上 OffsetZ。
// 使用配置中的种子，同一配置生成的星空完全一致。
func NewStarFieldEntity(em *ecs.EntityManager, parent ecs.EntityID, cfg config.StarFieldConfig) ecs.EntityID {
	rng := rand.New(rand.NewSource(cfg.Seed))

	points := make([]mgl64.Vec3, cfg.Count)
	half := cfg.Spread / 2
	for i := range points {
		points[i] = mgl64.Vec3{
			rng.Float64()*cfg.Spread - half,
			rng.Float64()*cfg.Spread - half,
			rng.Float64()*cfg.Spread - half + cfg.OffsetZ,
		}
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.StarFieldComponent{
		Points:  points,
		Size:    cfg.Size,
		Color:   cfg.Color.RGBA(),
		Opacity: cfg.Opacity,
	})
	ecs.AddComponent(em, entity, &components.HierarchyComponent{})
	attachChild(em, parent, entity)
	return entity
}

// NewCameraEntity 创建透视相机实体（带轨道控制）
//
// 轨道控制的初始球坐标由相机位置相对目标点的偏移计算，
// 距离先夹到 [MinDistance, MaxDistance]。
// 投影矩阵在第一次 Resize 时按实际宽高比重建。
func NewCameraEntity(em *ecs.EntityManager, camCfg config.CameraConfig, ctrlCfg config.ControlsConfig) ecs.EntityID {
	position := mgl64.Vec3(camCfg.Position)
	target := mgl64.Vec3(camCfg.Target)

	s := utils.SphericalFromVec3(position.Sub(target))
	s.Radius = mgl64.Clamp(s.Radius, ctrlCfg.MinDistance, ctrlCfg.MaxDistance)
	s.Polar = utils.ClampPolar(s.Polar)

	cam := &components.CameraComponent{
		FOV:      camCfg.FOV,
		Near:     camCfg.Near,
		Far:      camCfg.Far,
		Aspect:   1,
		Position: target.Add(s.Vec3()),
		Target:   target,
	}
	cam.Projection = utils.PerspectiveFromDegrees(cam.FOV, cam.Aspect, cam.Near, cam.Far)
	cam.View = mgl64.LookAtV(cam.Position, cam.Target, mgl64.Vec3{0, 1, 0})

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, cam)
	ecs.AddComponent(em, entity, &components.OrbitControlsComponent{
		Radius:        s.Radius,
		Azimuth:       s.Azimuth,
		Polar:         s.Polar,
		ZoomScale:     1,
		MinDistance:   ctrlCfg.MinDistance,
		MaxDistance:   ctrlCfg.MaxDistance,
		EnableDamping: ctrlCfg.EnableDamping,
		DampingFactor: ctrlCfg.DampingFactor,
		RotateSpeed:   ctrlCfg.RotateSpeed,
		ZoomSpeed:     ctrlCfg.ZoomSpeed,
		TouchID:       -1,
	})
	return entity
}
