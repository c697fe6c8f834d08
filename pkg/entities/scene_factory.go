package entities

import (
	"fmt"
	"log"

	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
)

// SolarSystem 组装完成的场景句柄
//
// Planets 与 registry.Bodies() 一一对应且顺序相同；
// 每个行星的层级子节点与其 Body.Moons 一一对应且顺序相同。
type SolarSystem struct {
	Root         ecs.EntityID
	Sun          ecs.EntityID
	Planets      []ecs.EntityID
	Camera       ecs.EntityID
	StarField    ecs.EntityID
	AmbientLight ecs.EntityID
	PointLight   ecs.EntityID
}

// AssembleSolarSystem 根据注册表和场景配置创建全部场景实体
//
// 创建顺序：根节点 → 太阳 → 环境光 → 点光源 → 星空 → 行星（及其卫星）→ 相机。
//
// 参数：
//   - em: 实体管理器
//   - reg: 已校验的天体注册表（只读，实体持有其中 Body 的指针）
//   - cfg: 场景配置
//
// 返回：
//   - *SolarSystem: 场景句柄
//   - error: 材质无法解析时返回错误
func AssembleSolarSystem(em *ecs.EntityManager, reg *config.Registry, cfg *config.SceneConfig) (*SolarSystem, error) {
	if reg == nil || cfg == nil {
		return nil, fmt.Errorf("assemble: registry and scene config are required")
	}

	root := NewRootEntity(em)

	sun, err := NewSunEntity(em, root, reg)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	ss := &SolarSystem{
		Root:         root,
		Sun:          sun,
		AmbientLight: NewAmbientLightEntity(em, root, cfg.Lights.Ambient),
		PointLight:   NewPointLightEntity(em, root, cfg.Lights.Point),
		StarField:    NewStarFieldEntity(em, root, cfg.StarField),
	}

	ss.Planets = make([]ecs.EntityID, 0, reg.NumBodies())
	moonCount := 0

	for i := 0; i < reg.NumBodies(); i++ {
		planet := reg.Body(i)
		material, ok := reg.Material(planet.Material)
		if !ok {
			return nil, fmt.Errorf("assemble: body '%s': unknown material '%s'", planet.Name, planet.Material)
		}
		planetID := NewBodyEntity(em, root, planet, material)
		ss.Planets = append(ss.Planets, planetID)

		for j := range planet.Moons {
			moon := &planet.Moons[j]
			moonMaterialID := reg.MoonMaterial(moon)
			moonMaterial, ok := reg.Material(moonMaterialID)
			if !ok {
				return nil, fmt.Errorf("assemble: moon '%s': unknown material '%s'", moon.Name, moonMaterialID)
			}
			NewBodyEntity(em, planetID, moon, moonMaterial)
			moonCount++
		}
	}

	ss.Camera = NewCameraEntity(em, cfg.Camera, cfg.Controls)

	log.Printf("[Assembler] Created %d planets, %d moons, %d stars", len(ss.Planets), moonCount, cfg.StarField.Count)
	return ss, nil
}
