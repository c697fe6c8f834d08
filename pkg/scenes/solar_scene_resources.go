package scenes

import (
	"log"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// loadResources 启动纹理和背景音乐的异步加载
//
// 同一纹理只加载一次，完成后挂到所有使用它的网格上。
// 任何加载失败都只记录日志：天体保持占位颜色，音乐保持静音。
func (s *SolarScene) loadResources() {
	meshesByTexture := map[string][]*components.MeshComponent{}
	var order []string

	for _, id := range ecs.GetEntitiesWith1[*components.MeshComponent](s.entityManager) {
		mesh, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)
		if mesh.TextureID == "" {
			continue
		}
		if _, seen := meshesByTexture[mesh.TextureID]; !seen {
			order = append(order, mesh.TextureID)
		}
		meshesByTexture[mesh.TextureID] = append(meshesByTexture[mesh.TextureID], mesh)
	}

	for _, textureID := range order {
		meshes := meshesByTexture[textureID]
		err := s.resourceManager.LoadImageAsync(textureID, func(id string, img *ebiten.Image) {
			for _, mesh := range meshes {
				mesh.Texture = img
			}
		})
		if err != nil {
			log.Printf("[SolarScene] Warning: texture %s: %v", textureID, err)
		}
	}

	track := s.sceneConfig.Audio.Track
	if track == "" {
		return
	}
	err := s.resourceManager.LoadMusicAsync(track, s.sceneConfig.Audio.Loop, func(id string, player *audio.Player) {
		s.playback.OnMusicLoaded(id, player)
	})
	if err != nil {
		log.Printf("[SolarScene] Warning: music %s: %v", track, err)
	}
}
