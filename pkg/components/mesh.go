package components

import (
	"image/color"

	"github.com/decker502/solarsystem/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// MeshComponent 球体的外观
//
// Texture 在异步加载完成前为 nil，此时以 Color 渲染占位圆盘。
type MeshComponent struct {
	// Name 天体名称（调试显示）
	Name string

	// Kind 材质类型：basic 不受光照影响，standard 受光照影响
	Kind config.MaterialKind

	// TextureID 纹理资源ID
	TextureID string

	// Texture 已加载的纹理
	Texture *ebiten.Image

	// Color 占位颜色
	Color color.RGBA
}

// Lit 返回材质是否参与光照计算
func (m *MeshComponent) Lit() bool {
	return m.Kind == config.MaterialStandard
}
