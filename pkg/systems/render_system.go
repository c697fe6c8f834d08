package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// minStarPixels 星星的最小绘制尺寸（像素）
const minStarPixels = 1.0

var spaceColor = color.RGBA{0, 0, 0, 255}

// RenderSystem 管理场景实体的渲染
//
// 渲染顺序（从底到顶）：背景 → 星空 → 天体（远 → 近，画家算法）。
// UI 按钮由 ButtonRenderSystem 在最后绘制。
//
// 天体绘制为圆盘：
//   - 纹理已加载：用 DrawTriangles 绘制带纹理的圆盘
//   - 纹理未加载或加载失败：用材质颜色绘制纯色圆盘（占位）
//   - standard 材质按环境光 + 点光源计算亮度，basic 材质不受光照影响
type RenderSystem struct {
	entityManager *ecs.EntityManager
	camera        ecs.EntityID

	vertices  []ebiten.Vertex // 顶点数组（复用，避免每帧分配）
	indices   []uint16        // 索引数组（复用，避免每帧分配）
	drawables []drawable
}

// drawable 一帧中待绘制的天体
type drawable struct {
	entity ecs.EntityID
	mesh   *components.MeshComponent
	screen utils.ScreenPoint
	radius float64
	light  float64
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager, camera ecs.EntityID) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		camera:        camera,
		vertices:      make([]ebiten.Vertex, 0, utils.DiscSegments+1),
		indices:       make([]uint16, 0, utils.DiscSegments*3),
	}
}

// Draw 绘制整个场景
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(spaceColor)

	cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.camera)
	if !ok {
		return
	}

	bounds := screen.Bounds()
	width := float64(bounds.Dx())
	height := float64(bounds.Dy())
	fovY := mgl64.DegToRad(cam.FOV)

	s.drawStarFields(screen, cam, width, height, fovY)

	for _, d := range s.collectDrawables(cam, width, height) {
		s.drawBody(screen, d)
	}
}

// drawStarFields 绘制星空（每颗星一个小方块）
func (s *RenderSystem) drawStarFields(screen *ebiten.Image, cam *components.CameraComponent, width, height, fovY float64) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.StarFieldComponent](s.entityManager) {
		stars, _ := ecs.GetComponent[*components.StarFieldComponent](s.entityManager, entityID)
		clr := stars.Color
		clr.A = uint8(math.Round(255 * stars.Opacity))
		// vector 需要预乘 alpha
		clr.R = uint8(uint32(clr.R) * uint32(clr.A) / 255)
		clr.G = uint8(uint32(clr.G) * uint32(clr.A) / 255)
		clr.B = uint8(uint32(clr.B) * uint32(clr.A) / 255)

		origin := WorldPosition(s.entityManager, entityID)
		for _, p := range stars.Points {
			sp, visible := utils.WorldToScreen(origin.Add(p), cam.View, cam.Projection, width, height)
			if !visible {
				continue
			}
			size := math.Max(minStarPixels, 2*utils.ProjectedRadius(stars.Size, sp.Depth, fovY, height))
			vector.FillRect(screen, float32(sp.X-size/2), float32(sp.Y-size/2), float32(size), float32(size), clr, false)
		}
	}
}

// collectDrawables 投影所有可见天体并按深度从远到近排序
func (s *RenderSystem) collectDrawables(cam *components.CameraComponent, width, height float64) []drawable {
	s.drawables = s.drawables[:0]
	fovY := mgl64.DegToRad(cam.FOV)
	ambient, point, lightPos := s.lights()

	for _, entityID := range ecs.GetEntitiesWith2[*components.MeshComponent, *components.TransformComponent](s.entityManager) {
		mesh, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, entityID)

		world := WorldPosition(s.entityManager, entityID)
		sp, visible := utils.WorldToScreen(world, cam.View, cam.Projection, width, height)
		if !visible {
			continue
		}

		light := 1.0
		if mesh.Lit() {
			light = ambient
			if point != nil {
				light = utils.Illuminate(ambient, point.Intensity, world.Sub(lightPos).Len(), point.Decay)
			}
		}

		s.drawables = append(s.drawables, drawable{
			entity: entityID,
			mesh:   mesh,
			screen: sp,
			radius: utils.ProjectedRadius(WorldScale(s.entityManager, entityID), sp.Depth, fovY, height),
			light:  light,
		})
	}

	sort.SliceStable(s.drawables, func(i, j int) bool {
		return s.drawables[i].screen.Depth > s.drawables[j].screen.Depth
	})
	return s.drawables
}

// lights 返回环境光强度和第一个点光源
func (s *RenderSystem) lights() (float64, *components.PointLightComponent, mgl64.Vec3) {
	ambient := 0.0
	for _, id := range ecs.GetEntitiesWith1[*components.AmbientLightComponent](s.entityManager) {
		a, _ := ecs.GetComponent[*components.AmbientLightComponent](s.entityManager, id)
		ambient += a.Intensity
	}

	for _, id := range ecs.GetEntitiesWith1[*components.PointLightComponent](s.entityManager) {
		p, _ := ecs.GetComponent[*components.PointLightComponent](s.entityManager, id)
		return ambient, p, WorldPosition(s.entityManager, id)
	}
	return ambient, nil, mgl64.Vec3{}
}

func (s *RenderSystem) drawBody(screen *ebiten.Image, d drawable) {
	if d.radius < 0.5 {
		return
	}

	if d.mesh.Texture == nil {
		clr := utils.ShadeColor(d.mesh.Color, d.light)
		vector.FillCircle(screen, float32(d.screen.X), float32(d.screen.Y), float32(d.radius), clr, true)
		return
	}

	bounds := d.mesh.Texture.Bounds()
	l := float32(d.light)
	s.vertices, s.indices = utils.AppendDisc(s.vertices[:0], s.indices[:0],
		float32(d.screen.X), float32(d.screen.Y), float32(d.radius), utils.DiscSegments,
		float32(bounds.Dx()), float32(bounds.Dy()), l, l, l, 1)

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(s.vertices, s.indices, d.mesh.Texture, op)
}
