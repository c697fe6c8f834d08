package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/decker502/solarsystem/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// MaterialKind 材质类型
type MaterialKind string

const (
	// MaterialBasic 不受光照影响（太阳、木星、土星）
	MaterialBasic MaterialKind = "basic"
	// MaterialStandard 受环境光和点光源影响
	MaterialStandard MaterialKind = "standard"
)

// Material 材质定义
//
// Texture 是 resources.yaml 中的资源ID；纹理加载完成前（或加载失败时）
// 使用 Color 作为占位颜色渲染。
type Material struct {
	ID      string       `yaml:"id"`
	Kind    MaterialKind `yaml:"kind"`
	Texture string       `yaml:"texture"`
	Color   HexColor     `yaml:"color"`
}

// Body 天体描述（行星或卫星）
//
// 卫星的 Distance 是相对于所属行星局部坐标系的距离，而不是相对于场景原点。
// 卫星只允许嵌套一层（卫星不能再有卫星）。
type Body struct {
	// Name 显示名称（仅用于日志和调试）
	Name string `yaml:"name"`

	// Radius 半径，决定渲染缩放
	Radius float64 `yaml:"radius"`

	// Distance 轨道半径
	Distance float64 `yaml:"distance"`

	// Speed 角速度（弧度/帧）
	Speed float64 `yaml:"speed"`

	// Material 材质ID，卫星可省略（使用注册表的 defaultMoonMaterial）
	Material string `yaml:"material"`

	// Moons 卫星列表（有序）
	Moons []Body `yaml:"moons"`
}

// SunConfig 中心恒星配置
type SunConfig struct {
	Name     string  `yaml:"name"`
	Radius   float64 `yaml:"radius"`
	Material string  `yaml:"material"`
}

// Registry 天体注册表
//
// 配置文件位置: data/solar_system.yaml
//
// 注册表加载后不可变：场景组装只读取它，动画系统通过组件上的 *Body 指针读取
// 速度和距离，不修改它。
type Registry struct {
	Sun                 SunConfig  `yaml:"sun"`
	DefaultMoonMaterial string     `yaml:"defaultMoonMaterial"`
	Materials           []Material `yaml:"materials"`
	Planets             []Body     `yaml:"bodies"`

	materialIndex map[string]*Material
}

// LoadRegistry 加载天体注册表
//
// 优先读取嵌入资源，找不到时回退到磁盘。
//
// 参数:
//   - path: 配置文件路径（如 "data/solar_system.yaml"）
//
// 返回:
//   - *Registry: 校验通过的注册表
//   - error: 读取、解析或校验失败时返回错误
func LoadRegistry(path string) (*Registry, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry %s: %w", path, err)
	}

	registry, err := ParseRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("registry %s: %w", path, err)
	}
	return registry, nil
}

// ParseRegistry 解析并校验注册表 YAML
//
// 使用严格模式解码：未知字段（例如某个卫星上多出来的 color）直接报错，
// 保证行星和卫星共用同一套字段定义。
func ParseRegistry(data []byte) (*Registry, error) {
	var registry Registry
	if err := decodeStrict(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}

	if err := registry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registry: %w", err)
	}
	return &registry, nil
}

// decodeStrict 严格解码单个 YAML 文档
func decodeStrict(data []byte, out interface{}) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty document")
		}
		return err
	}
	return nil
}

// Validate 验证注册表有效性
//
// 检查项：
//   - 至少一个行星
//   - 名称非空且全局唯一（包括太阳和卫星）
//   - 半径 > 0，距离 >= 0，速度为有限值
//   - 卫星不能再有卫星
//   - 材质类型合法，材质ID唯一，所有材质引用都能解析
func (r *Registry) Validate() error {
	r.materialIndex = make(map[string]*Material, len(r.Materials))
	for i := range r.Materials {
		m := &r.Materials[i]
		if m.ID == "" {
			return fmt.Errorf("materials[%d]: id is required", i)
		}
		if _, dup := r.materialIndex[m.ID]; dup {
			return fmt.Errorf("materials[%d]: duplicate id '%s'", i, m.ID)
		}
		switch m.Kind {
		case MaterialBasic, MaterialStandard:
		default:
			return fmt.Errorf("material '%s': kind must be '%s' or '%s', got '%s'",
				m.ID, MaterialBasic, MaterialStandard, m.Kind)
		}
		if m.Color != "" {
			if _, err := ParseHexColor(string(m.Color)); err != nil {
				return fmt.Errorf("material '%s': %w", m.ID, err)
			}
		}
		r.materialIndex[m.ID] = m
	}

	if !validRadius(r.Sun.Radius) {
		return fmt.Errorf("sun: radius must be > 0, got %v", r.Sun.Radius)
	}
	if err := r.requireMaterial("sun", r.Sun.Material); err != nil {
		return err
	}

	if r.DefaultMoonMaterial != "" {
		if err := r.requireMaterial("defaultMoonMaterial", r.DefaultMoonMaterial); err != nil {
			return err
		}
	}

	if len(r.Planets) == 0 {
		return errors.New("at least one body is required")
	}

	names := map[string]bool{}
	if r.Sun.Name != "" {
		names[r.Sun.Name] = true
	}

	for i := range r.Planets {
		planet := &r.Planets[i]
		where := fmt.Sprintf("bodies[%d]", i)
		if err := r.validateBody(where, planet, names); err != nil {
			return err
		}
		if err := r.requireMaterial(where+" ("+planet.Name+")", planet.Material); err != nil {
			return err
		}

		for j := range planet.Moons {
			moon := &planet.Moons[j]
			moonWhere := fmt.Sprintf("%s.moons[%d]", where, j)
			if err := r.validateBody(moonWhere, moon, names); err != nil {
				return err
			}
			if len(moon.Moons) > 0 {
				return fmt.Errorf("%s (%s): moons cannot have moons", moonWhere, moon.Name)
			}
			material := moon.Material
			if material == "" {
				material = r.DefaultMoonMaterial
			}
			if err := r.requireMaterial(moonWhere+" ("+moon.Name+")", material); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateBody 校验单个天体的数值字段和名称
func (r *Registry) validateBody(where string, b *Body, names map[string]bool) error {
	if b.Name == "" {
		return fmt.Errorf("%s: name is required", where)
	}
	if names[b.Name] {
		return fmt.Errorf("%s: duplicate name '%s'", where, b.Name)
	}
	names[b.Name] = true

	if !validRadius(b.Radius) {
		return fmt.Errorf("%s (%s): radius must be > 0, got %v", where, b.Name, b.Radius)
	}
	if b.Distance < 0 || math.IsInf(b.Distance, 0) || math.IsNaN(b.Distance) {
		return fmt.Errorf("%s (%s): distance must be >= 0, got %v", where, b.Name, b.Distance)
	}
	if math.IsInf(b.Speed, 0) || math.IsNaN(b.Speed) {
		return fmt.Errorf("%s (%s): speed must be finite, got %v", where, b.Name, b.Speed)
	}
	return nil
}

// validRadius 半径必须是有限正数
func validRadius(radius float64) bool {
	return radius > 0 && !math.IsInf(radius, 0)
}

func (r *Registry) requireMaterial(where, id string) error {
	if id == "" {
		return fmt.Errorf("%s: material is required", where)
	}
	if _, ok := r.materialIndex[id]; !ok {
		return fmt.Errorf("%s: unknown material '%s'", where, id)
	}
	return nil
}

// Bodies 按配置顺序返回顶层天体（行星）的副本
//
// 卫星列表同样复制，修改返回值不影响注册表。
// 场景组装需要指向注册表内部的 *Body，使用 Body(i)。
func (r *Registry) Bodies() []Body {
	out := make([]Body, len(r.Planets))
	for i, b := range r.Planets {
		out[i] = b
		out[i].Moons = append([]Body(nil), b.Moons...)
	}
	return out
}

// Body 返回第 i 个顶层天体在注册表中的指针（只读）
func (r *Registry) Body(i int) *Body {
	return &r.Planets[i]
}

// NumBodies 返回顶层天体数量
func (r *Registry) NumBodies() int {
	return len(r.Planets)
}

// Material 按ID查找材质
func (r *Registry) Material(id string) (*Material, bool) {
	m, ok := r.materialIndex[id]
	return m, ok
}

// MoonMaterial 返回卫星实际使用的材质ID
func (r *Registry) MoonMaterial(moon *Body) string {
	if moon.Material != "" {
		return moon.Material
	}
	return r.DefaultMoonMaterial
}

// TextureIDs 返回所有材质引用的纹理资源ID（去重，按材质顺序）
func (r *Registry) TextureIDs() []string {
	seen := map[string]bool{}
	ids := make([]string, 0, len(r.Materials))
	for _, m := range r.Materials {
		if m.Texture == "" || seen[m.Texture] {
			continue
		}
		seen[m.Texture] = true
		ids = append(ids, m.Texture)
	}
	return ids
}
