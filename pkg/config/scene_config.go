package config

import (
	"fmt"

	"github.com/decker502/solarsystem/pkg/embedded"
)

// SceneConfig 场景配置
//
// 配置文件位置: data/scene.yaml
//
// 文件中未出现的字段保留 DefaultSceneConfig 中的默认值。
type SceneConfig struct {
	Camera    CameraConfig    `yaml:"camera"`
	Controls  ControlsConfig  `yaml:"controls"`
	Lights    LightsConfig    `yaml:"lights"`
	StarField StarFieldConfig `yaml:"starField"`
	Audio     AudioConfig     `yaml:"audio"`
	UI        UIConfig        `yaml:"ui"`
}

// CameraConfig 透视相机配置
type CameraConfig struct {
	// FOV 垂直视角（度）
	FOV      float64    `yaml:"fov"`
	Near     float64    `yaml:"near"`
	Far      float64    `yaml:"far"`
	Position [3]float64 `yaml:"position"`
	Target   [3]float64 `yaml:"target"`
}

// ControlsConfig 轨道相机控制配置
type ControlsConfig struct {
	EnableDamping bool `yaml:"enableDamping"`
	// DampingFactor 每帧速度衰减比例（0, 1]
	DampingFactor float64 `yaml:"dampingFactor"`
	MinDistance   float64 `yaml:"minDistance"`
	MaxDistance   float64 `yaml:"maxDistance"`
	// RotateSpeed 拖动灵敏度倍率
	RotateSpeed float64 `yaml:"rotateSpeed"`
	// ZoomSpeed 滚轮灵敏度倍率
	ZoomSpeed float64 `yaml:"zoomSpeed"`
}

// LightsConfig 光照配置
type LightsConfig struct {
	Ambient AmbientLightConfig `yaml:"ambient"`
	Point   PointLightConfig   `yaml:"point"`
}

// AmbientLightConfig 环境光
type AmbientLightConfig struct {
	Color     HexColor `yaml:"color"`
	Intensity float64  `yaml:"intensity"`
}

// PointLightConfig 点光源
type PointLightConfig struct {
	Color     HexColor   `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
	Position  [3]float64 `yaml:"position"`
	// Decay 距离衰减指数（2 = 平方反比）
	Decay float64 `yaml:"decay"`
}

// StarFieldConfig 星空配置
type StarFieldConfig struct {
	Count int `yaml:"count"`
	// Spread 坐标范围边长，星星均匀分布在 [-Spread/2, Spread/2)
	Spread  float64  `yaml:"spread"`
	OffsetZ float64  `yaml:"offsetZ"`
	Size    float64  `yaml:"size"`
	Opacity float64  `yaml:"opacity"`
	Color   HexColor `yaml:"color"`
	Seed    int64    `yaml:"seed"`
}

// AudioConfig 背景音乐配置
type AudioConfig struct {
	// Track 音乐资源ID（resources.yaml）
	Track string `yaml:"track"`
	// Volume 默认音量（用户设置优先）
	Volume float64 `yaml:"volume"`
	Loop   bool    `yaml:"loop"`
}

// UIConfig 播放/暂停按钮配置
type UIConfig struct {
	PlayLabel    string  `yaml:"playLabel"`
	PauseLabel   string  `yaml:"pauseLabel"`
	ButtonWidth  float64 `yaml:"buttonWidth"`
	ButtonHeight float64 `yaml:"buttonHeight"`
	// Margin 按钮距窗口右下角的距离
	Margin   float64 `yaml:"margin"`
	FontSize float64 `yaml:"fontSize"`
}

// DefaultSceneConfig 返回默认场景配置
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Camera: CameraConfig{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Position: [3]float64{20, 10, 40},
			Target:   [3]float64{0, 0, 0},
		},
		Controls: ControlsConfig{
			EnableDamping: true,
			DampingFactor: 0.05,
			MinDistance:   20,
			MaxDistance:   50,
			RotateSpeed:   1.0,
			ZoomSpeed:     1.0,
		},
		Lights: LightsConfig{
			Ambient: AmbientLightConfig{Color: "#ffffff", Intensity: 0.1},
			Point:   PointLightConfig{Color: "#ffffff", Intensity: 2000, Decay: 2},
		},
		StarField: StarFieldConfig{
			Count:   5000,
			Spread:  100,
			OffsetZ: -10,
			Size:    0.03,
			Opacity: 0.8,
			Color:   "#ffffff",
			Seed:    1,
		},
		Audio: AudioConfig{
			Track:  "MUSIC_BACKGROUND",
			Volume: 0.5,
			Loop:   true,
		},
		UI: UIConfig{
			PlayLabel:    "Play",
			PauseLabel:   "Pause",
			ButtonWidth:  96,
			ButtonHeight: 36,
			Margin:       20,
			FontSize:     18,
		},
	}
}

// LoadSceneConfig 加载场景配置
//
// 参数:
//   - path: 配置文件路径（如 "data/scene.yaml"）
//
// 返回:
//   - *SceneConfig: 默认值叠加文件内容后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config %s: %w", path, err)
	}

	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("scene config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseSceneConfig 在默认配置之上解析 YAML
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	cfg := DefaultSceneConfig()
	if err := decodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *SceneConfig) Validate() error {
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera.fov must be in (0, 180), got %.1f", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera: need 0 < near < far, got near=%.3f far=%.3f", c.Camera.Near, c.Camera.Far)
	}

	if c.Controls.MinDistance <= 0 || c.Controls.MinDistance > c.Controls.MaxDistance {
		return fmt.Errorf("controls: need 0 < minDistance <= maxDistance, got min=%.1f max=%.1f",
			c.Controls.MinDistance, c.Controls.MaxDistance)
	}
	if c.Controls.DampingFactor <= 0 || c.Controls.DampingFactor > 1 {
		return fmt.Errorf("controls.dampingFactor must be in (0, 1], got %.3f", c.Controls.DampingFactor)
	}

	if c.Lights.Ambient.Intensity < 0 || c.Lights.Point.Intensity < 0 {
		return fmt.Errorf("lights: intensity must be >= 0")
	}
	for name, clr := range map[string]HexColor{
		"lights.ambient.color": c.Lights.Ambient.Color,
		"lights.point.color":   c.Lights.Point.Color,
		"starField.color":      c.StarField.Color,
	} {
		if _, err := ParseHexColor(string(clr)); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	if c.StarField.Count < 0 {
		return fmt.Errorf("starField.count must be >= 0, got %d", c.StarField.Count)
	}
	if c.StarField.Opacity < 0 || c.StarField.Opacity > 1 {
		return fmt.Errorf("starField.opacity must be in [0, 1], got %.2f", c.StarField.Opacity)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0, 1], got %.2f", c.Audio.Volume)
	}

	if c.UI.ButtonWidth <= 0 || c.UI.ButtonHeight <= 0 {
		return fmt.Errorf("ui: button size must be > 0")
	}
	return nil
}
