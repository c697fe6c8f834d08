package config

// 窗口与视口默认值
// 窗口可自由缩放，实际渲染尺寸由 ViewportSystem 在每次 Layout 时更新
const (
	// GameWindowWidth 默认窗口宽度（逻辑像素）
	GameWindowWidth = 1280

	// GameWindowHeight 默认窗口高度（逻辑像素）
	GameWindowHeight = 720

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Solar System"

	// TicksPerSecond 逻辑帧率
	// 公转角速度以"弧度/帧"为单位，因此帧率固定
	TicksPerSecond = 60

	// MaxPixelRatio 设备像素比上限，防止高分屏上渲染面过大
	MaxPixelRatio = 2.0
)

// 默认资源路径
const (
	// RegistryPath 天体注册表
	RegistryPath = "data/solar_system.yaml"

	// SceneConfigPath 场景配置（相机、光照、星空、音频、按钮）
	SceneConfigPath = "data/scene.yaml"

	// ResourceConfigPath 资源ID到文件路径的映射
	ResourceConfigPath = "assets/config/resources.yaml"
)
