// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端、移动端和无窗口工具共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/game"
	"github.com/decker502/solarsystem/pkg/scenes"
	"github.com/decker502/solarsystem/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// sampleRate 音频采样率
const sampleRate = 48000

// appName gdata 存储目录名
const appName = "solarsystem"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和调试信息
	Verbose bool
	// RegistryPath 天体注册表路径，为空时使用 config.RegistryPath
	RegistryPath string
	// ScenePath 场景配置路径，为空时使用 config.SceneConfigPath
	ScenePath string
	// Headless 无窗口运行：不创建音频上下文、不读取键盘、不持久化设置
	Headless bool
	// Pointer 指针输入源，nil 时使用 ebiten 鼠标/触摸（测试和无窗口工具可注入）
	Pointer systems.PointerSource
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	scene                    *scenes.SolarScene
	settingsManager          *game.SettingsManager
	verbose                  bool
	headless                 bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 配置缺失或无效时返回错误，调用方应直接退出。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	registryPath := cfg.RegistryPath
	if registryPath == "" {
		registryPath = config.RegistryPath
	}
	scenePath := cfg.ScenePath
	if scenePath == "" {
		scenePath = config.SceneConfigPath
	}

	registry, err := config.LoadRegistry(registryPath)
	if err != nil {
		return nil, fmt.Errorf("天体注册表加载失败: %w", err)
	}
	log.Printf("[App] Loaded registry %s: %d bodies", registryPath, len(registry.Bodies()))

	sceneConfig, err := config.LoadSceneConfig(scenePath)
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}

	// 初始化音频上下文（无窗口模式下音乐加载会被记录为失败，播放按钮保持禁用）
	var audioContext *audio.Context
	if !cfg.Headless {
		audioContext = audio.NewContext(sampleRate)
	}

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(config.ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	// 用户设置（音量、音乐开关、全屏）
	var gdataManager *gdata.Manager
	if !cfg.Headless {
		gdataManager, err = gdata.Open(gdata.Config{AppName: appName})
		if err != nil {
			// 无法持久化不影响运行
			log.Printf("[App] Warning: settings storage unavailable: %v", err)
			gdataManager = nil
		}
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	scene, err := scenes.NewSolarScene(resourceManager, settingsManager, registry, sceneConfig, scenes.Options{
		Pointer:         cfg.Pointer,
		DisableKeyboard: cfg.Headless,
		Debug:           cfg.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	a := &App{
		sceneManager:    sceneManager,
		scene:           scene,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
		headless:        cfg.Headless,
	}
	log.Printf("[App] Initialized")
	return a, nil
}

// ApplySettings 应用持久化的窗口设置（仅桌面端，在 RunGame 之前调用）
func (a *App) ApplySettings() {
	if a.headless {
		return
	}
	if a.settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
}

// Update 更新逻辑
// 每个 tick 调用一次（config.TicksPerSecond 次/秒）
func (a *App) Update() error {
	if !a.headless {
		a.handleWindowKeys()
	}

	deltaTime := 1.0 / config.TicksPerSecond
	a.sceneManager.Update(deltaTime)
	return nil
}

// handleWindowKeys F11 切换全屏
func (a *App) handleWindowKeys() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}

	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		a.settingsManager.SetFullscreen(false)
	} else {
		ebiten.SetFullscreen(true)
		a.settingsManager.SetFullscreen(true)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 渲染表面与窗口按设备像素比一一对应，这里只负责填充背景并拷贝
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回渲染表面尺寸
//
// 窗口可自由缩放：每次 Layout 都把窗口逻辑尺寸和设备像素比交给场景，
// 场景更新相机宽高比并返回表面像素尺寸。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if !a.headless {
		if m := ebiten.Monitor(); m != nil {
			scale = m.DeviceScaleFactor()
		}
	}
	return a.Resize(outsideWidth, outsideHeight, scale)
}

// Resize 按指定缩放比例应用窗口尺寸（Layout 和无窗口工具使用）
func (a *App) Resize(width, height int, scale float64) (int, int) {
	return a.sceneManager.Resize(width, height, scale)
}

// Close 关闭场景并保存设置（窗口关闭时调用）
func (a *App) Close() {
	a.sceneManager.Close()
}

// Scene 返回当前场景
func (a *App) Scene() *scenes.SolarScene {
	return a.scene
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
