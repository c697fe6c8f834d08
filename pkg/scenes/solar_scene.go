package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/entities"
	"github.com/decker502/solarsystem/pkg/game"
	"github.com/decker502/solarsystem/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SolarScene 太阳系场景
//
// 场景拥有自己的实体管理器、相机和全部系统，不依赖任何全局状态：
// 同一进程中可以同时存在多个互不影响的场景（测试中即如此）。
//
// 每个 tick 的执行顺序：
//  1. 应用已完成的异步资源加载（纹理、音乐）
//  2. 键盘快捷键（空格切换播放/暂停）
//  3. 按钮交互（可能触发播放/暂停）
//  4. 轨道相机控制（在按钮上按下时不拖动相机）
//  5. 轨道动画
type SolarScene struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager
	playback        *game.PlaybackController

	registry    *config.Registry
	sceneConfig *config.SceneConfig
	solar       *entities.SolarSystem
	playButton  ecs.EntityID
	pauseButton ecs.EntityID

	// ECS 系统
	orbitSystem        *systems.OrbitSystem
	controlsSystem     *systems.OrbitControlsSystem
	viewportSystem     *systems.ViewportSystem
	buttonSystem       *systems.ButtonSystem
	renderSystem       *systems.RenderSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	pointer   systems.PointerSource
	keyboard  bool // 是否读取 ebiten 键盘输入
	showDebug bool
}

// Options 场景可选参数
type Options struct {
	// Pointer 指针输入源，nil 时使用 ebiten 鼠标/触摸
	Pointer systems.PointerSource
	// DisableKeyboard 不读取键盘（无窗口运行时）
	DisableKeyboard bool
	// Debug 显示调试信息（TPS/FPS、播放状态）
	Debug bool
}

// NewSolarScene 创建太阳系场景
//
// 参数:
//   - rm: 资源管理器（已加载 resources.yaml）
//   - sm: 设置管理器（可为 nil，使用默认设置）
//   - reg: 已校验的天体注册表
//   - cfg: 场景配置
//   - opts: 可选参数
//
// 返回:
//   - *SolarScene: 场景实例
//   - error: 场景组装或按钮绑定失败时返回错误
//
// 纹理和音乐在后台加载；加载完成前天体以材质颜色绘制，播放按钮处于禁用状态。
func NewSolarScene(rm *game.ResourceManager, sm *game.SettingsManager, reg *config.Registry, cfg *config.SceneConfig, opts Options) (*SolarScene, error) {
	if rm == nil {
		return nil, fmt.Errorf("solar scene: resource manager is required")
	}

	em := ecs.NewEntityManager()
	solar, err := entities.AssembleSolarSystem(em, reg, cfg)
	if err != nil {
		return nil, fmt.Errorf("solar scene: %w", err)
	}

	s := &SolarScene{
		entityManager:   em,
		resourceManager: rm,
		settingsManager: sm,
		audioManager:    game.NewAudioManager(sm, cfg.Audio.Volume),
		registry:        reg,
		sceneConfig:     cfg,
		solar:           solar,
		pointer:         opts.Pointer,
		keyboard:        !opts.DisableKeyboard,
		showDebug:       opts.Debug,
	}
	if s.pointer == nil {
		s.pointer = systems.NewEbitenPointer()
	}

	s.orbitSystem = systems.NewOrbitSystem(em, solar.Root)
	s.viewportSystem = systems.NewViewportSystem(em, solar.Camera)
	s.controlsSystem = systems.NewOrbitControlsSystem(em, solar.Camera, s.viewportSystem)
	s.buttonSystem = systems.NewButtonSystem(em)
	s.renderSystem = systems.NewRenderSystem(em, solar.Camera)
	s.buttonRenderSystem = systems.NewButtonRenderSystem(em)
	s.viewportSystem.OnResize(s.buttonSystem.Layout)

	if err := s.initPlaybackUI(); err != nil {
		return nil, fmt.Errorf("solar scene: %w", err)
	}

	s.loadResources()

	log.Printf("[SolarScene] Scene ready: %d entities", em.Count())
	return s, nil
}

// initPlaybackUI 创建播放/暂停按钮并绑定播放控制器
func (s *SolarScene) initPlaybackUI() error {
	ui := s.sceneConfig.UI

	font, err := s.resourceManager.LoadFont(ui.FontSize)
	if err != nil {
		// 没有字体时按钮仍可用，只是不显示文字
		log.Printf("[SolarScene] Warning: %v", err)
		font = nil
	}

	s.playButton = entities.NewPlaybackButton(s.entityManager, ui.PlayLabel, font, ui, s.onPlayClicked)
	s.pauseButton = entities.NewPlaybackButton(s.entityManager, ui.PauseLabel, font, ui, s.onPauseClicked)

	playback, err := game.NewPlaybackController(
		s.audioManager,
		systems.NewButtonAffordance(s.entityManager, s.playButton),
		systems.NewButtonAffordance(s.entityManager, s.pauseButton),
	)
	if err != nil {
		return err
	}
	s.playback = playback
	return nil
}

func (s *SolarScene) onPlayClicked() {
	s.playback.Play()
}

func (s *SolarScene) onPauseClicked() {
	s.playback.Pause()
}

// Update 更新场景逻辑
func (s *SolarScene) Update(deltaTime float64) {
	s.resourceManager.Poll()

	if s.keyboard {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			s.playback.Toggle()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
			s.showDebug = !s.showDebug
		}
	}

	in := s.pointer.Poll()
	blocked := s.buttonSystem.Update(in)
	s.controlsSystem.Update(in, blocked)

	s.orbitSystem.Update(deltaTime)
}

// Draw 绘制场景：天体 → 按钮 → 调试信息
func (s *SolarScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	s.buttonRenderSystem.Draw(screen)

	if s.showDebug {
		s.drawDebugInfo(screen)
	}
}

// Resize 应用新的窗口尺寸，返回渲染表面尺寸
func (s *SolarScene) Resize(width, height int, scale float64) (int, int) {
	s.viewportSystem.Resize(width, height, scale)
	if w, h := s.viewportSystem.SurfaceSize(); w > 0 && h > 0 {
		return w, h
	}
	// 尚未有有效尺寸（例如最小化启动）
	return max(width, 1), max(height, 1)
}

// Close 暂停音乐并保存设置
func (s *SolarScene) Close() error {
	s.playback.Pause()
	if s.settingsManager == nil {
		return nil
	}
	return s.settingsManager.Save()
}

// Playback 返回播放控制器
func (s *SolarScene) Playback() *game.PlaybackController {
	return s.playback
}

// EntityManager 返回场景的实体管理器
func (s *SolarScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// SolarSystem 返回场景句柄（行星、相机等实体ID）
func (s *SolarScene) SolarSystem() *entities.SolarSystem {
	return s.solar
}

// Ticks 返回已推进的轨道 tick 数
func (s *SolarScene) Ticks() int {
	return s.orbitSystem.Ticks()
}

// Buttons 返回播放和暂停按钮实体
func (s *SolarScene) Buttons() (play, pause ecs.EntityID) {
	return s.playButton, s.pauseButton
}
