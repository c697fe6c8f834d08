package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/decker502/solarsystem/pkg/app"
	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/embedded"
	"github.com/decker502/solarsystem/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出和调试信息")
	registryPath := flag.String("registry", config.RegistryPath, "天体注册表路径")
	scenePath := flag.String("scene", config.SceneConfigPath, "场景配置路径")
	width := flag.Int("width", config.GameWindowWidth, "初始窗口宽度")
	height := flag.Int("height", config.GameWindowHeight, "初始窗口高度")
	flag.Parse()

	// 初始化嵌入资源（配置文件嵌入，纹理和音乐从磁盘读取）
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		RegistryPath: *registryPath,
		ScenePath:    *scenePath,
	})
	if err != nil {
		// 非 verbose 模式下 NewApp 已关闭日志输出
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)
	gameApp.ApplySettings()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := &game.EbitenScheduler{}
	err = scheduler.Run(ctx, gameApp)

	// 关闭窗口或收到信号后保存设置
	gameApp.Close()

	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
