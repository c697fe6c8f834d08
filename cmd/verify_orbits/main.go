// verify_orbits 在无窗口模式下推进轨道若干 tick，并打印每个天体的世界坐标。
//
// 用于核对注册表修改后的轨道布局，不需要显示器或音频设备：
//
//	go run ./cmd/verify_orbits -frames 600 -every 120
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/solarsystem/pkg/app"
	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/embedded"
	"github.com/decker502/solarsystem/pkg/entities"
	"github.com/decker502/solarsystem/pkg/game"
	"github.com/decker502/solarsystem/pkg/systems"
)

var (
	verbose  = flag.Bool("verbose", false, "显示详细调试信息")
	frames   = flag.Int("frames", 600, "推进的 tick 数")
	every    = flag.Int("every", 0, "每隔多少 tick 打印一次（0 表示只打印最终结果）")
	registry = flag.String("registry", config.RegistryPath, "天体注册表路径")
	scene    = flag.String("scene", config.SceneConfigPath, "场景配置路径")
)

func main() {
	flag.Parse()

	// 从工作目录读取配置和数据，方便直接验证未嵌入的修改
	embedded.Init(os.DirFS("."), os.DirFS("."))

	a, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		RegistryPath: *registry,
		ScenePath:    *scene,
		Headless:     true,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}
	defer a.Close()
	a.Resize(config.GameWindowWidth, config.GameWindowHeight, 1)

	s := a.Scene()
	scheduler := &game.FixedStepScheduler{
		Frames: *frames,
		AfterEach: func(tick int) {
			if *every > 0 && tick%*every == 0 && tick != *frames {
				printBodies(s.EntityManager(), s.SolarSystem(), tick)
			}
		},
	}
	if err := scheduler.Run(context.Background(), a); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("运行失败: %v", err)
	}

	printBodies(s.EntityManager(), s.SolarSystem(), s.Ticks())
}

func printBodies(em *ecs.EntityManager, ss *entities.SolarSystem, tick int) {
	fmt.Printf("=== tick %d ===\n", tick)
	for _, planet := range ss.Planets {
		printBody(em, planet, "")
		for _, moon := range entities.Children(em, planet) {
			printBody(em, moon, "  ")
		}
	}
}

func printBody(em *ecs.EntityManager, id ecs.EntityID, indent string) {
	orbit, ok := ecs.GetComponent[*components.OrbitComponent](em, id)
	if !ok {
		return
	}
	p := systems.WorldPosition(em, id)
	fmt.Printf("%s%-10s angle=%8.4f  world=(%9.4f, %9.4f, %9.4f)\n",
		indent, orbit.Body.Name, orbit.Angle, p.X(), p.Y(), p.Z())
}
