package main

import (
	"fmt"
	"os"

	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/game"
)

// 校验天体注册表、场景配置和资源配置，并检查它们之间的资源ID引用。
// 在仓库根目录运行：go run ./tools
func main() {
	registryPath := config.RegistryPath
	if len(os.Args) > 1 {
		registryPath = os.Args[1]
	}

	data, err := os.ReadFile(registryPath)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}
	reg, err := config.ParseRegistry(data)
	if err != nil {
		fmt.Printf("❌ 注册表无效: %v\n", err)
		os.Exit(1)
	}

	moons := 0
	for _, b := range reg.Bodies() {
		moons += len(b.Moons)
	}
	fmt.Printf("✅ 注册表格式正确: %s\n", registryPath)
	fmt.Printf("✅ 行星数量: %d，卫星数量: %d\n", len(reg.Bodies()), moons)

	data, err = os.ReadFile(config.SceneConfigPath)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}
	sceneCfg, err := config.ParseSceneConfig(data)
	if err != nil {
		fmt.Printf("❌ 场景配置无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 场景配置格式正确\n")

	data, err = os.ReadFile(config.ResourceConfigPath)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}
	_, resources, err := game.ParseResourceConfig(data)
	if err != nil {
		fmt.Printf("❌ 资源配置无效: %v\n", err)
		os.Exit(1)
	}

	missing := 0
	for _, id := range reg.TextureIDs() {
		p, ok := resources[id]
		if !ok {
			fmt.Printf("❌ 纹理 %s 未在资源配置中注册\n", id)
			missing++
			continue
		}
		if _, err := os.Stat(p); err != nil {
			// 文件缺失只是警告：运行时使用占位颜色
			fmt.Printf("⚠️  纹理 %s 文件不存在: %s\n", id, p)
		}
	}
	if _, ok := resources[sceneCfg.Audio.Track]; !ok {
		fmt.Printf("❌ 音乐 %s 未在资源配置中注册\n", sceneCfg.Audio.Track)
		missing++
	}

	if missing == 0 {
		fmt.Printf("✅ 所有资源引用都有效\n")
	} else {
		fmt.Printf("❌ 有 %d 个资源引用无效\n", missing)
		os.Exit(1)
	}
}
