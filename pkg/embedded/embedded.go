// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 纹理和音乐文件体积较大，不参与嵌入：ReadFile 在嵌入资源中找不到文件时
// 会回退到磁盘读取，路径相对于当前工作目录。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// ErrNotInitialized 在调用 Init 之前访问资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 初始化资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用。
// 参数通常是 embed.FS，测试中可以传入 fstest.MapFS。
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// Reset 清除初始化状态（仅测试使用）
func Reset() {
	assetsFS = nil
	dataFS = nil
	initialized = false
}

// normalize 标准化路径分隔符并移除 "./" 前缀（embed.FS 使用正斜杠）
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// pick 根据路径前缀选择文件系统
// 路径必须以 "assets/" 或 "data/" 开头
func pick(path string) (fs.FS, error) {
	switch {
	case strings.HasPrefix(path, "assets/"):
		return assetsFS, nil
	case strings.HasPrefix(path, "data/"):
		return dataFS, nil
	}
	return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 根据路径前缀选择正确的文件系统并打开文件
func Open(path string) (fs.File, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	path = normalize(path)
	fsys, err := pick(path)
	if err != nil {
		return nil, err
	}
	if fsys == nil {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return fsys.Open(path)
}

// ReadFile 读取资源文件内容
//
// 查找顺序：
//  1. 嵌入的文件系统（按前缀选择 assets/ 或 data/）
//  2. 磁盘上的同名文件
//
// 两者都找不到时返回嵌入文件系统的错误。
// 不以 assets/ 或 data/ 开头的路径（例如命令行指定的外部配置）只从磁盘读取。
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	path = normalize(path)
	fsys, err := pick(path)
	if err != nil {
		data, diskErr := os.ReadFile(filepath.FromSlash(path))
		if diskErr == nil {
			return data, nil
		}
		return nil, err
	}

	var embedErr error = fs.ErrNotExist
	if fsys != nil {
		data, err := fs.ReadFile(fsys, path)
		if err == nil {
			return data, nil
		}
		embedErr = err
	}

	// 回退到磁盘（大体积资源不嵌入）
	data, err := os.ReadFile(filepath.FromSlash(path))
	if err == nil {
		return data, nil
	}
	return nil, fmt.Errorf("read %s: %w", path, embedErr)
}

// Exists 检查文件是否存在（嵌入资源或磁盘）
func Exists(path string) bool {
	file, err := Open(path)
	if err == nil {
		file.Close()
		return true
	}
	if !initialized {
		return false
	}
	_, err = os.Stat(filepath.FromSlash(normalize(path)))
	return err == nil
}
