// Package embedded 提供嵌入资源的统一访问接口
//
// //go:embed 只能嵌入当前包目录及其子目录的文件，
// 所以资源变量声明在项目根目录（embed.go），由 main() 通过 Init() 传入。
//
// 所有路径都以 "assets/" 开头，例如 "assets/config/levels.yaml"。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// 资源路径前缀
const assetsPrefix = "assets/"

var (
	assetsFS    fs.FS
	initialized bool
)

var errNotInitialized = fmt.Errorf("embedded package not initialized, call Init() first")

// Init 设置资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets fs.FS) {
	assetsFS = assets
	initialized = assets != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// Root 返回资源根文件系统（包含 assets/ 目录）
func Root() (fs.FS, error) {
	if !initialized {
		return nil, errNotInitialized
	}
	return assetsFS, nil
}

// normalize 统一路径格式并检查前缀
func normalize(path string) (string, error) {
	if !initialized {
		return "", errNotInitialized
	}

	// embed.FS 使用正斜杠
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	if path == "assets" {
		return path, nil
	}
	if !strings.HasPrefix(path, assetsPrefix) {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/')", path)
	}
	return strings.TrimSuffix(path, "/"), nil
}

// Open 打开资源文件
func Open(path string) (fs.File, error) {
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return assetsFS.Open(path)
}

// ReadFile 读取资源文件内容
func ReadFile(path string) ([]byte, error) {
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(assetsFS, path)
}

// Exists 检查资源文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 匹配资源文件
func Glob(pattern string) ([]string, error) {
	pattern, err := normalize(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(assetsFS, pattern)
}

// ReadDir 读取资源目录
func ReadDir(path string) ([]fs.DirEntry, error) {
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadDir(assetsFS, path)
}

// Sub 返回指定目录的子文件系统
//
// 预制体注册表使用 Sub("assets") 得到以资源根为起点的文件系统，
// 再按 spawner.yaml 中的 prefabsFolderPath 查找预制体。
func Sub(dir string) (fs.FS, error) {
	dir, err := normalize(dir)
	if err != nil {
		return nil, err
	}
	return fs.Sub(assetsFS, dir)
}

// Stat 获取资源文件信息
func Stat(path string) (fs.FileInfo, error) {
	file, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return file.Stat()
}
