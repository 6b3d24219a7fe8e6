//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 在打开 gdata 之前确保 Android 存档目录存在且可写
//
// gdata 在 Android 上写入 /data/data/{package}/，但不会创建子目录。
func EnsureStorageDir() error {
	dir := StoragePath()
	if dir == "" {
		return fmt.Errorf("failed to detect Android package name")
	}

	saves := filepath.Join(dir, "saves")
	if err := os.MkdirAll(saves, 0o755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", saves, err)
	}

	probe := filepath.Join(saves, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", saves, err)
	}
	return os.Remove(probe)
}

// StoragePath 应用私有目录 /data/data/{package}
func StoragePath() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	pkg := strings.TrimSpace(strings.Trim(string(data), "\x00"))
	if i := strings.IndexByte(pkg, 0); i >= 0 {
		pkg = pkg[:i]
	}
	if pkg == "" {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}
