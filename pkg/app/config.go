package app

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix 环境变量前缀，如 HBD_VERBOSE=true
const envPrefix = "HBD"

// DefaultAppName gdata 存档目录名
const DefaultAppName = "hbd_journey"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool `envconfig:"VERBOSE"`
	// Level 直接进入指定关卡（调试用），0 表示按存档正常启动
	Level int `envconfig:"LEVEL"`
	// ResetSave 启动时清空存档
	ResetSave bool `envconfig:"RESET_SAVE"`
	// AppName gdata 存档目录名
	AppName string `envconfig:"APP_NAME"`
	// Mute 关闭音效
	Mute bool `envconfig:"MUTE"`
}

// ApplyEnv 用 HBD_* 环境变量覆盖配置
//
// 没有设置的环境变量保留原值（命令行参数），AppName 为空时使用默认值。
//
// 参数：
//   - cfg: 命令行解析出的配置
//
// 返回：
//   - Config: 合并后的配置
//   - error: 环境变量格式错误
func ApplyEnv(cfg Config) (Config, error) {
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to read %s_* environment: %w", envPrefix, err)
	}
	if cfg.AppName == "" {
		cfg.AppName = DefaultAppName
	}
	if cfg.Level < 0 {
		return cfg, fmt.Errorf("invalid level %d", cfg.Level)
	}
	return cfg, nil
}
