package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 聊天脚本步骤类型
const (
	ChatStepSystem  = "system"  // 系统消息，开场立即显示
	ChatStepUser    = "user"    // 等待玩家选择正确选项
	ChatStepPartner = "partner" // 对方回复，延迟后自动显示
)

// ChatStep 聊天脚本中的一步
type ChatStep struct {
	Kind   string  `yaml:"kind"`   // system / user / partner
	Text   string  `yaml:"text"`   // 显示文本（system / partner）
	Answer string  `yaml:"answer"` // 期望的选项文本（user）
	Time   string  `yaml:"time"`   // 气泡上的时间戳
	Delay  float64 `yaml:"delay"`  // 延迟（秒），仅 partner 使用
}

// ChatOption 玩家可点击的候选回复
type ChatOption struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}

// ChatScript 第 1 关聊天脚本
type ChatScript struct {
	CompleteDelay float64      `yaml:"completeDelay"` // 脚本结束到显示完成卡片的延迟（秒）
	ExitDelay     float64      `yaml:"exitDelay"`     // 点击继续到返回地图的延迟（秒）
	Steps         []ChatStep   `yaml:"steps"`
	Options       []ChatOption `yaml:"options"`
}

// LoadChatScript 从 YAML 文件加载聊天脚本
func LoadChatScript(path string) (*ChatScript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chat script %s: %w", path, err)
	}
	return ParseChatScript(data)
}

// ParseChatScript 解析聊天脚本 YAML 数据
func ParseChatScript(data []byte) (*ChatScript, error) {
	var script ChatScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse chat script YAML: %w", err)
	}

	applyChatDefaults(&script)

	if err := validateChatScript(&script); err != nil {
		return nil, fmt.Errorf("invalid chat script: %w", err)
	}
	return &script, nil
}

// applyChatDefaults 为缺省字段设置默认值
func applyChatDefaults(script *ChatScript) {
	if script.CompleteDelay <= 0 {
		script.CompleteDelay = 1.5
	}
	if script.ExitDelay <= 0 {
		script.ExitDelay = 2.0
	}
	for i := range script.Steps {
		// 与原版一致：partner 未配置延迟时按 1 秒处理
		if script.Steps[i].Kind == ChatStepPartner && script.Steps[i].Delay <= 0 {
			script.Steps[i].Delay = 1.0
		}
	}
}

// validateChatScript 校验脚本：类型合法，且每个 user 步骤的答案都能在选项中找到
func validateChatScript(script *ChatScript) error {
	if len(script.Steps) == 0 {
		return fmt.Errorf("at least one step is required")
	}

	optionTexts := make(map[string]bool, len(script.Options))
	for _, opt := range script.Options {
		if opt.ID == "" || opt.Text == "" {
			return fmt.Errorf("option %q: id and text are required", opt.ID)
		}
		optionTexts[opt.Text] = true
	}

	for i, step := range script.Steps {
		switch step.Kind {
		case ChatStepSystem, ChatStepPartner:
			if step.Text == "" {
				return fmt.Errorf("step %d (%s): text is required", i, step.Kind)
			}
		case ChatStepUser:
			if step.Answer == "" {
				return fmt.Errorf("step %d: answer is required", i)
			}
			if !optionTexts[step.Answer] {
				return fmt.Errorf("step %d: answer %q has no matching option", i, step.Answer)
			}
		default:
			return fmt.Errorf("step %d: unknown kind %q", i, step.Kind)
		}
	}
	return nil
}
