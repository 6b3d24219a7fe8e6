package game

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	progressObject      = "progress"
	progressRecordProp  = "record"
	introPopupShownProp = "intro_popup"
)

// SaveManager 保存管理器
//
// 职责：
//   - 把 ProgressRecord 序列化为 YAML 并写入存储
//   - 读取上次保存的记录（读取失败一律降级为"无存档"）
//   - 管理地图欢迎弹窗的一次性标记
//
// 架构说明：
//   - 存储可为 nil（降级模式，仅内存进度，所有写操作静默成功）
//   - 由 ProgressStore 调用，不直接与场景交互
type SaveManager struct {
	storage    Storage
	introShown bool // 降级模式下的内存标记
}

// NewSaveManager 创建保存管理器
//
// 参数：
//   - storage: 键值存储（通常是 *gdata.Manager），可为 nil
//
// 返回：
//   - *SaveManager: 新创建的保存管理器实例
func NewSaveManager(storage Storage) *SaveManager {
	return &SaveManager{storage: storage}
}

// HasStorage 是否有可用的持久化存储
func (sm *SaveManager) HasStorage() bool {
	return sm.storage != nil
}

// LoadRecord 读取已保存的进度
//
// 返回：
//   - ProgressRecord: 读取到的记录
//   - bool: 是否存在有效存档
//   - error: 存档存在但读取或解析失败时返回错误（调用方应当降级为默认值）
func (sm *SaveManager) LoadRecord() (ProgressRecord, bool, error) {
	if sm.storage == nil || !sm.storage.ObjectPropExists(progressObject, progressRecordProp) {
		return DefaultProgress(), false, nil
	}

	data, err := sm.storage.LoadObjectProp(progressObject, progressRecordProp)
	if err != nil {
		return DefaultProgress(), false, fmt.Errorf("failed to load progress: %w", err)
	}

	var doc progressDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return DefaultProgress(), false, fmt.Errorf("failed to unmarshal progress: %w", err)
	}

	return fromDocument(doc), true, nil
}

// SaveRecord 把进度写入存储
//
// 返回：
//   - error: 序列化或写入失败返回错误
func (sm *SaveManager) SaveRecord(record ProgressRecord) error {
	if sm.storage == nil {
		return nil
	}

	data, err := yaml.Marshal(record.toDocument())
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	if err := sm.storage.SaveObjectProp(progressObject, progressRecordProp, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// DeleteRecord 删除存档和欢迎弹窗标记
func (sm *SaveManager) DeleteRecord() error {
	sm.introShown = false
	if sm.storage == nil {
		return nil
	}

	if sm.storage.ObjectPropExists(progressObject, progressRecordProp) {
		if err := sm.storage.DeleteObjectProp(progressObject, progressRecordProp); err != nil {
			return fmt.Errorf("failed to delete progress: %w", err)
		}
	}
	if sm.storage.ObjectPropExists(progressObject, introPopupShownProp) {
		if err := sm.storage.DeleteObjectProp(progressObject, introPopupShownProp); err != nil {
			return fmt.Errorf("failed to delete intro popup flag: %w", err)
		}
	}

	log.Printf("[SaveManager] Progress deleted")
	return nil
}

// IntroPopupShown 地图欢迎弹窗是否已经展示过
func (sm *SaveManager) IntroPopupShown() bool {
	if sm.storage == nil {
		return sm.introShown
	}
	return sm.storage.ObjectPropExists(progressObject, introPopupShownProp)
}

// MarkIntroPopupShown 记录欢迎弹窗已展示
func (sm *SaveManager) MarkIntroPopupShown() error {
	sm.introShown = true
	if sm.storage == nil {
		return nil
	}
	if err := sm.storage.SaveObjectProp(progressObject, introPopupShownProp, []byte("true")); err != nil {
		return fmt.Errorf("failed to save intro popup flag: %w", err)
	}
	return nil
}
