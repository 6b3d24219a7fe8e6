package game

import (
	"log"

	"github.com/hbd-sarah/journey/pkg/config"
)

// ProgressObserver 进度变更回调，参数是变更后记录的副本
type ProgressObserver func(ProgressRecord)

// ProgressStore 进度状态机
//
// 职责：
//   - 持有唯一的 ProgressRecord，是它唯一的修改者
//   - 每次状态转换后通知订阅者（场景管理器据此重新路由）
//   - 信封打开后，每次变更都写入存储（尽力而为，失败只记录日志）
//
// 单线程使用：所有调用都来自 ebiten 的 Update 循环，不加锁。
type ProgressStore struct {
	saves      *SaveManager
	record     ProgressRecord
	saved      *ProgressRecord // 启动时读到的存档，打开信封时恢复
	observers  []ProgressObserver
	generation int // 每次 Reset 自增，用于强制重建场景
}

// NewProgressStore 创建进度状态机
//
// 启动时读取已有存档放入 SavedRecord，但实时进度从默认值开始，
// 直到信封被打开（OpenLetter）才恢复。读取失败视为没有存档。
//
// 参数：
//   - saves: 保存管理器，可为 nil（纯内存进度）
//
// 返回：
//   - *ProgressStore: 进度状态机实例
func NewProgressStore(saves *SaveManager) *ProgressStore {
	if saves == nil {
		saves = NewSaveManager(nil)
	}
	ps := &ProgressStore{
		saves:  saves,
		record: DefaultProgress(),
	}

	saved, ok, err := saves.LoadRecord()
	if err != nil {
		log.Printf("[SaveManager] Warning: Failed to load progress: %v (using defaults)", err)
	}
	if ok {
		ps.saved = &saved
		log.Printf("[ProgressStore] Found saved progress: unlocked=%v completed=%v", saved.Unlocked(), saved.Completed())
	}
	return ps
}

// Record 返回当前进度的副本
func (ps *ProgressStore) Record() ProgressRecord {
	return ps.record.Clone()
}

// SavedRecord 返回启动时读取到的存档副本
//
// 返回：
//   - ProgressRecord: 存档记录
//   - bool: 是否存在存档
func (ps *ProgressStore) SavedRecord() (ProgressRecord, bool) {
	if ps.saved == nil {
		return ProgressRecord{}, false
	}
	return ps.saved.Clone(), true
}

// SaveManager 返回底层保存管理器（地图欢迎弹窗标记使用）
func (ps *ProgressStore) SaveManager() *SaveManager {
	return ps.saves
}

// Generation 返回重置计数
func (ps *ProgressStore) Generation() int {
	return ps.generation
}

// Subscribe 注册进度变更回调
//
// 返回：
//   - func(): 取消订阅函数
func (ps *ProgressStore) Subscribe(observer ProgressObserver) func() {
	ps.observers = append(ps.observers, observer)
	idx := len(ps.observers) - 1
	return func() {
		if idx < len(ps.observers) {
			ps.observers[idx] = nil
		}
	}
}

// CompleteLevel 完成关卡：记入已完成，解锁下一关，回到地图
//
// 集合语义，重复调用是幂等的。
func (ps *ProgressStore) CompleteLevel(level int) {
	ps.record.CompletedLevels.Put(level)
	ps.record.UnlockedLevels.Put(level + 1)
	ps.record.CurrentLevel = config.MapLevel
	log.Printf("[ProgressStore] Level %d completed, unlocked %d", level, level+1)
	ps.commit()
}

// UnlockLevel 解锁关卡，其余字段不变
func (ps *ProgressStore) UnlockLevel(level int) {
	ps.record.UnlockedLevels.Put(level)
	ps.commit()
}

// UnlockAll 一次性解锁多个关卡（地图彩蛋）
func (ps *ProgressStore) UnlockAll(levels []int) {
	for _, lvl := range levels {
		ps.record.UnlockedLevels.Put(lvl)
	}
	log.Printf("[ProgressStore] Unlocked levels %v", levels)
	ps.commit()
}

// SelectLevel 进入关卡
//
// 参数：
//   - level: 目标关卡
//
// 返回：
//   - bool: 关卡未解锁时静默忽略并返回 false
func (ps *ProgressStore) SelectLevel(level int) bool {
	if !ps.record.UnlockedLevels.Has(level) {
		log.Printf("[ProgressStore] Ignored select of locked level %d", level)
		return false
	}
	ps.record.CurrentLevel = level
	ps.commit()
	return true
}

// ReturnToMap 回到地图
func (ps *ProgressStore) ReturnToMap() {
	ps.record.CurrentLevel = config.MapLevel
	ps.commit()
}

// OpenLetter 打开信封（单向 false → true）
//
// 如果启动时读到了存档，则从存档恢复进度。
func (ps *ProgressStore) OpenLetter() {
	if ps.record.IsLetterOpened {
		return
	}
	if ps.saved != nil {
		ps.record = ps.saved.Clone()
		log.Printf("[ProgressStore] Resumed saved progress")
	}
	ps.record.IsLetterOpened = true
	ps.commit()
}

// SetFlowerChoice 记录选中的花朵
func (ps *ProgressStore) SetFlowerChoice(flowerID string) {
	ps.record.FlowerChoice = flowerID
	ps.commit()
}

// SetWishes 记录生日愿望
func (ps *ProgressStore) SetWishes(wishes string) {
	ps.record.Wishes = wishes
	ps.commit()
}

// SetUserName 修改称呼
func (ps *ProgressStore) SetUserName(name string) {
	if name == "" {
		name = config.DefaultUserName
	}
	ps.record.UserName = name
	ps.commit()
}

// Reset 清空进度
//
// 恢复默认记录，删除存档和欢迎弹窗标记，并让场景管理器从头重建。
func (ps *ProgressStore) Reset() {
	ps.record = DefaultProgress()
	ps.saved = nil
	if err := ps.saves.DeleteRecord(); err != nil {
		log.Printf("[SaveManager] Warning: %v", err)
	}
	ps.generation++
	log.Printf("[ProgressStore] Progress reset (generation %d)", ps.generation)
	ps.notify()
}

// commit 持久化（信封打开之后）并通知订阅者
func (ps *ProgressStore) commit() {
	if ps.record.IsLetterOpened {
		if err := ps.saves.SaveRecord(ps.record); err != nil {
			log.Printf("[SaveManager] Warning: %v", err)
		}
	}
	ps.notify()
}

func (ps *ProgressStore) notify() {
	for _, observer := range ps.observers {
		if observer != nil {
			observer(ps.record.Clone())
		}
	}
}
