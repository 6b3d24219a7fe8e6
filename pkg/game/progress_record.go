package game

import (
	"sort"

	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/zyedidia/generic/mapset"
)

// ProgressRecord 整个旅程唯一的进度记录
//
// CurrentLevel 为 0 表示地图界面；UnlockedLevels 始终包含第一关。
// FlowerChoice 为空字符串表示尚未选择花朵。
type ProgressRecord struct {
	CurrentLevel    int
	UnlockedLevels  mapset.Set[int]
	CompletedLevels mapset.Set[int]
	IsLetterOpened  bool
	UserName        string
	FlowerChoice    string
	Wishes          string
}

// progressDocument 持久化格式：集合以升序整数列表存储，无版本字段
type progressDocument struct {
	CurrentLevel    int    `yaml:"currentLevel"`
	UnlockedLevels  []int  `yaml:"unlockedLevels"`
	CompletedLevels []int  `yaml:"completedLevels"`
	IsLetterOpened  bool   `yaml:"isLetterOpened"`
	UserName        string `yaml:"userName"`
	FlowerChoice    string `yaml:"flowerChoice,omitempty"`
	Wishes          string `yaml:"wishes"`
}

// DefaultProgress 返回初始进度：停在地图，只解锁第一关，信封未打开
func DefaultProgress() ProgressRecord {
	unlocked := mapset.New[int]()
	unlocked.Put(config.FirstLevel)
	return ProgressRecord{
		CurrentLevel:    config.MapLevel,
		UnlockedLevels:  unlocked,
		CompletedLevels: mapset.New[int](),
		UserName:        config.DefaultUserName,
	}
}

// Clone 深拷贝记录，观察者拿到的副本不会影响存储中的状态
func (r ProgressRecord) Clone() ProgressRecord {
	out := r
	out.UnlockedLevels = copySet(r.UnlockedLevels)
	out.CompletedLevels = copySet(r.CompletedLevels)
	return out
}

// IsUnlocked 判断关卡是否已解锁
func (r ProgressRecord) IsUnlocked(level int) bool {
	return r.UnlockedLevels.Has(level)
}

// IsCompleted 判断关卡是否已完成
func (r ProgressRecord) IsCompleted(level int) bool {
	return r.CompletedLevels.Has(level)
}

// Unlocked 返回升序的已解锁关卡列表
func (r ProgressRecord) Unlocked() []int {
	return sortedKeys(r.UnlockedLevels)
}

// Completed 返回升序的已完成关卡列表
func (r ProgressRecord) Completed() []int {
	return sortedKeys(r.CompletedLevels)
}

func (r ProgressRecord) toDocument() progressDocument {
	return progressDocument{
		CurrentLevel:    r.CurrentLevel,
		UnlockedLevels:  r.Unlocked(),
		CompletedLevels: r.Completed(),
		IsLetterOpened:  r.IsLetterOpened,
		UserName:        r.UserName,
		FlowerChoice:    r.FlowerChoice,
		Wishes:          r.Wishes,
	}
}

// fromDocument 把磁盘格式还原为记录，并修复缺失字段
func fromDocument(doc progressDocument) ProgressRecord {
	r := ProgressRecord{
		CurrentLevel:    doc.CurrentLevel,
		UnlockedLevels:  mapset.New[int](),
		CompletedLevels: mapset.New[int](),
		IsLetterOpened:  doc.IsLetterOpened,
		UserName:        doc.UserName,
		FlowerChoice:    doc.FlowerChoice,
		Wishes:          doc.Wishes,
	}
	for _, lvl := range doc.UnlockedLevels {
		r.UnlockedLevels.Put(lvl)
	}
	for _, lvl := range doc.CompletedLevels {
		r.CompletedLevels.Put(lvl)
	}
	r.UnlockedLevels.Put(config.FirstLevel)
	if r.UserName == "" {
		r.UserName = config.DefaultUserName
	}
	return r
}

func copySet(s mapset.Set[int]) mapset.Set[int] {
	out := mapset.New[int]()
	s.Each(func(v int) {
		out.Put(v)
	})
	return out
}

func sortedKeys(s mapset.Set[int]) []int {
	keys := make([]int, 0, s.Size())
	s.Each(func(v int) {
		keys = append(keys, v)
	})
	sort.Ints(keys)
	return keys
}
