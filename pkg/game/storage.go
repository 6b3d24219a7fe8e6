package game

import (
	"fmt"
	"io/fs"
)

// Storage 键值存储抽象
//
// 方法签名与 *gdata.Manager 一致，生产环境直接传入 gdata 管理器
// （桌面端写入用户数据目录，wasm 下映射到浏览器 localStorage），
// 测试中使用 MemoryStorage。
type Storage interface {
	SaveObjectProp(objectKey, propKey string, data []byte) error
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	ObjectPropExists(objectKey, propKey string) bool
	DeleteObjectProp(objectKey, propKey string) error
}

// MemoryStorage 纯内存存储，用于测试和无法打开 gdata 时的降级模式
type MemoryStorage struct {
	props map[string][]byte

	// FailWrites 为 true 时所有写操作返回错误（模拟存储配额耗尽）
	FailWrites bool
}

// NewMemoryStorage 创建空的内存存储
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{props: make(map[string][]byte)}
}

func memoryKey(objectKey, propKey string) string {
	return objectKey + "/" + propKey
}

// SaveObjectProp 写入一个属性（拷贝数据）
func (m *MemoryStorage) SaveObjectProp(objectKey, propKey string, data []byte) error {
	if m.FailWrites {
		return fmt.Errorf("memory storage: write %s rejected", memoryKey(objectKey, propKey))
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.props[memoryKey(objectKey, propKey)] = buf
	return nil
}

// LoadObjectProp 读取一个属性，不存在时返回 fs.ErrNotExist
func (m *MemoryStorage) LoadObjectProp(objectKey, propKey string) ([]byte, error) {
	data, ok := m.props[memoryKey(objectKey, propKey)]
	if !ok {
		return nil, fmt.Errorf("memory storage: %s: %w", memoryKey(objectKey, propKey), fs.ErrNotExist)
	}
	return data, nil
}

// ObjectPropExists 判断属性是否存在
func (m *MemoryStorage) ObjectPropExists(objectKey, propKey string) bool {
	_, ok := m.props[memoryKey(objectKey, propKey)]
	return ok
}

// DeleteObjectProp 删除属性，不存在时不报错
func (m *MemoryStorage) DeleteObjectProp(objectKey, propKey string) error {
	if m.FailWrites {
		return fmt.Errorf("memory storage: delete %s rejected", memoryKey(objectKey, propKey))
	}
	delete(m.props, memoryKey(objectKey, propKey))
	return nil
}

// Put 直接写入原始数据（测试中用于构造损坏的存档）
func (m *MemoryStorage) Put(objectKey, propKey string, data []byte) {
	m.props[memoryKey(objectKey, propKey)] = data
}
