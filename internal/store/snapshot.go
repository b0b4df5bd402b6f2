package store

import (
	"sync"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
)

// Snapshot 内存数据快照
// 报表计算读取内存数据集，导入时整体替换，读写互斥
type Snapshot struct {
	mu sync.RWMutex
	ds *model.Dataset
}

// NewSnapshot 创建空快照
func NewSnapshot() *Snapshot {
	return &Snapshot{ds: &model.Dataset{}}
}

// Replace 替换快照数据集
func (s *Snapshot) Replace(ds *model.Dataset) {
	if ds == nil {
		ds = &model.Dataset{}
	}
	s.mu.Lock()
	s.ds = ds
	s.mu.Unlock()
}

// Dataset 当前数据集
func (s *Snapshot) Dataset() *model.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}
