package game

import (
	"sync"
	"time"
)

// TableManager 按对局ID管理游戏桌，一秒一跳驱动各桌引擎定时器
type TableManager struct {
	mu     sync.RWMutex
	tables map[string]*Table // roundID -> Table
	ticker *time.Ticker
}

func NewTableManager() *TableManager {
	t := &TableManager{
		tables: make(map[string]*Table),
		ticker: time.NewTicker(time.Second),
	}
	go func() {
		for range t.ticker.C {
			t.tick()
		}
	}()

	return t
}

func (t *TableManager) tick() {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, table := range t.tables {
		table.tick()
	}
}

func (t *TableManager) Get(roundID string) *Table {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tables[roundID]
}

// Store 登记新桌；对局ID冲突时返回已存在的桌
func (t *TableManager) Store(roundID string, table *Table) *Table {
	t.mu.Lock()
	defer t.mu.Unlock()
	if exist, ok := t.tables[roundID]; ok {
		return exist
	}
	t.tables[roundID] = table
	return table
}

func (t *TableManager) Delete(roundID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.tables, roundID)
}

func (t *TableManager) Stop() {
	t.ticker.Stop()
}
