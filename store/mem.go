package store

import (
	"context"
	"fmt"
	"sync"
)

// Mem implements an in-memory version of a Store Provider. It is safe for concurrent use and
// mainly useful for tests and ephemeral setups.
type Mem struct {
	mtx  sync.RWMutex
	data map[string][]byte
}

// NewMem creates a new in-memory Store Provider.
func NewMem() *Mem {
	return &Mem{data: make(map[string][]byte)}
}

func memKey(id []byte, dataType DataType) string {
	return fmt.Sprintf("%x:%s", id, dataType)
}

func (m *Mem) Put(ctx context.Context, id []byte, dataType DataType, data []byte) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	key := memKey(id, dataType)
	if _, ok := m.data[key]; ok {
		return ErrAlreadyExists
	}
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func (m *Mem) Get(ctx context.Context, id []byte, dataType DataType) ([]byte, error) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	data, ok := m.data[memKey(id, dataType)]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *Mem) Update(ctx context.Context, id []byte, dataType DataType, data []byte) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	key := memKey(id, dataType)
	if _, ok := m.data[key]; !ok {
		return ErrNotFound
	}
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func (m *Mem) Delete(ctx context.Context, id []byte, dataType DataType) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	delete(m.data, memKey(id, dataType))
	return nil
}
