package memory

import (
	"sort"
	"sync"

	domainErrors "github.com/polkiloo/marketingapi/internal/domain/errors"
)

type uniqueIndex[T any] struct {
	field   string
	key     func(T) string
	entries map[string]int64
}

// table keeps rows by id and maintains every unique index under one lock,
// so a uniqueness check and the insert that follows it cannot interleave.
type table[T any] struct {
	mu      sync.RWMutex
	nextID  int64
	rows    map[int64]T
	indexes []*uniqueIndex[T]
	setID   func(*T, int64)
}

func newTable[T any](setID func(*T, int64)) *table[T] {
	return &table[T]{rows: make(map[int64]T), setID: setID}
}

func (t *table[T]) addIndex(field string, key func(T) string) {
	t.indexes = append(t.indexes, &uniqueIndex[T]{field: field, key: key, entries: make(map[string]int64)})
}

func (t *table[T]) insertIfUnique(row T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, idx := range t.indexes {
		if _, taken := idx.entries[idx.key(row)]; taken {
			var zero T
			return zero, domainErrors.NewConflict(idx.field)
		}
	}

	t.nextID++
	t.setID(&row, t.nextID)
	t.rows[t.nextID] = row
	for _, idx := range t.indexes {
		idx.entries[idx.key(row)] = t.nextID
	}
	return row, nil
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) lookup(field, key string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var zero T
	for _, idx := range t.indexes {
		if idx.field != field {
			continue
		}
		id, ok := idx.entries[key]
		if !ok {
			return zero, false
		}
		row, ok := t.rows[id]
		return row, ok
	}
	return zero, false
}

func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) delete(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return false
	}
	for _, idx := range t.indexes {
		delete(idx.entries, idx.key(row))
	}
	delete(t.rows, id)
	return true
}
