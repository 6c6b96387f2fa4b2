package repository

import "sync"

// memTable is a mutex-guarded slice of records keyed by id. Insertion
// order is preserved so listings render in the order rows were added,
// like the sheet they mirror.
type memTable[T any] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(T) string
}

func newMemTable[T any](idOf func(T) string) *memTable[T] {
	return &memTable[T]{idOf: idOf}
}

// list returns a copy of all records.
func (t *memTable[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, len(t.items))
	copy(out, t.items)
	return out
}

// get returns the record with the given id.
func (t *memTable[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, item := range t.items {
		if t.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// find returns the first record matching pred.
func (t *memTable[T]) find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, item := range t.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (t *memTable[T]) insert(item T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append(t.items, item)
}

func (t *memTable[T]) insertBatch(items []T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append(t.items, items...)
}

// update replaces the record with the same id, reporting whether it
// was found.
func (t *memTable[T]) update(item T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.idOf(item)
	for i := range t.items {
		if t.idOf(t.items[i]) == id {
			t.items[i] = item
			return true
		}
	}
	return false
}

// remove deletes the record with the given id, reporting whether it
// was found.
func (t *memTable[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.items {
		if t.idOf(t.items[i]) == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return true
		}
	}
	return false
}

// replaceAll swaps the whole table for a fresh snapshot.
func (t *memTable[T]) replaceAll(items []T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = make([]T, len(items))
	copy(t.items, items)
}

func (t *memTable[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}
