package memstore

import (
	"slices"
	"sync"

	"travelmate/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

var deepCopy = copier.Option{DeepCopy: true}

// Table is the keyed collection for one entity type. It owns its records and
// its id counter; callers only ever see copies.
type Table[T any] struct {
	mu      sync.RWMutex
	rows    map[int64]*T
	order   []int64
	nextID  int64
	setID   func(rec *T, id int64)
	created func(rec *T)
}

// NewTable creates an empty table. setID writes the assigned id into a record.
func NewTable[T any](setID func(rec *T, id int64)) *Table[T] {
	return &Table[T]{
		rows:    make(map[int64]*T),
		nextID:  1,
		setID:   setID,
		created: func(*T) {},
	}
}

// OnCreate registers a hook that stamps creation-time fields on insert.
func (t *Table[T]) OnCreate(hook func(rec *T)) *Table[T] {
	t.created = hook
	return t
}

func (t *Table[T]) Get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return clone(row), true
}

// Create assigns the next id and stores a copy of rec.
func (t *Table[T]) Create(rec T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.insertLocked(rec)
}

// CreateUnless inserts rec unless conflicts reports a clash with an existing
// row. The check and the insert happen under one lock.
func (t *Table[T]) CreateUnless(rec T, conflicts func(existing *T) bool) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, id := range t.order {
		if conflicts(t.rows[id]) {
			var zero T
			return zero, false
		}
	}
	return t.insertLocked(rec), true
}

// Update runs mutate against the stored row and returns the result. The row
// id is restored afterwards so mutate cannot re-key a record.
func (t *Table[T]) Update(id int64, mutate func(rec *T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	next := clone(row)
	mutate(&next)
	t.setID(&next, id)
	t.rows[id] = &next
	return clone(&next), true
}

func (t *Table[T]) Delete(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	if i := slices.Index(t.order, id); i >= 0 {
		t.order = slices.Delete(t.order, i, i+1)
	}
	return true
}

// List returns matching rows in insertion order. A nil keep matches all.
func (t *Table[T]) List(keep func(rec *T) bool) []T {
	return t.ListN(keep, -1)
}

// ListN is List stopping after limit rows. A negative limit means no limit.
func (t *Table[T]) ListN(keep func(rec *T) bool, limit int) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range t.order {
		if limit >= 0 && len(out) >= limit {
			break
		}
		row := t.rows[id]
		if keep == nil || keep(row) {
			out = append(out, clone(row))
		}
	}
	return out
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// reset drops every row and restarts the counter at 1.
func (t *Table[T]) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows = make(map[int64]*T)
	t.order = nil
	t.nextID = 1
}

func (t *Table[T]) insertLocked(rec T) T {
	id := t.nextID
	t.nextID++

	row := clone(&rec)
	t.setID(&row, id)
	t.created(&row)
	t.rows[id] = &row
	t.order = append(t.order, id)
	return clone(&row)
}

// clone deep-copies a record. copier only fails on mismatched kinds, which a
// T to T copy cannot produce.
func clone[T any](src *T) T {
	var dst T
	if err := copier.CopyWithOption(&dst, src, deepCopy); err != nil {
		panic(errs.Wrap(err, "memstore: clone record"))
	}
	return dst
}
