package canvas

import (
	"fmt"
	"iter"
	"sync"
)

// Drawables is an ordered, mutable collection of drawables.
// It is safe for concurrent use; each method is atomic on its own.
type Drawables struct {
	mu    sync.RWMutex
	items []Drawable
}

// NewDrawables creates a collection holding the given items in order.
func NewDrawables(items ...Drawable) *Drawables {
	ds := &Drawables{}
	ds.Append(items...)
	return ds
}

// Append adds items to the end of the collection. Nil items are skipped.
func (ds *Drawables) Append(items ...Drawable) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	for _, d := range items {
		if d != nil {
			ds.items = append(ds.items, d)
		}
	}
}

// Remove deletes the first occurrence of d, matched by ID.
// Returns ErrDrawableNotFound if d is not present; the collection is
// left unchanged in that case.
func (ds *Drawables) Remove(d Drawable) error {
	if d == nil {
		return ErrNilDrawable
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()

	i := ds.indexLocked(d)
	if i < 0 {
		return fmt.Errorf("remove %s %s: %w", d.Kind(), d.ID(), ErrDrawableNotFound)
	}

	copy(ds.items[i:], ds.items[i+1:])
	ds.items[len(ds.items)-1] = nil
	ds.items = ds.items[:len(ds.items)-1]
	return nil
}

// Clear removes every item.
func (ds *Drawables) Clear() {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	clear(ds.items)
	ds.items = ds.items[:0]
}

// Snapshot returns a shallow ordered copy of the current items.
func (ds *Drawables) Snapshot() []Drawable {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	out := make([]Drawable, len(ds.items))
	copy(out, ds.items)
	return out
}

// Len returns the number of items.
func (ds *Drawables) Len() int {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return len(ds.items)
}

// At returns the item at index i. It panics if i is out of range.
func (ds *Drawables) At(i int) Drawable {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.items[i]
}

// IndexOf returns the index of the first item with d's ID, or -1.
func (ds *Drawables) IndexOf(d Drawable) int {
	if d == nil {
		return -1
	}
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.indexLocked(d)
}

// Contains reports whether d is present.
func (ds *Drawables) Contains(d Drawable) bool {
	return ds.IndexOf(d) >= 0
}

// All iterates over a snapshot of the items in order.
func (ds *Drawables) All() iter.Seq2[int, Drawable] {
	items := ds.Snapshot()
	return func(yield func(int, Drawable) bool) {
		for i, d := range items {
			if !yield(i, d) {
				return
			}
		}
	}
}

func (ds *Drawables) indexLocked(d Drawable) int {
	id := d.ID()
	for i, item := range ds.items {
		if item.ID() == id {
			return i
		}
	}
	return -1
}
