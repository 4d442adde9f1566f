package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/mover/ecs/component"
)

var (
	ErrNoEntity         = errors.New("ecs: no entity matches query")
	ErrMultipleEntities = errors.New("ecs: more than one entity matches query")
)

// Query returns the live entities that have every listed component.
func (w *World) Query(kinds ...component.Kinded) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smaller set
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	out := make([]Entity, 0, sets[smallest].Len())
	for _, e := range sets[smallest].Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		match := true
		for i, s := range sets {
			if i != smallest && !s.Has(e.id()) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many live entities have every listed component.
func Count(w *World, kinds ...component.Kinded) int {
	return len(w.Query(kinds...))
}

// Single returns the only entity matching the query. It fails with
// ErrNoEntity or ErrMultipleEntities when the match count is not one.
func Single(w *World, kinds ...component.Kinded) (Entity, error) {
	matches := w.Query(kinds...)
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return 0, ErrNoEntity
	default:
		return 0, fmt.Errorf("%w: got %d", ErrMultipleEntities, len(matches))
	}
}

// ForEach calls fn for every entity with a component of kind. Entities
// created or destroyed by fn do not change the iteration.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(kind) {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for every entity holding both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ka, kb) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

// First returns any live entity holding every listed component.
func (w *World) First(kinds ...component.Kinded) (Entity, bool) {
	matches := w.Query(kinds...)
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0], true
}
