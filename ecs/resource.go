package ecs

import "reflect"

// InsertResource stores v as the world's single resource of type T.
func InsertResource[T any](w *World, v *T) {
	if w == nil || v == nil {
		return
	}
	w.resources[reflect.TypeFor[T]()] = v
}

// Resource returns the resource of type T, if one was inserted.
func Resource[T any](w *World) (*T, bool) {
	if w == nil {
		return nil, false
	}
	v, ok := w.resources[reflect.TypeFor[T]()].(*T)
	return v, ok
}

func RemoveResource[T any](w *World) bool {
	if w == nil {
		return false
	}
	key := reflect.TypeFor[T]()
	if _, ok := w.resources[key]; !ok {
		return false
	}
	delete(w.resources, key)
	return true
}
