// Package input holds button state resources fed by the platform layer and
// read by gameplay systems.
package input

import "github.com/hajimehoshi/ebiten/v2"

// ButtonInput tracks which buttons are held and which changed this frame.
// Just-pressed and just-released hold until Clear is called.
type ButtonInput[K comparable] struct {
	pressed      map[K]struct{}
	justPressed  map[K]struct{}
	justReleased map[K]struct{}
}

// Keyboard is the keyboard resource type.
type Keyboard = ButtonInput[ebiten.Key]

func NewButtonInput[K comparable]() *ButtonInput[K] {
	return &ButtonInput[K]{
		pressed:      make(map[K]struct{}),
		justPressed:  make(map[K]struct{}),
		justReleased: make(map[K]struct{}),
	}
}

func NewKeyboard() *Keyboard {
	return NewButtonInput[ebiten.Key]()
}

// Press registers a press. A button already held does not fire again.
func (b *ButtonInput[K]) Press(k K) {
	if _, held := b.pressed[k]; held {
		return
	}
	b.pressed[k] = struct{}{}
	b.justPressed[k] = struct{}{}
}

// Release registers a release of a held button.
func (b *ButtonInput[K]) Release(k K) {
	if _, held := b.pressed[k]; !held {
		return
	}
	delete(b.pressed, k)
	b.justReleased[k] = struct{}{}
}

func (b *ButtonInput[K]) ReleaseAll() {
	for k := range b.pressed {
		b.justReleased[k] = struct{}{}
	}
	clear(b.pressed)
}

func (b *ButtonInput[K]) Pressed(k K) bool {
	_, ok := b.pressed[k]
	return ok
}

func (b *ButtonInput[K]) JustPressed(k K) bool {
	_, ok := b.justPressed[k]
	return ok
}

func (b *ButtonInput[K]) JustReleased(k K) bool {
	_, ok := b.justReleased[k]
	return ok
}

// Reset forgets every state of k without generating events.
func (b *ButtonInput[K]) Reset(k K) {
	delete(b.pressed, k)
	delete(b.justPressed, k)
	delete(b.justReleased, k)
}

// Clear drops the per-frame edge events. Held buttons stay held.
func (b *ButtonInput[K]) Clear() {
	clear(b.justPressed)
	clear(b.justReleased)
}
