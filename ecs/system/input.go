package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/mover/ecs"
	"github.com/milk9111/mover/input"
)

// KeyboardSystem copies this frame's Ebitengine key edges into the keyboard
// resource. It does nothing when the resource is absent.
type KeyboardSystem struct {
	keys []ebiten.Key
}

func NewKeyboardSystem() *KeyboardSystem {
	return &KeyboardSystem{}
}

func (k *KeyboardSystem) Update(w *ecs.World) error {
	kb, ok := ecs.Resource[input.Keyboard](w)
	if !ok {
		return nil
	}

	k.keys = inpututil.AppendJustReleasedKeys(k.keys[:0])
	for _, key := range k.keys {
		kb.Release(key)
	}

	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	for _, key := range k.keys {
		kb.Press(key)
	}

	return nil
}

func (k *KeyboardSystem) Name() string {
	return "keyboard"
}

// ClearInputSystem ends the frame for the keyboard resource so that a press
// is only "just pressed" for one update.
type ClearInputSystem struct{}

func NewClearInputSystem() *ClearInputSystem {
	return &ClearInputSystem{}
}

func (c *ClearInputSystem) Update(w *ecs.World) error {
	if kb, ok := ecs.Resource[input.Keyboard](w); ok {
		kb.Clear()
	}
	return nil
}

func (c *ClearInputSystem) Name() string {
	return "clear_input"
}
