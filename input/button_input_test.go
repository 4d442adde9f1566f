package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestButtonInputPressLifecycle(t *testing.T) {
	kb := NewKeyboard()

	if kb.Pressed(ebiten.KeyArrowRight) || kb.JustPressed(ebiten.KeyArrowRight) {
		t.Fatalf("new keyboard should have nothing pressed")
	}

	kb.Press(ebiten.KeyArrowRight)
	if !kb.Pressed(ebiten.KeyArrowRight) || !kb.JustPressed(ebiten.KeyArrowRight) {
		t.Fatalf("expected right to be pressed and just pressed")
	}

	kb.Clear()
	if !kb.Pressed(ebiten.KeyArrowRight) {
		t.Fatalf("Clear must keep held keys")
	}
	if kb.JustPressed(ebiten.KeyArrowRight) {
		t.Fatalf("Clear must drop just pressed")
	}

	kb.Press(ebiten.KeyArrowRight)
	if kb.JustPressed(ebiten.KeyArrowRight) {
		t.Fatalf("pressing a held key must not fire again")
	}

	kb.Release(ebiten.KeyArrowRight)
	if kb.Pressed(ebiten.KeyArrowRight) || !kb.JustReleased(ebiten.KeyArrowRight) {
		t.Fatalf("expected right released this frame")
	}

	kb.Clear()
	if kb.JustReleased(ebiten.KeyArrowRight) {
		t.Fatalf("Clear must drop just released")
	}
}

func TestButtonInputReleaseUnheld(t *testing.T) {
	b := NewButtonInput[string]()
	b.Release("a")
	if b.JustReleased("a") {
		t.Fatalf("releasing an unheld button must not fire")
	}
}

func TestButtonInputReleaseAllAndReset(t *testing.T) {
	b := NewButtonInput[string]()
	b.Press("a")
	b.Press("b")
	b.ReleaseAll()

	for _, k := range []string{"a", "b"} {
		if b.Pressed(k) {
			t.Fatalf("%s should be released", k)
		}
		if !b.JustReleased(k) {
			t.Fatalf("%s should be just released", k)
		}
	}

	b.Press("c")
	b.Reset("c")
	if b.Pressed("c") || b.JustPressed("c") || b.JustReleased("c") {
		t.Fatalf("Reset should forget every state of c")
	}
}
