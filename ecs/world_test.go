package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/mover/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for dead entity")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestEmptyWorldHasNoEntities(t *testing.T) {
	w := NewWorld()
	if n := len(Entities(w)); n != 0 {
		t.Fatalf("expected no entities, got %d", n)
	}
}

func TestEntityIDReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	e1 := CreateEntity(w)
	DestroyEntity(w, e1)
	e2 := CreateEntity(w)

	if e1.id() != e2.id() {
		t.Fatalf("expected id %d to be reused, got %d", e1.id(), e2.id())
	}
	if e1.generation() == e2.generation() {
		t.Fatalf("expected a new generation for reused id")
	}
	if IsAlive(w, e1) {
		t.Fatalf("stale handle must not be alive")
	}
	if !e2.Valid() {
		t.Fatalf("created entity must be valid")
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	hInt := component.NewComponent[int]()
	hStr := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, hInt.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, hInt.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, hInt.Kind()) {
					t.Fatalf("e2 should not have the int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, hInt.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, hStr.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, hStr.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, hStr.Kind()) || !Has(w, e2, hStr.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				v, _ := Get(w, e2, hStr.Kind())
				if *v != "b" {
					t.Fatalf("expected b, got %q", *v)
				}
			},
			teardown: func() bool { return Remove(w, e1, hStr.Kind()) },
		},
		{
			name:  "replace_value",
			setup: func() error { return Add(w, e2, hInt.Kind(), intPtr(7)) },
			check: func(t *testing.T) {
				if err := Add(w, e2, hInt.Kind(), intPtr(8)); err != nil {
					t.Fatal(err)
				}
				v, _ := Get(w, e2, hInt.Kind())
				if *v != 8 {
					t.Fatalf("expected replaced value 8, got %d", *v)
				}
			},
			teardown: func() bool { return Remove(w, e2, hInt.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)

	if err := Add(w, e, h.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}

	DestroyEntity(w, e)
	if err := Add(w, e, h.Kind(), intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestDestroyEntityDropsComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, e)

	reused := CreateEntity(w)
	if Has(w, reused, h.Kind()) {
		t.Fatalf("reused id must not inherit components")
	}
	if n := Count(w, h.Kind()); n != 0 {
		t.Fatalf("expected 0 entities with component, got %d", n)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	seen := make(map[Entity]int)
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		seen[e] = *v
		*v *= 10
	})

	if seen[e1] != 1 || seen[e3] != 3 {
		t.Fatalf("unexpected ForEach values: %v", seen)
	}
	if _, ok := seen[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
	if v, _ := Get(w, e3, h.Kind()); *v != 30 {
		t.Fatalf("expected in-place mutation to stick, got %d", *v)
	}
}

func TestForEach2(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[string]()

				if err := Add(w, e1, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, ka, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kb, stringPtr("two")); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, kb, stringPtr("three")); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *string) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[string]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, kb, stringPtr("x")); err != nil {
					t.Fatal(err)
				}
				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *string) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "no_common",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[string]()

				if err := Add(w, e1, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kb, stringPtr("b")); err != nil {
					t.Fatal(err)
				}

				called := false
				ForEach2(w, ka, kb, func(Entity, *int, *string) { called = true })
				if called {
					t.Fatalf("expected no matches")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestSingle(t *testing.T) {
	tag := component.NewComponentKind[struct{}]()

	cases := []struct {
		name    string
		spawn   int
		wantErr error
	}{
		{"none", 0, ErrNoEntity},
		{"one", 1, nil},
		{"two", 2, ErrMultipleEntities},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			var last Entity
			for i := 0; i < c.spawn; i++ {
				last = CreateEntity(w)
				if err := Add(w, last, tag, &struct{}{}); err != nil {
					t.Fatal(err)
				}
			}

			e, err := Single(w, tag)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if e != last {
				t.Fatalf("expected %s, got %s", last, e)
			}
		})
	}
}

type counter struct {
	n int
}

func TestResources(t *testing.T) {
	w := NewWorld()

	if _, ok := Resource[counter](w); ok {
		t.Fatalf("expected no resource in a new world")
	}

	InsertResource(w, &counter{n: 1})
	c, ok := Resource[counter](w)
	if !ok || c.n != 1 {
		t.Fatalf("expected counter 1, got %v ok=%v", c, ok)
	}

	c.n++
	again, _ := Resource[counter](w)
	if again.n != 2 {
		t.Fatalf("expected resource to be shared, got %d", again.n)
	}

	InsertResource(w, &counter{n: 5})
	replaced, _ := Resource[counter](w)
	if replaced.n != 5 {
		t.Fatalf("expected replaced resource, got %d", replaced.n)
	}

	if !RemoveResource[counter](w) {
		t.Fatalf("expected RemoveResource to report removal")
	}
	if RemoveResource[counter](w) {
		t.Fatalf("second RemoveResource should report false")
	}
}
