package ecs

import (
	"testing"

	"github.com/kwheeler/ballpit/ecs/component"
)

func intPtr(i int) *int { return &i }

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			for _, e := range ents {
				if !w.IsAlive(e) {
					t.Fatalf("entity %v should be alive after create", e)
				}
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destroy")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("double destroy should return false")
				}
			}
		})
	}
}

func TestSlotReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	e1 := w.CreateEntity()
	if !w.DestroyEntity(e1) {
		t.Fatal("destroy failed")
	}
	e2 := w.CreateEntity()
	if e1 == e2 {
		t.Fatalf("recycled slot must not produce an identical handle")
	}
	if w.IsAlive(e1) {
		t.Fatalf("stale handle should be dead after slot reuse")
	}
	if !w.IsAlive(e2) {
		t.Fatalf("new handle should be alive")
	}
}

func TestComponentsAddGetRemove(t *testing.T) {
	w := NewWorld()
	k := component.NewKind[int]()
	e := w.CreateEntity()

	if err := Add(w, e, k, intPtr(10)); err != nil {
		t.Fatalf("add: %v", err)
	}
	v, ok := Get(w, e, k)
	if !ok || *v != 10 {
		t.Fatalf("expected 10, got %v ok=%v", v, ok)
	}

	*v = 20
	v2, _ := Get(w, e, k)
	if *v2 != 20 {
		t.Fatalf("in-place mutation should be visible, got %d", *v2)
	}

	if !Remove(w, e, k) {
		t.Fatalf("remove should report true")
	}
	if Has(w, e, k) {
		t.Fatalf("component should be gone after remove")
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	k := component.NewKind[int]()
	e := w.CreateEntity()

	if err := Add(w, e, k, nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	w.DestroyEntity(e)
	if err := Add(w, e, k, intPtr(1)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestQueryIntersection(t *testing.T) {
	w := NewWorld()
	ka := component.NewKind[int]()
	kb := component.NewKind[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	s := "x"
	if err := Add(w, e1, ka, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, ka, intPtr(2)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, kb, &s); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e3, kb, &s); err != nil {
		t.Fatal(err)
	}

	got := w.Query(ka, kb)
	if len(got) != 1 || got[0] != e2 {
		t.Fatalf("expected only e2, got %v", got)
	}
}

func TestQueryIgnoresDeadEntities(t *testing.T) {
	w := NewWorld()
	k := component.NewKind[int]()
	e := w.CreateEntity()
	if err := Add(w, e, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if !w.DestroyEntity(e) {
		t.Fatal("destroy failed")
	}
	if got := w.Query(k); len(got) != 0 {
		t.Fatalf("expected no entities after destroy, got %v", got)
	}
}

func TestForEachSkipsMissing(t *testing.T) {
	w := NewWorld()
	k := component.NewKind[int]()

	e1 := w.CreateEntity()
	_ = w.CreateEntity() // no component
	e3 := w.CreateEntity()

	if err := Add(w, e1, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e3, k, intPtr(3)); err != nil {
		t.Fatal(err)
	}

	seen := map[Entity]int{}
	ForEach(w, k, func(e Entity, v *int) { seen[e] = *v })
	if len(seen) != 2 || seen[e1] != 1 || seen[e3] != 3 {
		t.Fatalf("unexpected ForEach result: %v", seen)
	}
}

func TestForEachAllowsDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	k := component.NewKind[int]()
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		if err := Add(w, e, k, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}
	count := 0
	ForEach(w, k, func(e Entity, _ *int) {
		count++
		w.DestroyEntity(e)
	})
	if count != 5 {
		t.Fatalf("expected 5 visits, got %d", count)
	}
	if got := w.Query(k); len(got) != 0 {
		t.Fatalf("expected empty world, got %v", got)
	}
}
