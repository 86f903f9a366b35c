package rowan

import "testing"

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"inside", 60, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitPolygonContains(t *testing.T) {
	// Square polygon: (0,0), (100,0), (100,100), (0,100)
	p := HitPolygon{Points: []Vec2{
		{0, 0}, {100, 0}, {100, 100}, {0, 100},
	}}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 50, true},
		{"on edge", 0, 50, true},
		{"corner", 0, 0, true},
		{"outside", -1, 50, false},
		{"outside far", 200, 200, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitPolygon.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	// Reversed (clockwise) winding must behave identically.
	rev := HitPolygon{Points: []Vec2{
		{0, 100}, {100, 100}, {100, 0}, {0, 0},
	}}
	if !rev.Contains(50, 50) {
		t.Error("reversed winding polygon should still contain center point")
	}

	// Degenerate (< 3 points)
	degen := HitPolygon{Points: []Vec2{{0, 0}, {1, 1}}}
	if degen.Contains(0, 0) {
		t.Error("degenerate polygon should not contain anything")
	}
}

// --- ShapeIndex tests ---

func TestShapeIndexQueryMiss(t *testing.T) {
	ix := NewShapeIndex()
	ix.Add(HitRect{Width: 100, Height: 100}, 0, 0, 1)

	if got := ix.Query(200, 200, LayerAll); len(got) != 0 {
		t.Errorf("expected no candidates, got %v", got)
	}
}

func TestShapeIndexQueryHit(t *testing.T) {
	ix := NewShapeIndex()
	a := ix.Add(HitRect{Width: 100, Height: 100}, 0, 0, 1)
	b := ix.Add(HitRect{Width: 100, Height: 100}, 200, 0, 1)

	got := ix.Query(50, 50, LayerAll)
	if len(got) != 1 || got[0] != a {
		t.Errorf("expected [%d], got %v", a, got)
	}

	got = ix.Query(250, 50, LayerAll)
	if len(got) != 1 || got[0] != b {
		t.Errorf("expected [%d], got %v", b, got)
	}
}

func TestShapeIndexQueryLocalCoordinates(t *testing.T) {
	ix := NewShapeIndex()
	// Shape is local; the entry position offsets it into world space.
	id := ix.Add(HitCircle{CenterX: 25, CenterY: 25, Radius: 25}, 300, 400, 1)

	if got := ix.Query(325, 425, LayerAll); len(got) != 1 || got[0] != id {
		t.Errorf("expected hit at world center, got %v", got)
	}
	if got := ix.Query(25, 25, LayerAll); len(got) != 0 {
		t.Errorf("expected miss at local origin, got %v", got)
	}
}

func TestShapeIndexLayerMask(t *testing.T) {
	ix := NewShapeIndex()
	a := ix.Add(HitRect{Width: 100, Height: 100}, 0, 0, 0b01)
	b := ix.Add(HitRect{Width: 100, Height: 100}, 0, 0, 0b10)

	got := ix.Query(50, 50, 0b01)
	if len(got) != 1 || got[0] != a {
		t.Errorf("mask 0b01: expected [%d], got %v", a, got)
	}

	got = ix.Query(50, 50, 0b10)
	if len(got) != 1 || got[0] != b {
		t.Errorf("mask 0b10: expected [%d], got %v", b, got)
	}

	if got = ix.Query(50, 50, LayerAll); len(got) != 2 {
		t.Errorf("LayerAll: expected 2 candidates, got %v", got)
	}
}

func TestShapeIndexTieBreakLaterRegistrationWins(t *testing.T) {
	ix := NewShapeIndex()
	ix.Add(HitRect{Width: 100, Height: 100}, 0, 0, 1)
	b := ix.Add(HitRect{Width: 100, Height: 100}, 0, 0, 1)

	got := ix.Query(50, 50, LayerAll)
	if len(got) != 2 || got[0] != b {
		t.Errorf("expected later entry first, got %v", got)
	}
}

func TestShapeIndexHigherZWins(t *testing.T) {
	ix := NewShapeIndex()
	a := ix.Add(HitRect{Width: 100, Height: 100}, 0, 0, 1)
	ix.Add(HitRect{Width: 100, Height: 100}, 0, 0, 1)
	ix.SetZ(a, 10)

	got := ix.Query(50, 50, LayerAll)
	if len(got) != 2 || got[0] != a {
		t.Errorf("expected higher-Z entry first despite earlier registration, got %v", got)
	}
}

func TestShapeIndexMoveTo(t *testing.T) {
	ix := NewShapeIndex()
	id := ix.Add(HitRect{Width: 100, Height: 100}, 0, 0, 1)

	ix.MoveTo(id, 500, 500)
	if got := ix.Query(50, 50, LayerAll); len(got) != 0 {
		t.Errorf("expected miss at old position, got %v", got)
	}
	if got := ix.Query(550, 550, LayerAll); len(got) != 1 || got[0] != id {
		t.Errorf("expected hit at new position, got %v", got)
	}
}

func TestShapeIndexRemove(t *testing.T) {
	ix := NewShapeIndex()
	a := ix.Add(HitRect{Width: 100, Height: 100}, 0, 0, 1)
	b := ix.Add(HitRect{Width: 100, Height: 100}, 0, 0, 1)

	ix.Remove(b)
	got := ix.Query(50, 50, LayerAll)
	if len(got) != 1 || got[0] != a {
		t.Errorf("expected [%d] after remove, got %v", a, got)
	}

	ix.Remove(ID(999)) // unknown ID is a no-op
}

func TestShapeIndexDeterministicOrder(t *testing.T) {
	ix := NewShapeIndex()
	ids := make([]ID, 5)
	for i := range ids {
		ids[i] = ix.Add(HitRect{Width: 100, Height: 100}, 0, 0, 1)
	}

	first := append([]ID(nil), ix.Query(50, 50, LayerAll)...)
	for i := 0; i < 10; i++ {
		again := ix.Query(50, 50, LayerAll)
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("query %d returned different order: %v vs %v", i, again, first)
			}
		}
	}
	// Topmost first means reverse registration order when Z is equal.
	for i, id := range first {
		if id != ids[len(ids)-1-i] {
			t.Fatalf("expected reverse registration order, got %v", first)
		}
	}
}

// --- Benchmarks ---

func BenchmarkShapeIndexQuery_1000Entries(b *testing.B) {
	ix := NewShapeIndex()
	for i := 0; i < 1000; i++ {
		ix.Add(HitRect{Width: 10, Height: 10}, float64(i%100)*12, float64(i/100)*12, 1)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ix.Query(500, 50, LayerAll)
	}
}
