package rowan

import "sort"

// --- Spatial query contract ---

// Index is the spatial query backend the dispatcher resolves targets against.
// Query returns the IDs of every eligible instance under the pointer, best
// candidate first, in a deterministic order. Query is a pure read: it may be
// called any number of times per frame without side effects.
//
// Two backends ship with rowan: ShapeIndex (local-space hit shapes, ordered
// by Z) and SpaceIndex (resolv cell space, ordered by center distance).
type Index interface {
	Query(x, y float64, mask Layer) []ID
}

// --- Built-in HitShape types ---

// HitShape tests pointer containment in an instance's local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- ShapeIndex ---

type shapeEntry struct {
	id    ID
	layer Layer
	shape HitShape
	x, y  float64
	z     int
	seq   int // registration order, breaks Z ties
}

// ShapeIndex is an Index backed by a flat list of hit shapes. Candidates are
// ordered topmost first: higher Z wins, and among equal Z the most recently
// added entry wins. Suitable for scenes with up to a few hundred instances;
// Query is a linear scan.
//
// ShapeIndex is not goroutine-safe. Like the rest of rowan it assumes a
// single-threaded frame loop.
type ShapeIndex struct {
	entries []shapeEntry
	nextID  ID
	nextSeq int
	buf     []ID
	hits    []shapeEntry
}

// NewShapeIndex creates an empty ShapeIndex.
func NewShapeIndex() *ShapeIndex {
	return &ShapeIndex{}
}

// Add registers a hit shape at the given world position on the given layer
// with Z 0, and returns the allocated instance ID.
func (ix *ShapeIndex) Add(shape HitShape, x, y float64, layer Layer) ID {
	ix.nextID++
	ix.nextSeq++
	ix.entries = append(ix.entries, shapeEntry{
		id:    ix.nextID,
		layer: layer,
		shape: shape,
		x:     x,
		y:     y,
		seq:   ix.nextSeq,
	})
	return ix.nextID
}

// Remove deletes an entry. Removing an unknown ID is a no-op.
func (ix *ShapeIndex) Remove(id ID) {
	for i := range ix.entries {
		if ix.entries[i].id == id {
			ix.entries = append(ix.entries[:i], ix.entries[i+1:]...)
			return
		}
	}
}

// MoveTo repositions an entry's shape origin in world coordinates.
func (ix *ShapeIndex) MoveTo(id ID, x, y float64) {
	for i := range ix.entries {
		if ix.entries[i].id == id {
			ix.entries[i].x = x
			ix.entries[i].y = y
			return
		}
	}
}

// SetZ changes an entry's stacking order. Higher Z is tested first.
func (ix *ShapeIndex) SetZ(id ID, z int) {
	for i := range ix.entries {
		if ix.entries[i].id == id {
			ix.entries[i].z = z
			return
		}
	}
}

// Query returns every entry containing (x, y) whose layer intersects mask,
// topmost first. The returned slice is reused across calls and MUST NOT be
// retained.
func (ix *ShapeIndex) Query(x, y float64, mask Layer) []ID {
	ix.hits = ix.hits[:0]
	for _, e := range ix.entries {
		if e.layer&mask == 0 {
			continue
		}
		if e.shape.Contains(x-e.x, y-e.y) {
			ix.hits = append(ix.hits, e)
		}
	}

	// Topmost first: higher Z, then later registration.
	sort.SliceStable(ix.hits, func(i, j int) bool {
		if ix.hits[i].z != ix.hits[j].z {
			return ix.hits[i].z > ix.hits[j].z
		}
		return ix.hits[i].seq > ix.hits[j].seq
	})

	ix.buf = ix.buf[:0]
	for _, e := range ix.hits {
		ix.buf = append(ix.buf, e.id)
	}
	return ix.buf
}
