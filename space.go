package rowan

import (
	"sort"

	"github.com/solarlune/resolv"
)

// spaceTag marks every pickable object so probe checks skip unrelated
// objects a caller may have added to a shared space.
const spaceTag = "rowan"

type spaceEntry struct {
	id    ID
	layer Layer
}

// SpaceIndex is an Index backed by a resolv cell space. Entries are
// axis-aligned boxes; Query moves a 1x1 probe to the pointer, gathers cell
// candidates, and keeps those that actually contain the point. Candidates
// are ordered nearest first by squared distance from the pointer to the box
// center, ties broken by lower ID. The ordering is an explicit policy of
// this backend, not whatever the cell walk happens to return.
//
// Use SpaceIndex over ShapeIndex when instances are numerous or move every
// frame: the cell broadphase keeps Query cost independent of scene size.
type SpaceIndex struct {
	space   *resolv.Space
	probe   *resolv.Object
	objects map[ID]*resolv.Object
	nextID  ID
	cands   []spaceCandidate
	buf     []ID
}

type spaceCandidate struct {
	id    ID
	dist2 float64
}

// NewSpaceIndex creates a SpaceIndex covering a world of the given size in
// pixels, partitioned into cells of the given size. Typical cell sizes are
// 8-32 pixels.
func NewSpaceIndex(width, height, cellWidth, cellHeight int) *SpaceIndex {
	space := resolv.NewSpace(width, height, cellWidth, cellHeight)
	probe := resolv.NewObject(0, 0, 1, 1)
	space.Add(probe)
	return &SpaceIndex{
		space:   space,
		probe:   probe,
		objects: make(map[ID]*resolv.Object),
	}
}

// Add registers an axis-aligned box on the given layer and returns the
// allocated instance ID.
func (ix *SpaceIndex) Add(x, y, w, h float64, layer Layer) ID {
	ix.nextID++
	obj := resolv.NewObject(x, y, w, h, spaceTag)
	obj.Data = spaceEntry{id: ix.nextID, layer: layer}
	ix.space.Add(obj)
	ix.objects[ix.nextID] = obj
	return ix.nextID
}

// Remove deletes an entry from the space. Removing an unknown ID is a no-op.
func (ix *SpaceIndex) Remove(id ID) {
	obj, ok := ix.objects[id]
	if !ok {
		return
	}
	ix.space.Remove(obj)
	delete(ix.objects, id)
}

// MoveTo repositions an entry's top-left corner in world coordinates.
func (ix *SpaceIndex) MoveTo(id ID, x, y float64) {
	obj, ok := ix.objects[id]
	if !ok {
		return
	}
	obj.X = x
	obj.Y = y
	obj.Update()
}

// Bounds returns an entry's current box, or ok=false for an unknown ID.
func (ix *SpaceIndex) Bounds(id ID) (x, y, w, h float64, ok bool) {
	obj, found := ix.objects[id]
	if !found {
		return 0, 0, 0, 0, false
	}
	return obj.X, obj.Y, obj.W, obj.H, true
}

// Query returns every entry containing (x, y) whose layer intersects mask,
// nearest center first. The returned slice is reused across calls and MUST
// NOT be retained.
func (ix *SpaceIndex) Query(x, y float64, mask Layer) []ID {
	ix.probe.X = x - 0.5
	ix.probe.Y = y - 0.5
	ix.probe.Update()

	ix.cands = ix.cands[:0]
	if check := ix.probe.Check(0, 0, spaceTag); check != nil {
		for _, obj := range check.Objects {
			// Cell overlap is a broadphase; confirm precise containment.
			if x < obj.X || x > obj.X+obj.W || y < obj.Y || y > obj.Y+obj.H {
				continue
			}
			entry, ok := obj.Data.(spaceEntry)
			if !ok || entry.layer&mask == 0 {
				continue
			}
			cx := obj.X + obj.W/2
			cy := obj.Y + obj.H/2
			dx := x - cx
			dy := y - cy
			ix.cands = append(ix.cands, spaceCandidate{id: entry.id, dist2: dx*dx + dy*dy})
		}
	}
	orderCandidates(ix.cands)

	ix.buf = ix.buf[:0]
	for _, c := range ix.cands {
		ix.buf = append(ix.buf, c.id)
	}
	return ix.buf
}

// orderCandidates sorts nearest first, ties broken by lower ID so overlap
// resolution never depends on cell iteration order.
func orderCandidates(cands []spaceCandidate) {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist2 != cands[j].dist2 {
			return cands[i].dist2 < cands[j].dist2
		}
		return cands[i].id < cands[j].id
	})
}
