// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package front

import "github.com/golang/geo/r3"

// Status is the lifecycle state of a front edge.
type Status uint8

const (
	// Active edges are awaiting pivoting.
	Active Status = iota
	// Boundary edges failed pivoting and will not be retried.
	Boundary
	// Frozen edges are glued to their reverse, forming an interior edge.
	Frozen
)

// Edge is a directed front edge (A, B) together with the ball that produced
// it: Opposite is the third vertex of the triangle on whose boundary the
// edge lies, and Center is that ball's center.
type Edge struct {
	A, B     PointID
	Opposite PointID
	Center   r3.Vector
	Status   Status
}

type edgeKey struct {
	lo, hi PointID
}

func keyOf(a, b PointID) edgeKey {
	if a < b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

// Front is a FIFO-ordered collection of front edges with an unordered-key
// index for deduplication and gluing, per the edge-front design in the
// reconstruction core.
type Front struct {
	reg   *Registry
	queue []*Edge
	head  int
	byKey map[edgeKey]*Edge
}

// New creates an empty front backed by reg for vertex-state bookkeeping.
func New(reg *Registry) *Front {
	return &Front{
		reg:   reg,
		byKey: make(map[edgeKey]*Edge),
	}
}

// Offer inserts e into the front, or glues it with its already-present
// reverse, or drops it as a duplicate of an already-present edge with the
// same direction. e.Status is set by Offer when e is inserted or glued; a
// dropped duplicate is left untouched. Callers must not set it first.
func (f *Front) Offer(e *Edge) {
	k := keyOf(e.A, e.B)
	if existing, ok := f.byKey[k]; ok {
		if existing.A == e.B && existing.B == e.A {
			if existing.Status == Active {
				f.reg.noteResolved(existing.A)
				f.reg.noteResolved(existing.B)
			}
			existing.Status = Frozen
			e.Status = Frozen
			delete(f.byKey, k)
			return
		}
		// Same direction already present: duplicate emission, drop silently.
		return
	}
	e.Status = Active
	f.byKey[k] = e
	f.queue = append(f.queue, e)
	f.reg.noteActive(e.A)
	f.reg.noteActive(e.B)
}

// PopActive removes and returns the oldest Active edge, or (nil, false) if
// none remain.
func (f *Front) PopActive() (*Edge, bool) {
	for f.head < len(f.queue) {
		e := f.queue[f.head]
		f.head++
		if e.Status == Active {
			return e, true
		}
	}
	return nil, false
}

// MarkBoundary records that pivoting failed on e. The key mapping is kept so
// that a later Offer of e's reverse can still glue against it.
func (f *Front) MarkBoundary(e *Edge) {
	if e.Status == Active {
		f.reg.noteResolved(e.A)
		f.reg.noteResolved(e.B)
	}
	e.Status = Boundary
}

// Freeze records that e has been consumed directly by a successful pivot
// (the new triangle reuses e's endpoints in reversed form). Unlike
// MarkBoundary, the key mapping is removed: no further edge with this key
// can legitimately appear.
func (f *Front) Freeze(e *Edge) {
	if e.Status == Active {
		f.reg.noteResolved(e.A)
		f.reg.noteResolved(e.B)
	}
	e.Status = Frozen
	delete(f.byKey, keyOf(e.A, e.B))
}
