package paint

import (
	"math"
	"math/rand"
)

// triangleFractal (algorithm 9, "Triangle Stacker") grows a fractal from a
// small seed triangle. Each frame picks a random open edge, erects a new
// triangle on it whose height follows the spectral weight, and keeps it only
// if it intersects nothing already placed and stays inside the unit square.
// When every edge has been consumed the recorded triangles replay cyclically.
type triangleFractal struct {
	rng    *rand.Rand
	first  bool
	cursor int
	edges  []seg
	tris   []tri
}

func (f *triangleFractal) reset() {
	f.first = true
	f.cursor = 0
	f.edges = nil
	f.tris = nil
}

// fractalHeight maps spectral weight to the new triangle's height above its
// base edge, banded at 10000 and 200000.
func fractalHeight(weight float64) float64 {
	switch {
	case weight >= 200000:
		return 0.08
	case weight <= 10000:
		return 0.02
	}
	return (weight-10000)/190000*0.06 + 0.02
}

func (f *triangleFractal) draw(rl *RenderList, in input) {
	triCol := HSV(in.freqs[0]*10, 255, 130, 255)

	if f.first {
		f.seed(rl, triCol)
		return
	}
	if len(f.edges) > 0 {
		f.grow(rl, triCol, fractalHeight(in.weight))
		return
	}

	// Edges exhausted: replay the stored triangles in order, wrapping.
	t := f.tris[f.cursor]
	appendTri(rl, t, triCol)
	f.cursor++
	if f.cursor > len(f.tris)-1 {
		f.cursor = 0
	}
}

// seed places the initial equilateral triangle centered on the origin.
func (f *triangleFractal) seed(rl *RenderList, col Color) {
	p1 := pt{0, 0.05}
	p2 := pt{math.Sqrt(3) / 40, -1.0 / 40}
	p3 := pt{-math.Sqrt(3) / 40, -1.0 / 40}
	f.edges = append(f.edges, seg{p1, p2}, seg{p2, p3}, seg{p3, p1})
	t := tri{p1, p2, p3}
	f.tris = append(f.tris, t)
	appendTri(rl, t, col)
	f.first = false
}

// grow keeps trying random open edges until a new triangle fits. Every
// attempted edge is retired whether or not it succeeds.
func (f *triangleFractal) grow(rl *RenderList, col Color, height float64) {
	for len(f.edges) > 0 {
		idx := 0
		if len(f.edges) > 1 {
			idx = f.rng.Intn(len(f.edges) - 1)
		}
		edge := f.edges[idx]
		f.edges = append(f.edges[:idx], f.edges[idx+1:]...)

		apex := f.apexFor(edge, height)
		cand := tri{edge.a, edge.b, apex}
		if f.validTriangle(cand) && inUnitBounds(apex) {
			f.edges = append(f.edges, seg{edge.a, apex}, seg{edge.b, apex})
			f.tris = append(f.tris, cand)
			appendTri(rl, cand, col)
			return
		}
	}
}

// apexFor computes the new apex point: the circumcenter of the edge's owning
// triangle pushed through the edge midpoint to the requested height beyond.
func (f *triangleFractal) apexFor(edge seg, height float64) pt {
	mid := midpoint(edge.a, edge.b)
	owner := f.ownerOf(edge)
	l1, l2 := otherEdges(owner)

	n1 := -1 / ((l1.b.y - l1.a.y) / (l1.b.x - l1.a.x))
	m1 := midpoint(l1.a, l1.b)
	n2 := -1 / ((l2.b.y - l2.a.y) / (l2.b.x - l2.a.x))
	m2 := midpoint(l2.a, l2.b)

	// Perpendicular bisector intersection: the circumcenter.
	cx := (-n2*m2.x + m2.y + n1*m1.x - m1.y) / (n1 - n2)
	cy := n1*(cx-m1.x) + m1.y

	dx := mid.x - cx
	dy := mid.y - cy
	dist := math.Hypot(dx, dy)
	ratio := (height + dist) / dist
	return pt{cx + dx*ratio, cy + dy*ratio}
}

// ownerOf finds the recorded triangle containing both edge endpoints.
func (f *triangleFractal) ownerOf(edge seg) tri {
	var owner tri
	for _, t := range f.tris {
		if hasVertex(t, edge.a) && hasVertex(t, edge.b) {
			owner = t
		}
	}
	return owner
}

// otherEdges picks two of the owner's edges for the bisector construction,
// avoiding pairs that would give an infinite or zero normal slope.
func otherEdges(t tri) (seg, seg) {
	switch {
	case t.p1.x == t.p2.x || t.p1.y == t.p2.y:
		return seg{t.p2, t.p3}, seg{t.p3, t.p1}
	case t.p2.x == t.p3.x || t.p2.y == t.p3.y:
		return seg{t.p1, t.p2}, seg{t.p3, t.p1}
	}
	return seg{t.p1, t.p2}, seg{t.p2, t.p3}
}

func hasVertex(t tri, p pt) bool {
	return t.p1 == p || t.p2 == p || t.p3 == p
}

// validTriangle checks the candidate's edges against every placed triangle's
// edges, skipping pairs that share an endpoint.
func (f *triangleFractal) validTriangle(cand tri) bool {
	candEdges := [3]seg{{cand.p1, cand.p2}, {cand.p2, cand.p3}, {cand.p3, cand.p1}}
	for _, t := range f.tris {
		placed := [3]seg{{t.p1, t.p2}, {t.p2, t.p3}, {t.p3, t.p1}}
		for _, ce := range candEdges {
			for _, pe := range placed {
				if ce.a == pe.a || ce.a == pe.b || ce.b == pe.a || ce.b == pe.b {
					continue
				}
				if segmentsIntersect(ce.a, ce.b, pe.a, pe.b) {
					return false
				}
			}
		}
	}
	return true
}

func appendTri(rl *RenderList, t tri, col Color) {
	rl.Append(MakeTriangle(t.p1.x, t.p1.y, t.p2.x, t.p2.y, t.p3.x, t.p3.y, true, col))
}
