package paint

// pt is a point in normalized object space.
type pt struct {
	x, y float64
}

// seg is a line segment between two points.
type seg struct {
	a, b pt
}

// tri is a triangle by its three vertices.
type tri struct {
	p1, p2, p3 pt
}

// ccw reports whether p1, p2, p3 wind counterclockwise.
// Segment intersection test after Bryce Boe (2006).
func ccw(p1, p2, p3 pt) bool {
	return (p3.y-p1.y)*(p2.x-p1.x) > (p2.y-p1.y)*(p3.x-p1.x)
}

// segmentsIntersect reports whether segments ab and cd cross.
func segmentsIntersect(a, b, c, d pt) bool {
	return ccw(a, c, d) != ccw(b, c, d) && ccw(a, b, c) != ccw(a, b, d)
}

// midpoint returns the midpoint of a and b.
func midpoint(a, b pt) pt {
	return pt{(a.x + b.x) / 2, (a.y + b.y) / 2}
}

// inUnitBounds reports whether p lies within [-1, 1] on both axes.
func inUnitBounds(p pt) bool {
	return p.x <= 1 && p.x >= -1 && p.y <= 1 && p.y >= -1
}
