package paint

import "math"

// quadSpiral (algorithm 6, "Colorful Void") tracks a quadrilateral whose
// vertices spiral inward each frame, painting the swept area with filled
// triangles. Every triangle goes into a history buffer; once the leading
// vertex collapses near the center the brush switches to replaying the
// history in four-triangle blocks.
type quadSpiral struct {
	quad    [4]pt
	cursor  int // replay block cursor
	history []tri
}

func (q *quadSpiral) reset() {
	q.quad = [4]pt{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	q.cursor = 0
	q.history = nil
}

// quadBlend maps the spectral weight onto the inward pull: quiet frames pull
// hard (30), loud frames gently (15).
func quadBlend(weight float64) float64 {
	switch {
	case weight >= 200000:
		return 15
	case weight <= 10000:
		return 30
	}
	return (weight-10000)/190000*15 + 15
}

func (q *quadSpiral) draw(rl *RenderList, in input) {
	hue := in.freqs[0] * 10
	triCol := HSV(hue, 255, 130, 255)
	lineCol := HSV(hue, 0, 200, 255)

	if math.Hypot(q.quad[0].x, q.quad[0].y) > 0.05 {
		w := quadBlend(in.weight)
		var next [4]pt
		for i := range q.quad {
			// Each vertex blends toward its predecessor around the quad.
			prev := q.quad[(i+3)%4]
			next[i] = pt{
				x: (w*q.quad[i].x + prev.x) / (w + 1),
				y: (w*q.quad[i].y + prev.y) / (w + 1),
			}
		}

		for i := range q.quad {
			t := tri{q.quad[i], next[i], next[(i+1)%4]}
			rl.Append(MakeTriangle(t.p1.x, t.p1.y, t.p2.x, t.p2.y, t.p3.x, t.p3.y, true, triCol))
			q.history = append(q.history, t)
		}
		for i := range q.quad {
			a, b := q.quad[i], q.quad[(i+1)%4]
			rl.Append(MakeLine(a.x, a.y, b.x, b.y, lineCol))
		}
		q.quad = next
		return
	}

	// Collapsed: replay recorded triangles in blocks of four, wrapping when
	// the cursor runs past the buffer. An empty history here would be a
	// broken reset contract, not a drawable state.
	q.cursor++
	if q.cursor*4 >= len(q.history) {
		q.cursor = 1
	}
	for i := (q.cursor - 1) * 4; i < q.cursor*4; i++ {
		t := q.history[i]
		rl.Append(MakeTriangle(t.p1.x, t.p1.y, t.p2.x, t.p2.y, t.p3.x, t.p3.y, true, triCol))
		rl.Append(MakeLine(t.p1.x, t.p1.y, t.p2.x, t.p2.y, lineCol))
		rl.Append(MakeLine(t.p1.x, t.p1.y, t.p3.x, t.p3.y, lineCol))
	}
}
