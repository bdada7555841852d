package render

import (
	"math"

	"github.com/soundbrush/soundbrush/internal/paint"
)

// DefaultFillResolution is the number of vertical slabs used to fill a
// triangle.
const DefaultFillResolution = 250

// riemannFill fills a triangle as a left-to-right sum of thin filled
// rectangles. The widest x-extent among the three edges picks which vertex
// plays the middle; each slab spans from the long edge to whichever short
// edge lies under the slab's starting x.
func riemannFill(emit func(x0, y0, x1, y1 float64), o paint.Object, resolution int) {
	if resolution <= 0 {
		resolution = DefaultFillResolution
	}
	xs := [3]float64{o.X1, o.X2, o.X3}
	ys := [3]float64{o.Y1, o.Y2, o.Y3}

	span := math.Abs(xs[0] - xs[2])
	midX, midY := xs[1], ys[1]
	var begX, begY, endX, endY float64
	if xs[0] > xs[2] {
		begX, begY = xs[2], ys[2]
		endX, endY = xs[0], ys[0]
	} else {
		begX, begY = xs[0], ys[0]
		endX, endY = xs[2], ys[2]
	}
	for i := 0; i < 2; i++ {
		d := math.Abs(xs[i] - xs[i+1])
		if d <= span {
			continue
		}
		span = d
		if i == 0 {
			midX, midY = xs[2], ys[2]
			if xs[0] > xs[1] {
				begX, begY = xs[1], ys[1]
				endX, endY = xs[0], ys[0]
			} else {
				begX, begY = xs[0], ys[0]
				endX, endY = xs[1], ys[1]
			}
		} else {
			midX, midY = xs[0], ys[0]
			if xs[1] > xs[2] {
				begX, begY = xs[2], ys[2]
				endX, endY = xs[1], ys[1]
			} else {
				begX, begY = xs[1], ys[1]
				endX, endY = xs[2], ys[2]
			}
		}
	}

	width := span / float64(resolution)
	for i := 0; i < resolution; i++ {
		startX := begX + float64(i)*width
		stopX := begX + float64(i+1)*width
		var startY, stopY float64
		switch {
		case endX == midX:
			stopY = (midY-begY)/(midX-begX)*(stopX-begX) + begY
			startY = (endY-begY)/(endX-begX)*(startX-begX) + begY
		case begX == midX:
			stopY = (endY-begY)/(endX-begX)*(stopX-begX) + begY
			startY = (endY-midY)/(endX-midX)*(startX-midX) + midY
		default:
			stopY = (endY-begY)/(endX-begX)*(stopX-begX) + begY
			if startX >= midX {
				startY = (endY-midY)/(endX-midX)*(startX-midX) + midY
			} else {
				startY = (midY-begY)/(midX-begX)*(startX-begX) + begY
			}
		}
		emit(startX, startY, stopX, stopY)
	}
}
