package render

import (
	"image"
	"math"

	"github.com/soundbrush/soundbrush/internal/paint"
)

// canvas is a software raster surface. All draw routines blend source-over
// so translucent primitives layer the way the brushes expect.
type canvas struct {
	img *image.RGBA
}

func newCanvas(width, height int) *canvas {
	return &canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (c *canvas) width() int  { return c.img.Rect.Dx() }
func (c *canvas) height() int { return c.img.Rect.Dy() }

// fill floods the whole surface with col, ignoring alpha blending.
func (c *canvas) fill(col paint.Color) {
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = 255
	}
}

// blendPixel draws col at (x, y) with source-over alpha blending.
func (c *canvas) blendPixel(x, y int, col paint.Color) {
	if x < 0 || y < 0 || x >= c.width() || y >= c.height() {
		return
	}
	if col.A == 0 {
		return
	}
	i := c.img.PixOffset(x, y)
	pix := c.img.Pix
	if col.A == 255 {
		pix[i] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = 255
		return
	}
	a := uint32(col.A)
	ia := 255 - a
	pix[i] = uint8((uint32(col.R)*a + uint32(pix[i])*ia) / 255)
	pix[i+1] = uint8((uint32(col.G)*a + uint32(pix[i+1])*ia) / 255)
	pix[i+2] = uint8((uint32(col.B)*a + uint32(pix[i+2])*ia) / 255)
	pix[i+3] = uint8(255 - (ia*(255-uint32(pix[i+3])))/255)
}

// drawLine rasterizes a segment with Bresenham's algorithm. Endpoints are
// clipped to the surface first so the walk never covers more than the
// visible extent, whatever the zoom.
func (c *canvas) drawLine(x0, y0, x1, y1 int, col paint.Color) {
	x0, y0, x1, y1, ok := c.clipSegment(x0, y0, x1, y1)
	if !ok {
		return
	}
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.blendPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// strokeRect outlines the rectangle spanning (x0, y0)-(x1, y1) inclusive.
func (c *canvas) strokeRect(x0, y0, x1, y1 int, col paint.Color) {
	x0, x1 = ordered(x0, x1)
	y0, y1 = ordered(y0, y1)
	c.drawLine(x0, y0, x1, y0, col)
	if y1 != y0 {
		c.drawLine(x0, y1, x1, y1, col)
	}
	if y1 > y0+1 {
		c.drawLine(x0, y0+1, x0, y1-1, col)
		if x1 != x0 {
			c.drawLine(x1, y0+1, x1, y1-1, col)
		}
	}
}

// clipSegment shortens a segment to the surface rectangle (Liang-Barsky).
// Segments that never touch the surface report ok == false. Fully visible
// segments pass through untouched, so their raster is unchanged.
func (c *canvas) clipSegment(x0, y0, x1, y1 int) (int, int, int, int, bool) {
	w, h := c.width(), c.height()
	if x0 >= 0 && y0 >= 0 && x1 >= 0 && y1 >= 0 &&
		x0 < w && x1 < w && y0 < h && y1 < h {
		return x0, y0, x1, y1, true
	}
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	fx := float64(x0)
	fy := float64(y0)
	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}
	if !clip(-dx, fx) || !clip(dx, float64(w-1)-fx) ||
		!clip(-dy, fy) || !clip(dy, float64(h-1)-fy) {
		return 0, 0, 0, 0, false
	}
	nx0 := x0 + int(math.Round(t0*dx))
	ny0 := y0 + int(math.Round(t0*dy))
	nx1 := x0 + int(math.Round(t1*dx))
	ny1 := y0 + int(math.Round(t1*dy))
	return nx0, ny0, nx1, ny1, true
}

// clipSpan clamps the inclusive range [lo, hi] to [0, max). The third
// return is false when the range misses the surface entirely.
func clipSpan(lo, hi, max int) (int, int, bool) {
	if hi < 0 || lo >= max {
		return 0, 0, false
	}
	if lo < 0 {
		lo = 0
	}
	if hi > max-1 {
		hi = max - 1
	}
	return lo, hi, true
}

// fillRect fills the rectangle spanning (x0, y0)-(x1, y1) inclusive,
// clipped to the surface.
func (c *canvas) fillRect(x0, y0, x1, y1 int, col paint.Color) {
	x0, x1 = ordered(x0, x1)
	y0, y1 = ordered(y0, y1)
	var ok bool
	if x0, x1, ok = clipSpan(x0, x1, c.width()); !ok {
		return
	}
	if y0, y1, ok = clipSpan(y0, y1, c.height()); !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.blendPixel(x, y, col)
		}
	}
}

// fillEllipse fills the axis-aligned ellipse inscribed in the rectangle
// (x0, y0)-(x1, y1), scanline by scanline.
func (c *canvas) fillEllipse(x0, y0, x1, y1 int, col paint.Color) {
	x0, x1 = ordered(x0, x1)
	y0, y1 = ordered(y0, y1)
	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx < 0.5 || ry < 0.5 {
		c.blendPixel(int(cx), int(cy), col)
		return
	}
	yLo, yHi, ok := clipSpan(y0, y1, c.height())
	if !ok || x1 < 0 || x0 >= c.width() {
		return
	}
	for y := yLo; y <= yHi; y++ {
		t := (float64(y) - cy) / ry
		d := 1 - t*t
		if d < 0 {
			continue
		}
		half := rx * math.Sqrt(d)
		xLo := int(math.Ceil(cx - half))
		xHi := int(math.Floor(cx + half))
		if xLo, xHi, ok = clipSpan(xLo, xHi, c.width()); !ok {
			continue
		}
		for x := xLo; x <= xHi; x++ {
			c.blendPixel(x, y, col)
		}
	}
}

// strokeEllipse outlines the same ellipse by sampling the parametric curve
// at sub-pixel steps.
func (c *canvas) strokeEllipse(x0, y0, x1, y1 int, col paint.Color) {
	x0, x1 = ordered(x0, x1)
	y0, y1 = ordered(y0, y1)
	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx < 0.5 || ry < 0.5 {
		c.blendPixel(int(cx), int(cy), col)
		return
	}
	if x1 < 0 || y1 < 0 || x0 >= c.width() || y0 >= c.height() {
		return
	}
	// A curve much larger than the surface would need millions of
	// parametric steps for a handful of visible pixels. Plot the visible
	// part from the row and column extents instead.
	if int(rx+ry) > 4*(c.width()+c.height()) {
		c.strokeEllipseSpans(cx, cy, rx, ry, col)
		return
	}
	steps := int(4 * (rx + ry))
	if steps < 8 {
		steps = 8
	}
	lastX, lastY := math.MinInt32, math.MinInt32
	for i := 0; i <= steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := int(math.Round(cx + rx*math.Cos(theta)))
		y := int(math.Round(cy + ry*math.Sin(theta)))
		if x == lastX && y == lastY {
			continue
		}
		c.blendPixel(x, y, col)
		lastX, lastY = x, y
	}
}

// strokeEllipseSpans outlines an oversized ellipse by solving for the
// curve's x extremes on each visible row and its y extremes on each
// visible column. blendPixel discards the off-surface solutions.
func (c *canvas) strokeEllipseSpans(cx, cy, rx, ry float64, col paint.Color) {
	for y := 0; y < c.height(); y++ {
		t := (float64(y) - cy) / ry
		d := 1 - t*t
		if d < 0 {
			continue
		}
		half := rx * math.Sqrt(d)
		c.blendPixel(int(math.Round(cx-half)), y, col)
		c.blendPixel(int(math.Round(cx+half)), y, col)
	}
	for x := 0; x < c.width(); x++ {
		t := (float64(x) - cx) / rx
		d := 1 - t*t
		if d < 0 {
			continue
		}
		half := ry * math.Sqrt(d)
		c.blendPixel(x, int(math.Round(cy-half)), col)
		c.blendPixel(x, int(math.Round(cy+half)), col)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
