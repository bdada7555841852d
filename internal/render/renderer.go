package render

import (
	"image"

	"github.com/soundbrush/soundbrush/internal/paint"
)

// Renderer draws a render list onto an in-memory RGBA frame. Successive
// Paint calls only draw objects appended since the previous call; any
// change to the viewport or the frame size forces a full redraw first.
type Renderer struct {
	View           Viewport
	Background     paint.Color
	FillResolution int

	canvas    *canvas
	lastLen   int
	renderAll bool
}

func NewRenderer(width, height int) *Renderer {
	r := &Renderer{
		View:           *NewViewport(width, height),
		Background:     paint.RGB(255, 255, 255, 255),
		FillResolution: DefaultFillResolution,
		canvas:         newCanvas(width, height),
		renderAll:      true,
	}
	return r
}

// Image exposes the current frame. The pixels are valid until the next
// Paint, Repaint or Resize call.
func (r *Renderer) Image() *image.RGBA { return r.canvas.img }

// Invalidate forces the next Paint to redraw every object.
func (r *Renderer) Invalidate() { r.renderAll = true }

// Resize changes the frame dimensions and invalidates the frame.
func (r *Renderer) Resize(width, height int) {
	if width == r.canvas.width() && height == r.canvas.height() {
		return
	}
	r.canvas = newCanvas(width, height)
	r.View.Width = width
	r.View.Height = height
	r.renderAll = true
}

// Paint draws rl onto the frame. A full pass clears the background and
// draws every object; an incremental pass draws only the objects appended
// since the last pass. A one pixel border is drawn around the frame either
// way.
func (r *Renderer) Paint(rl *paint.RenderList) {
	start := 0
	if r.renderAll {
		r.canvas.fill(r.Background)
		r.renderAll = false
	} else {
		start = r.lastLen
	}
	n := rl.Len()
	for i := start; i < n; i++ {
		obj, ok := rl.Get(i)
		if !ok {
			break
		}
		r.drawObject(obj)
	}
	r.drawBorder()
	r.lastLen = n
}

// Repaint forces a full redraw of rl.
func (r *Renderer) Repaint(rl *paint.RenderList) {
	r.renderAll = true
	r.Paint(rl)
}

func (r *Renderer) drawBorder() {
	black := paint.RGB(0, 0, 0, 255)
	r.canvas.strokeRect(0, 0, r.canvas.width()-1, r.canvas.height()-1, black)
}

// screenPt converts an object-space point to integer pixel coordinates.
func (r *Renderer) screenPt(x, y float64) (int, int) {
	px, py := r.View.ToScreen(x, y)
	return int(px), int(py)
}

func (r *Renderer) drawObject(o paint.Object) {
	switch o.Kind {
	case paint.KindPoint:
		x, y := r.screenPt(o.X1, o.Y1)
		r.canvas.blendPixel(x, y, o.Color)
	case paint.KindLine:
		x0, y0 := r.screenPt(o.X1, o.Y1)
		x1, y1 := r.screenPt(o.X2, o.Y2)
		r.canvas.drawLine(x0, y0, x1, y1, o.Color)
	case paint.KindCircle:
		x0, y0 := r.screenPt(o.X1-o.R, o.Y1+o.R)
		x1, y1 := r.screenPt(o.X1+o.R, o.Y1-o.R)
		if o.Fill {
			r.canvas.fillEllipse(x0, y0, x1, y1, o.Color)
		} else {
			r.canvas.strokeEllipse(x0, y0, x1, y1, o.Color)
		}
	case paint.KindRect:
		r.drawRect(o.X1, o.Y1, o.X2, o.Y2, o.Fill, o.Color)
	case paint.KindTriangle:
		r.drawTriangle(o)
	}
}

func (r *Renderer) drawRect(ox0, oy0, ox1, oy1 float64, fill bool, col paint.Color) {
	x0, y0 := r.screenPt(ox0, oy0)
	x1, y1 := r.screenPt(ox1, oy1)
	if fill {
		r.canvas.fillRect(x0, y0, x1, y1, col)
	} else {
		r.canvas.strokeRect(x0, y0, x1, y1, col)
	}
}

func (r *Renderer) drawTriangle(o paint.Object) {
	if o.Fill {
		riemannFill(func(x0, y0, x1, y1 float64) {
			r.drawRect(x0, y0, x1, y1, true, o.Color)
		}, o, r.FillResolution)
		return
	}
	ax, ay := r.screenPt(o.X1, o.Y1)
	bx, by := r.screenPt(o.X2, o.Y2)
	cx, cy := r.screenPt(o.X3, o.Y3)
	r.canvas.drawLine(ax, ay, bx, by, o.Color)
	r.canvas.drawLine(bx, by, cx, cy, o.Color)
	r.canvas.drawLine(cx, cy, ax, ay, o.Color)
}

// Snapshot renders rl into a fresh frame of the given size using view,
// independent of any incremental state.
func Snapshot(rl *paint.RenderList, view Viewport, width, height int) *image.RGBA {
	r := NewRenderer(width, height)
	r.View = view
	r.View.Width = width
	r.View.Height = height
	r.Repaint(rl)
	return r.Image()
}
