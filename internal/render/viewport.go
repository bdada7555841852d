package render

// Viewport maps normalized object space onto a pixel surface under pan and
// zoom. The logical window defaults to [-1,1] on both axes, expanded along
// the longer screen axis to preserve aspect ratio.
type Viewport struct {
	CenterX float64
	CenterY float64
	Zoom    float64
	Width   int
	Height  int
}

const (
	minZoom = 1.0
	maxZoom = 1000.0
)

// NewViewport returns a viewport at the origin with zoom 1.
func NewViewport(width, height int) *Viewport {
	return &Viewport{Zoom: 1, Width: width, Height: height}
}

// Window returns the object-space bounds (xmin, xmax, ymin, ymax) currently
// visible: the aspect-expanded unit square scaled by 1/zoom and recentered.
func (v *Viewport) Window() (xmin, xmax, ymin, ymax float64) {
	xext, yext := 1.0, 1.0
	if v.Width >= v.Height {
		xext = float64(v.Width) / float64(v.Height)
	} else {
		yext = float64(v.Height) / float64(v.Width)
	}
	xext /= v.Zoom
	yext /= v.Zoom
	return v.CenterX - xext, v.CenterX + xext, v.CenterY - yext, v.CenterY + yext
}

// ToScreen converts an object-space point to pixel coordinates. Object space
// is mathematical (y up); screen space is top-down, so y flips.
func (v *Viewport) ToScreen(x, y float64) (px, py float64) {
	xmin, xmax, ymin, ymax := v.Window()
	xr := xmax - xmin
	yr := ymax - ymin
	px = (x+v.CenterX)/xr*float64(v.Width) + float64(v.Width)/2
	py = (v.CenterY-y)/yr*float64(v.Height) + float64(v.Height)/2
	return px, py
}

// ToObject inverts ToScreen for the same viewport state.
func (v *Viewport) ToObject(px, py float64) (x, y float64) {
	xmin, xmax, ymin, ymax := v.Window()
	xr := xmax - xmin
	yr := ymax - ymin
	x = (px-float64(v.Width)/2)*xr/float64(v.Width) - v.CenterX
	y = v.CenterY - (py-float64(v.Height)/2)*yr/float64(v.Height)
	return x, y
}

// ZoomBy multiplies the zoom factor by (1 + delta/scale), clamped to
// [1, 1000]. Wheel zoom uses scale 5000; drag zoom uses 100.
func (v *Viewport) ZoomBy(delta, scale float64) {
	v.Zoom *= 1 + delta/scale
	if v.Zoom < minZoom {
		v.Zoom = minZoom
	}
	if v.Zoom > maxZoom {
		v.Zoom = maxZoom
	}
}

// Pan translates the center by a pixel-space delta converted through the
// current window extents.
func (v *Viewport) Pan(dxPix, dyPix float64) {
	xmin, xmax, ymin, ymax := v.Window()
	v.CenterX += dxPix * (xmax - xmin) / float64(v.Width)
	v.CenterY += dyPix * (ymax - ymin) / float64(v.Height)
}

// ResetCenter moves the pan center back to the origin.
func (v *Viewport) ResetCenter() {
	v.CenterX, v.CenterY = 0, 0
}

// ResetZoom restores zoom factor 1.
func (v *Viewport) ResetZoom() {
	v.Zoom = 1
}

// Reset restores both center and zoom.
func (v *Viewport) Reset() {
	v.ResetCenter()
	v.ResetZoom()
}
