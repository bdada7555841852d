package render

import (
	"math"
	"testing"

	"github.com/soundbrush/soundbrush/internal/paint"
)

// slabArea sums the areas of the filled slabs emitted for o.
func slabArea(o paint.Object, resolution int) float64 {
	total := 0.0
	riemannFill(func(x0, y0, x1, y1 float64) {
		total += math.Abs(x1-x0) * math.Abs(y1-y0)
	}, o, resolution)
	return total
}

func triangleArea(o paint.Object) float64 {
	return math.Abs((o.X2-o.X1)*(o.Y3-o.Y1)-(o.X3-o.X1)*(o.Y2-o.Y1)) / 2
}

func TestRiemannFillSlabCount(t *testing.T) {
	o := paint.MakeTriangle(0, 0, 0.5, 1, 1, 0, true, paint.RGB(0, 0, 0, 255))
	count := 0
	riemannFill(func(x0, y0, x1, y1 float64) { count++ }, o, DefaultFillResolution)
	if count != DefaultFillResolution {
		t.Fatalf("slab count = %d, want %d", count, DefaultFillResolution)
	}
}

func TestRiemannFillAreaConverges(t *testing.T) {
	cases := []paint.Object{
		paint.MakeTriangle(0, 0, 0.5, 1, 1, 0, true, paint.RGB(0, 0, 0, 255)),
		paint.MakeTriangle(-0.8, -0.3, 0.1, 0.9, 0.7, -0.5, true, paint.RGB(0, 0, 0, 255)),
		paint.MakeTriangle(0, 0, 1, 0.2, 0.9, 1, true, paint.RGB(0, 0, 0, 255)),
	}
	for _, o := range cases {
		want := triangleArea(o)
		coarse := math.Abs(slabArea(o, 50) - want)
		fine := math.Abs(slabArea(o, 2000) - want)
		if fine > coarse {
			t.Fatalf("slab area error grew with resolution: %v at 50, %v at 2000", coarse, fine)
		}
		// At the default 250 slabs the area is within 2% of exact.
		got := slabArea(o, DefaultFillResolution)
		if math.Abs(got-want) > 0.02*want {
			t.Fatalf("slab area at %d slabs = %v, want within 2%% of %v",
				DefaultFillResolution, got, want)
		}
	}
}

func TestRiemannFillSpansWidestExtent(t *testing.T) {
	// The slabs cover the full x extent of the triangle regardless of
	// which vertex sits in the middle.
	o := paint.MakeTriangle(0.2, 0.5, -0.9, -0.1, 0.6, 0.3, true, paint.RGB(0, 0, 0, 255))
	minX, maxX := math.Inf(1), math.Inf(-1)
	riemannFill(func(x0, y0, x1, y1 float64) {
		minX = math.Min(minX, math.Min(x0, x1))
		maxX = math.Max(maxX, math.Max(x0, x1))
	}, o, DefaultFillResolution)
	if math.Abs(minX-(-0.9)) > 1e-9 || math.Abs(maxX-0.6) > 1e-9 {
		t.Fatalf("slabs span [%v, %v], want [-0.9, 0.6]", minX, maxX)
	}
}
