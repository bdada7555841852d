package paint

import (
	"math/rand"
	"testing"
)

// testFrames produces a varied but fixed input sequence for brush tests.
func testFrames(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		f := 100 + float64(i*37%1900)
		out[i] = []float64{f, f + 50}
	}
	return out
}

// runBrush feeds frames through algorithm id on a fresh brush and returns
// everything it drew. Every 10th frame is inactive, mirroring live capture.
func runBrush(id, seed int, frames [][]float64) []Object {
	list := NewRenderList()
	b := NewBrush(list, rand.New(rand.NewSource(int64(seed))))
	b.Select(id)
	total := len(frames)
	for i, f := range frames {
		b.Draw(f, i, total, 150000+float64(i)*1000, i%10 != 0)
	}
	out := make([]Object, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		obj, ok := list.Get(i)
		if !ok {
			break
		}
		out = append(out, obj)
	}
	return out
}

func TestAlgorithmNameCoversAllIDs(t *testing.T) {
	for id := 1; id <= AlgorithmCount; id++ {
		if AlgorithmName(id) == "" {
			t.Fatalf("AlgorithmName(%d) = %q, want non-empty", id, AlgorithmName(id))
		}
	}
	if AlgorithmName(0) != "" || AlgorithmName(AlgorithmCount+1) != "" {
		t.Fatalf("out-of-range algorithm ids must have no name")
	}
}

func TestRestrictedChunkSizes(t *testing.T) {
	for id := 1; id <= AlgorithmCount; id++ {
		r := RestrictedChunkSizes(id)
		if id == 6 || id == 9 {
			if len(r) == 0 || r[0] != 16384 {
				t.Fatalf("RestrictedChunkSizes(%d) = %v, want sizes from 16384 up", id, r)
			}
			continue
		}
		if r != nil {
			t.Fatalf("RestrictedChunkSizes(%d) = %v, want nil", id, r)
		}
	}
}

func TestBrushDeterministicPerSeed(t *testing.T) {
	frames := testFrames(60)
	for id := 1; id <= AlgorithmCount; id++ {
		a := runBrush(id, 7, frames)
		b := runBrush(id, 7, frames)
		if len(a) != len(b) {
			t.Fatalf("algorithm %d: runs drew %d and %d objects", id, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("algorithm %d: object %d differs: %+v vs %+v", id, i, a[i], b[i])
			}
		}
	}
}

func TestBrushSelectResetsState(t *testing.T) {
	frames := testFrames(30)
	list := NewRenderList()
	b := NewBrush(list, rand.New(rand.NewSource(3)))

	// Warm algorithm 2's walk state, then reselect and rerun. The
	// reselect must start from scratch, so both passes draw the same
	// objects.
	b.Select(2)
	for i, f := range frames {
		b.Draw(f, i, len(frames), 1000, true)
	}
	firstLen := list.Len()
	first := make([]Object, firstLen)
	for i := range first {
		first[i], _ = list.Get(i)
	}

	b.Select(2)
	for i, f := range frames {
		b.Draw(f, i, len(frames), 1000, true)
	}
	if list.Len() != 2*firstLen {
		t.Fatalf("second pass drew %d objects, want %d", list.Len()-firstLen, firstLen)
	}
	for i := 0; i < firstLen; i++ {
		second, _ := list.Get(firstLen + i)
		if second != first[i] {
			t.Fatalf("object %d differs after reselect: %+v vs %+v", i, second, first[i])
		}
	}
}

func TestDotFieldTracksFrequency(t *testing.T) {
	list := NewRenderList()
	b := NewBrush(list, rand.New(rand.NewSource(1)))
	b.Select(1)

	// Rising pitch must walk the dots up and to the right.
	const total = 16
	for i := 0; i < total; i++ {
		f := 100 + float64(i)*100
		b.Draw([]float64{f, f}, i, total, 1000, true)
	}
	if list.Len() != total {
		t.Fatalf("list.Len() = %d, want %d", list.Len(), total)
	}
	prev, _ := list.Get(0)
	if prev.Kind != KindCircle || !prev.Fill {
		t.Fatalf("dot 0 = %+v, want filled circle", prev)
	}
	for i := 1; i < total; i++ {
		cur, _ := list.Get(i)
		if cur.X1 <= prev.X1 {
			t.Fatalf("dot %d x = %v, want > %v", i, cur.X1, prev.X1)
		}
		if cur.Y1 <= prev.Y1 {
			t.Fatalf("dot %d y = %v, want > %v", i, cur.Y1, prev.Y1)
		}
		prev = cur
	}
}

func TestQuadrantFieldPaintsFirstCellOnLandmark(t *testing.T) {
	list := NewRenderList()
	b := NewBrush(list, rand.New(rand.NewSource(1)))
	b.Select(13)

	// Active frames only accumulate; the landmark frame paints cell 0.
	for i := 0; i < 4; i++ {
		b.Draw([]float64{100, 100}, i, 40, 1000, true)
	}
	if list.Len() != 0 {
		t.Fatalf("list.Len() = %d before landmark, want 0", list.Len())
	}
	b.Draw([]float64{100, 100}, 4, 40, 1000, false)
	if list.Len() != 1 {
		t.Fatalf("list.Len() = %d after landmark, want 1", list.Len())
	}

	rect, _ := list.Get(0)
	if rect.Kind != KindRect || !rect.Fill {
		t.Fatalf("landmark drew %+v, want filled rect", rect)
	}
	want := quadrantCells[0]
	if rect.X1 != want[0] || rect.Y1 != want[1] || rect.X2 != want[2] || rect.Y2 != want[3] {
		t.Fatalf("rect bounds = (%v,%v)-(%v,%v), want (%v,%v)-(%v,%v)",
			rect.X1, rect.Y1, rect.X2, rect.Y2, want[0], want[1], want[2], want[3])
	}
	// Mean pitch 100 falls in the second color band.
	if rect.Color != quadrantColor(100) {
		t.Fatalf("rect color = %+v, want %+v", rect.Color, quadrantColor(100))
	}
}

func TestQuadrantCellsCycle(t *testing.T) {
	list := NewRenderList()
	b := NewBrush(list, rand.New(rand.NewSource(1)))
	b.Select(13)

	// Ten landmarks walk through all nine cells and wrap back to cell 0.
	for i := 0; i < 10; i++ {
		b.Draw([]float64{300, 300}, i, 100, 1000, false)
	}
	if list.Len() != 10 {
		t.Fatalf("list.Len() = %d, want 10", list.Len())
	}
	for i := 0; i < 10; i++ {
		rect, _ := list.Get(i)
		want := quadrantCells[i%9]
		if rect.X1 != want[0] || rect.Y1 != want[1] {
			t.Fatalf("landmark %d painted cell at (%v,%v), want (%v,%v)",
				i, rect.X1, rect.Y1, want[0], want[1])
		}
	}
}

func TestTriangleFractalProducesValidTriangles(t *testing.T) {
	list := NewRenderList()
	b := NewBrush(list, rand.New(rand.NewSource(42)))
	b.Select(9)

	for i := 0; i < 80; i++ {
		f := 200 + float64(i*53%1500)
		b.Draw([]float64{f, f + 20}, i, 80, 120000, i%10 != 0)
	}
	if list.Len() == 0 {
		t.Fatalf("fractal drew nothing")
	}
	for i := 0; i < list.Len(); i++ {
		obj, _ := list.Get(i)
		if obj.Kind != KindTriangle {
			t.Fatalf("object %d kind = %v, want triangle", i, obj.Kind)
		}
		// Degenerate triangles would collapse the fill.
		p1 := pt{obj.X1, obj.Y1}
		p2 := pt{obj.X2, obj.Y2}
		p3 := pt{obj.X3, obj.Y3}
		if p1 == p2 || p2 == p3 || p1 == p3 {
			t.Fatalf("object %d has repeated vertices: %+v", i, obj)
		}
	}
}
