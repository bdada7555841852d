package paint

import (
	"sync"
	"testing"
)

func TestRenderListAppendGet(t *testing.T) {
	rl := NewRenderList()
	if rl.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", rl.Len())
	}

	// Cross several block boundaries.
	const n = blockSize*2 + 17
	for i := 0; i < n; i++ {
		rl.Append(MakePoint(float64(i), float64(-i), RGB(1, 2, 3, 255)))
	}
	if rl.Len() != n {
		t.Fatalf("Len() = %d, want %d", rl.Len(), n)
	}
	for i := 0; i < n; i++ {
		obj, ok := rl.Get(i)
		if !ok {
			t.Fatalf("Get(%d) ok = false", i)
		}
		if obj.X1 != float64(i) || obj.Y1 != float64(-i) {
			t.Fatalf("Get(%d) = %+v, want point (%d, %d)", i, obj, i, -i)
		}
	}
}

func TestRenderListGetOutOfRange(t *testing.T) {
	rl := NewRenderList()
	rl.Append(MakePoint(0, 0, RGB(0, 0, 0, 255)))
	for _, i := range []int{-1, 1, 500} {
		if _, ok := rl.Get(i); ok {
			t.Fatalf("Get(%d) ok = true, want false", i)
		}
	}
}

func TestRenderListClear(t *testing.T) {
	rl := NewRenderList()
	for i := 0; i < blockSize+5; i++ {
		rl.Append(MakePoint(0, 0, RGB(0, 0, 0, 255)))
	}
	rl.Clear()
	if rl.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", rl.Len())
	}
	if _, ok := rl.Get(0); ok {
		t.Fatalf("Get(0) after Clear ok = true, want false")
	}

	rl.Append(MakeLine(1, 2, 3, 4, RGB(9, 9, 9, 255)))
	if rl.Len() != 1 {
		t.Fatalf("Len() after re-append = %d, want 1", rl.Len())
	}
}

// One writer appends while a reader repeatedly walks [0, Len()). Every
// index below the observed length must resolve to the object written there.
func TestRenderListConcurrentReadDuringAppend(t *testing.T) {
	rl := NewRenderList()
	const n = blockSize * 4

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			rl.Append(MakePoint(float64(i), 0, RGB(0, 0, 0, 255)))
		}
	}()

	for {
		ln := rl.Len()
		for i := 0; i < ln; i++ {
			obj, ok := rl.Get(i)
			if !ok {
				t.Errorf("Get(%d) ok = false with Len() = %d", i, ln)
				break
			}
			if obj.X1 != float64(i) {
				t.Errorf("Get(%d).X1 = %v, want %d", i, obj.X1, i)
				break
			}
		}
		if ln == n || t.Failed() {
			break
		}
	}
	wg.Wait()
}
