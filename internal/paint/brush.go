package paint

import (
	"math/rand"
	"time"
)

// AlgorithmCount is the number of brush algorithms, indexed 1..AlgorithmCount.
const AlgorithmCount = 13

var algorithmNames = [AlgorithmCount]string{
	"Frequency Dots",
	"Dynamite",
	"Ball of Yarn",
	"3-D Symmetry",
	"Spirograph",
	"Colorful Void",
	"Vortex",
	"Illuminate Snake",
	"Triangle Stacker",
	"Spiraling Circles",
	"Circulating Squares",
	"Sporadic Squares",
	"Emotional Progression",
}

// AlgorithmName returns the display name for algorithm id (1-based), or ""
// for an unknown id.
func AlgorithmName(id int) string {
	if id < 1 || id > AlgorithmCount {
		return ""
	}
	return algorithmNames[id-1]
}

// RestrictedChunkSizes returns the legal chunk sizes for algorithm id when it
// narrows the default set, or nil when any chunk size is allowed. The void
// and stacker brushes grow too fast for short windows.
func RestrictedChunkSizes(id int) []int {
	if id == 6 || id == 9 {
		return []int{16384, 32768, 65536, 131072}
	}
	return nil
}

// input is one frame's worth of drawing input.
type input struct {
	freqs  []float64 // dominant frequency per channel, Hz
	pos    int       // frame index within the sequence
	total  int       // sequence length (grows during capture)
	weight float64   // magnitude of the loudest channel's peak bin
	active bool      // false on landmark frames
}

// avg returns the mean of the first two channels, or the single channel.
func (in input) avg() float64 {
	if len(in.freqs) > 1 {
		return (in.freqs[0] + in.freqs[1]) / 2
	}
	return in.freqs[0]
}

// algorithm is one stateful brush. reset restores the initial state; draw
// consumes one frame and appends primitives to the list.
type algorithm interface {
	reset()
	draw(rl *RenderList, in input)
}

// Brush routes frames to the selected algorithm and owns all thirteen
// algorithm states. Selecting an algorithm resets its private state.
type Brush struct {
	list    *RenderList
	current int
	algs    [AlgorithmCount + 1]algorithm // 1-based
}

// NewBrush creates a Brush appending to list, with algorithm 1 selected.
// The random source drives the stacker and sporadic brushes; pass a seeded
// rand for reproducible output or nil for time-seeded behavior.
func NewBrush(list *RenderList, rng *rand.Rand) *Brush {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	b := &Brush{list: list, current: 1}
	b.algs[1] = &dotField{}
	b.algs[2] = &trailWalk{curve: trailCircle}
	b.algs[3] = &trailWalk{curve: trailPitch}
	b.algs[4] = &trailWalk{curve: trailLobes}
	b.algs[5] = &trailWalk{curve: trailSpiro}
	b.algs[6] = &quadSpiral{}
	b.algs[7] = &radialStar{}
	b.algs[8] = &dualGlow{}
	b.algs[9] = &triangleFractal{rng: rng}
	b.algs[10] = &spiralRings{}
	b.algs[11] = &spiralScatter{}
	b.algs[12] = &randomScatter{rng: rng}
	b.algs[13] = &quadrantField{}
	for _, a := range b.algs[1:] {
		a.reset()
	}
	return b
}

// List returns the render list this brush appends to.
func (b *Brush) List() *RenderList { return b.list }

// Current returns the selected algorithm id (1-based).
func (b *Brush) Current() int { return b.current }

// Select switches to algorithm id and resets its state. Out-of-range ids are
// ignored.
func (b *Brush) Select(id int) {
	if id < 1 || id > AlgorithmCount {
		return
	}
	b.current = id
	b.algs[id].reset()
}

// Reset reinitializes the selected algorithm's state. Called when a new
// session starts or the chunk-size category changes.
func (b *Brush) Reset() {
	b.algs[b.current].reset()
}

// Draw feeds one spectral frame to the selected algorithm. freqs holds the
// per-channel dominant frequencies, pos the frame index, total the sequence
// length so far, weight the frame's spectral weight, and active is false on
// landmark frames.
func (b *Brush) Draw(freqs []float64, pos, total int, weight float64, active bool) {
	if len(freqs) == 0 {
		return
	}
	b.algs[b.current].draw(b.list, input{
		freqs:  freqs,
		pos:    pos,
		total:  total,
		weight: weight,
		active: active,
	})
}
