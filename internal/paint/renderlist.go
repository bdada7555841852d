package paint

import (
	"sync"
	"sync/atomic"
)

const blockSize = 1024

// RenderList is an append-only sequence of primitives shared between the
// generation worker and the renderer. One goroutine appends; any number may
// read concurrently. Objects live in fixed-size blocks that never move once
// allocated, and the length counter is published atomically after the object
// is in place, so readers may iterate indices [0, Len()) without locking.
type RenderList struct {
	mu     sync.Mutex // serializes Append/Clear
	blocks atomic.Pointer[[]*[blockSize]Object]
	length atomic.Int64
}

// NewRenderList returns an empty render list.
func NewRenderList() *RenderList {
	rl := &RenderList{}
	empty := []*[blockSize]Object{}
	rl.blocks.Store(&empty)
	return rl
}

// Append adds obj at the end of the list.
func (rl *RenderList) Append(obj Object) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	n := rl.length.Load()
	blk, off := int(n/blockSize), int(n%blockSize)
	blocks := *rl.blocks.Load()
	if blk == len(blocks) {
		// Grow by publishing a new block table; old blocks keep their
		// addresses so concurrent readers stay valid.
		grown := make([]*[blockSize]Object, len(blocks)+1)
		copy(grown, blocks)
		grown[len(blocks)] = new([blockSize]Object)
		rl.blocks.Store(&grown)
		blocks = grown
	}
	blocks[blk][off] = obj
	rl.length.Store(n + 1)
}

// Len returns the number of appended objects. Every index below the returned
// value is safe to Get, even while appends continue.
func (rl *RenderList) Len() int {
	return int(rl.length.Load())
}

// Get returns the object at index i, or false when i is out of range.
func (rl *RenderList) Get(i int) (Object, bool) {
	if i < 0 || int64(i) >= rl.length.Load() {
		return Object{}, false
	}
	blocks := *rl.blocks.Load()
	blk := i / blockSize
	if blk >= len(blocks) {
		// A concurrent Clear swapped the table out from under a stale length.
		return Object{}, false
	}
	return blocks[blk][i%blockSize], true
}

// Clear empties the list. Readers holding a stale length observe out-of-range
// Gets, not garbage.
func (rl *RenderList) Clear() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.length.Store(0)
	empty := []*[blockSize]Object{}
	rl.blocks.Store(&empty)
}
