package spectral

// Chunk sizes are the analysis window lengths offered to the user, in
// samples per channel. Every size is a power of two so the FFT stays radix-2.
var chunkSizes = []int{1024, 2048, 4096, 8192, 16384, 32768, 65536, 131072}

// DefaultChunkSize is the startup window length (16384 samples).
const DefaultChunkSize = 16384

// ChunkSizes returns the full set of legal analysis window lengths.
func ChunkSizes() []int {
	out := make([]int, len(chunkSizes))
	copy(out, chunkSizes)
	return out
}

// ValidChunkSize reports whether n is one of the legal window lengths.
func ValidChunkSize(n int) bool {
	for _, c := range chunkSizes {
		if c == n {
			return true
		}
	}
	return false
}

// Landmark reports whether frame i of a total-frame sequence falls on one of
// the fractional checkpoints (1/2, 1/3, ... 1/9 of the sequence, or the last
// frame). Landmark frames gate the low-frequency brushes.
func Landmark(i, total int) bool {
	if total <= 0 {
		return false
	}
	if i == total-1 {
		return true
	}
	for k := 2; k <= 9; k++ {
		if i == total/k {
			return true
		}
	}
	return false
}

// LiveLandmark is the capture-mode equivalent of Landmark: with no known
// sequence length, every 10th frame is a checkpoint.
func LiveLandmark(i int) bool {
	return i%10 == 0
}
