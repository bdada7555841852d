package spectral

import (
	"math"
	"testing"
)

// sine generates n samples of a pure tone at freq Hz.
func sine(freq float64, rate, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(rate))
	}
	return out
}

func TestSpectrumLength(t *testing.T) {
	a := NewAnalyzer(44100)
	spec := a.Spectrum(sine(440, 44100, 1024))
	if len(spec) != 513 {
		t.Fatalf("len(Spectrum()) = %d, want 513", len(spec))
	}
}

func TestSpectrumEmptyInput(t *testing.T) {
	a := NewAnalyzer(44100)
	if spec := a.Spectrum(nil); spec != nil {
		t.Fatalf("Spectrum(nil) = %v, want nil", spec)
	}
}

func TestAnalyzeChunkFindsDominantFrequency(t *testing.T) {
	const (
		rate  = 44100
		chunk = 1024
	)
	// Put the tone exactly on bin 10 so the peak is unambiguous.
	want := 10 * float64(rate) / chunk
	a := NewAnalyzer(rate)

	frame := a.AnalyzeChunk([][]float64{sine(want, rate, chunk)})
	if len(frame.Freqs) != 1 {
		t.Fatalf("len(frame.Freqs) = %d, want 1", len(frame.Freqs))
	}
	if math.Abs(frame.Freqs[0]-want) > 1e-6 {
		t.Fatalf("dominant frequency = %v, want %v", frame.Freqs[0], want)
	}
	if frame.Weight <= 0 {
		t.Fatalf("frame weight = %v, want > 0", frame.Weight)
	}
	if frame.Neutral() {
		t.Fatalf("frame unexpectedly neutral")
	}
}

func TestAnalyzeChunkCapsHighFrequencies(t *testing.T) {
	const (
		rate  = 44100
		chunk = 1024
	)
	a := NewAnalyzer(rate)
	// A tone well above the cap neutralizes the whole frame.
	high := 300 * float64(rate) / chunk // ~12.9 kHz
	if high <= FreqCap {
		t.Fatalf("test tone %v not above cap %v", high, FreqCap)
	}

	frame := a.AnalyzeChunk([][]float64{sine(high, rate, chunk)})
	if !frame.Neutral() {
		t.Fatalf("frame.Neutral() = false, want true for %v Hz tone", high)
	}
	// The neutral marker is always a stereo pair, even for mono input.
	if len(frame.Freqs) != 2 {
		t.Fatalf("len(frame.Freqs) = %d, want 2", len(frame.Freqs))
	}
}

func TestAnalyzeChunkNeverExceedsCap(t *testing.T) {
	const (
		rate  = 44100
		chunk = 1024
	)
	a := NewAnalyzer(rate)
	for bin := 0; bin < chunk/2; bin += 17 {
		f := float64(bin) * rate / chunk
		frame := a.AnalyzeChunk([][]float64{sine(f, rate, chunk)})
		for _, got := range frame.Freqs {
			if got > FreqCap {
				t.Fatalf("frequency %v above cap for %v Hz tone", got, f)
			}
		}
	}
}

func TestAnalyzeAllFrameCount(t *testing.T) {
	const (
		rate  = 44100
		chunk = 1024
	)
	a := NewAnalyzer(rate)
	cases := []struct {
		samples int
		want    int
	}{
		{0, 0},
		{chunk - 1, 0},
		{chunk, 1},
		{chunk*3 + chunk/2, 3},
		{chunk * 5, 5},
	}
	for _, tc := range cases {
		frames := a.AnalyzeAll([][]float64{sine(440, rate, tc.samples)}, chunk)
		if len(frames) != tc.want {
			t.Fatalf("AnalyzeAll() with %d samples produced %d frames, want %d",
				tc.samples, len(frames), tc.want)
		}
	}
}

func TestAnalyzeChunkStereoUsesLoudestChannel(t *testing.T) {
	const (
		rate  = 44100
		chunk = 1024
	)
	a := NewAnalyzer(rate)
	low := sine(10*float64(rate)/chunk, rate, chunk)
	high := sine(50*float64(rate)/chunk, rate, chunk)

	frame := a.AnalyzeChunk([][]float64{low, high})
	if len(frame.Freqs) != 2 {
		t.Fatalf("len(frame.Freqs) = %d, want 2", len(frame.Freqs))
	}
	// Weight comes from the channel with the higher dominant frequency.
	highSpec := a.Spectrum(high)
	_, wantMag := a.dominant(highSpec, chunk)
	if math.Abs(frame.Weight-wantMag) > 1e-9 {
		t.Fatalf("frame.Weight = %v, want %v", frame.Weight, wantMag)
	}
}
