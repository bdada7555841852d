package spectral

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// FreqCap is the dominant-frequency ceiling in Hz. A chunk whose loudest
// pitch lands above it is treated as noise and neutralized.
const FreqCap = 8500.0

// Frame is the spectral summary of one analyzed chunk: the dominant
// frequency per channel and the magnitude of the loudest channel's peak bin.
type Frame struct {
	Freqs  []float64
	Weight float64
}

// Neutral reports whether the frame was zeroed by the frequency cap.
func (f Frame) Neutral() bool {
	for _, v := range f.Freqs {
		if v != 0 {
			return false
		}
	}
	return true
}

// Analyzer computes frequency spectra for fixed-length sample chunks.
// Chunks are analyzed independently: no window function, no overlap.
type Analyzer struct {
	SampleRate int
}

// NewAnalyzer returns an Analyzer for the given sampling rate.
func NewAnalyzer(sampleRate int) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

// Spectrum returns the magnitude spectrum of samples: the first
// len(samples)/2+1 bins of the real-input FFT. Bin i corresponds to
// frequency i*rate/len(samples).
func (a *Analyzer) Spectrum(samples []float64) []float64 {
	if len(samples) == 0 {
		return nil
	}
	c := fft.FFTReal(samples)
	spec := make([]float64, len(samples)/2+1)
	for i := range spec {
		spec[i] = math.Hypot(real(c[i]), imag(c[i]))
	}
	return spec
}

// dominant returns the frequency and magnitude of the largest bin.
// An empty spectrum yields (0, 0).
func (a *Analyzer) dominant(spec []float64, n int) (freq, mag float64) {
	if len(spec) == 0 || n == 0 {
		return 0, 0
	}
	maxIdx := 0
	for i, v := range spec {
		if v > spec[maxIdx] {
			maxIdx = i
		}
	}
	binWidth := float64(a.SampleRate) / float64(n)
	return float64(maxIdx) * binWidth, spec[maxIdx]
}

// AnalyzeChunk computes one Frame from a chunk of per-channel samples.
// The frame weight is the peak magnitude of the channel whose dominant
// frequency is highest. If that frequency exceeds FreqCap the channel list
// is replaced with {0, 0}: very high dominant pitch is treated as unusable.
// The reset always produces two entries, even for mono input.
func (a *Analyzer) AnalyzeChunk(channels [][]float64) Frame {
	freqs := make([]float64, 0, len(channels))
	weight := 0.0
	maxFreq := 0.0
	for _, ch := range channels {
		spec := a.Spectrum(ch)
		f, mag := a.dominant(spec, len(ch))
		freqs = append(freqs, f)
		if f >= maxFreq {
			maxFreq = f
			weight = mag
		}
	}
	if maxFreq > FreqCap {
		freqs = []float64{0, 0}
	}
	return Frame{Freqs: freqs, Weight: weight}
}

// AnalyzeAll slices every channel into consecutive chunk-length windows and
// analyzes each. Exactly floor(samples/chunk) frames are produced; a trailing
// partial window is dropped.
func (a *Analyzer) AnalyzeAll(channels [][]float64, chunk int) []Frame {
	if len(channels) == 0 || chunk <= 0 {
		return nil
	}
	samples := len(channels[0])
	n := samples / chunk
	frames := make([]Frame, 0, n)
	window := make([][]float64, len(channels))
	for i := 0; i < n; i++ {
		start := i * chunk
		for c, ch := range channels {
			window[c] = ch[start : start+chunk]
		}
		frames = append(frames, a.AnalyzeChunk(window))
	}
	return frames
}
