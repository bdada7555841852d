package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
)

// ErrUnsupportedFormat is returned for files that are not WAV.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Clip is a fully decoded PCM file: interleaved integer samples plus the
// stream parameters needed to play them back.
type Clip struct {
	Rate     int
	Channels int
	BitDepth int
	Samples  []int
}

// FrameCount returns the number of sample frames (samples per channel).
func (c *Clip) FrameCount() int {
	if c.Channels == 0 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// Seconds returns the clip duration in seconds.
func (c *Clip) Seconds() float64 {
	if c.Rate == 0 {
		return 0
	}
	return float64(c.FrameCount()) / float64(c.Rate)
}

// ChannelData splits the interleaved samples into one float slice per
// channel, the layout the analyzer works on.
func (c *Clip) ChannelData() [][]float64 {
	frames := c.FrameCount()
	out := make([][]float64, c.Channels)
	for ch := range out {
		data := make([]float64, frames)
		for i := 0; i < frames; i++ {
			data[i] = float64(c.Samples[i*c.Channels+ch])
		}
		out[ch] = data
	}
	return out
}

// LoadWAV reads an entire WAV file into memory. Files without a .wav
// extension fail with ErrUnsupportedFormat before any I/O happens.
func LoadWAV(path string) (*Clip, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".wav" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("decoding %s: invalid WAV file", path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &Clip{
		Rate:     buf.Format.SampleRate,
		Channels: buf.Format.NumChannels,
		BitDepth: int(dec.BitDepth),
		Samples:  buf.Data,
	}, nil
}
