package session

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// SaveWAV writes interleaved 16-bit samples to path as a PCM WAV file.
func SaveWAV(path string, samples []int16, rate, channels int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving recording: %w", err)
	}

	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, v := range samples {
		buf.Data[i] = int(v)
	}
	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("saving recording: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("saving recording: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("saving recording: %w", err)
	}
	return nil
}
