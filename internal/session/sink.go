package session

import (
	"encoding/binary"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Sink consumes interleaved 16-bit PCM sample frames. Write blocks until
// the device has buffered the data, which is what paces painting during
// playback.
type Sink interface {
	Write(samples []int16) error
	Close() error
}

// SinkOpener opens a playback sink for a stream's parameters. The session
// takes one of these so tests can substitute a silent sink.
type SinkOpener func(rate, channels int) (Sink, error)

var (
	otoCtx     *oto.Context
	otoOnce    sync.Once
	otoInitErr error
)

// initOto creates the process-wide playback context on first use. oto
// allows a single context per process, so it is opened once at the fixed
// 44.1 kHz stereo layout and every stream is converted into that format
// at write time. Opening it per clip would pitch-shift any file whose
// rate differs from the first one played.
func initOto() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   CaptureRate,
			ChannelCount: CaptureChannels,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return otoCtx, otoInitErr
}

// otoSink feeds an oto player through a pipe so that Write blocks at the
// device's pace.
type otoSink struct {
	pw          *io.PipeWriter
	player      *oto.Player
	srcChannels int
	rs          *linearResampler
	buf         []byte
}

// OpenSink opens the system playback device for an interleaved 16-bit
// stream with the given parameters. Channel layout and sample rate are
// converted to the device format as samples are written.
func OpenSink(rate, channels int) (Sink, error) {
	ctx, err := initOto()
	if err != nil {
		return nil, err
	}
	pr, pw := io.Pipe()
	s := &otoSink{
		pw:          pw,
		player:      ctx.NewPlayer(pr),
		srcChannels: channels,
	}
	if rate != CaptureRate {
		s.rs = newLinearResampler(rate, CaptureRate, CaptureChannels)
	}
	s.player.Play()
	return s, nil
}

func (s *otoSink) Write(samples []int16) error {
	switch {
	case s.srcChannels == 1:
		// Mono upmix: duplicate each sample into both channels.
		up := make([]int16, 0, len(samples)*2)
		for _, v := range samples {
			up = append(up, v, v)
		}
		samples = up
	case s.srcChannels > 2:
		// Fold extra channels down to a front stereo pair.
		down := make([]int16, 0, len(samples)/s.srcChannels*2)
		for i := 0; i+s.srcChannels <= len(samples); i += s.srcChannels {
			down = append(down, samples[i], samples[i+1])
		}
		samples = down
	}
	if s.rs != nil {
		samples = s.rs.process(samples)
		if len(samples) == 0 {
			return nil
		}
	}
	if cap(s.buf) < len(samples)*2 {
		s.buf = make([]byte, len(samples)*2)
	}
	raw := s.buf[:len(samples)*2]
	for i, v := range samples {
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(v))
	}
	_, err := s.pw.Write(raw)
	return err
}

func (s *otoSink) Close() error {
	err := s.pw.Close()
	s.player.Pause()
	return err
}
