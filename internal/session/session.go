package session

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/soundbrush/soundbrush/internal/paint"
	"github.com/soundbrush/soundbrush/internal/spectral"
)

// ErrNoRecording is returned when saving before any capture has finished.
var ErrNoRecording = errors.New("no recording available")

// Session runs at most one worker goroutine that feeds a brush from an
// audio stream. File modes precompute every frame before drawing; capture
// analyzes as samples arrive.
type Session struct {
	brush *paint.Brush

	// OpenSink opens the playback device. Swappable for tests.
	OpenSink SinkOpener

	// OnFrame, when set, is called after each frame is drawn with the
	// frame index and the frame total known at that point.
	OnFrame func(pos, total int)

	mu        sync.Mutex
	chunk     int
	volume    float64
	running   bool
	lastErr   error
	recording []int16

	stop atomic.Bool
}

func New(brush *paint.Brush) *Session {
	return &Session{
		brush:    brush,
		OpenSink: OpenSink,
		chunk:    spectral.DefaultChunkSize,
		volume:   0.8,
	}
}

// ChunkSize returns the analysis window size in sample frames.
func (s *Session) ChunkSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chunk
}

// SetChunkSize changes the analysis window. Invalid sizes are rejected.
func (s *Session) SetChunkSize(n int) error {
	if !spectral.ValidChunkSize(n) {
		return fmt.Errorf("invalid chunk size %d", n)
	}
	s.mu.Lock()
	s.chunk = n
	s.mu.Unlock()
	return nil
}

// Volume returns the playback volume multiplier.
func (s *Session) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// SetVolume sets the playback volume multiplier, clamped to [0, 1].
func (s *Session) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.mu.Lock()
	s.volume = v
	s.mu.Unlock()
}

// Running reports whether a worker goroutine is active.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Err returns the error from the most recently finished worker, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Stop requests the current worker to finish. The worker polls the flag
// once per frame, so the frame in flight completes.
func (s *Session) Stop() {
	s.stop.Store(true)
}

// begin claims the worker slot. It fails silently (returns false) when a
// worker is already running.
func (s *Session) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	s.lastErr = nil
	s.stop.Store(false)
	return true
}

func (s *Session) finish(err error) {
	s.mu.Lock()
	s.running = false
	s.lastErr = err
	s.mu.Unlock()
}

// Render analyzes path and draws the whole file as fast as possible,
// without audio output. Starting while a worker runs is a no-op.
func (s *Session) Render(path string) error {
	return s.startFile(path, false)
}

// Play draws path while playing it; each frame's paint is paced by the
// blocking audio write for its chunk. Starting while a worker runs is a
// no-op.
func (s *Session) Play(path string) error {
	return s.startFile(path, true)
}

func (s *Session) startFile(path string, playback bool) error {
	// Claim the slot before touching the file; a busy session must not pay
	// for a full decode just to discover it has nothing to do.
	if !s.begin() {
		return nil
	}
	clip, err := LoadWAV(path)
	if err != nil {
		s.finish(nil)
		return err
	}
	go func() {
		s.finish(s.runFile(clip, playback))
	}()
	return nil
}

func (s *Session) runFile(clip *Clip, playback bool) error {
	s.mu.Lock()
	chunk := s.chunk
	s.mu.Unlock()

	analyzer := spectral.NewAnalyzer(clip.Rate)
	frames := analyzer.AnalyzeAll(clip.ChannelData(), chunk)
	total := len(frames)

	var sink Sink
	if playback {
		var err error
		sink, err = s.OpenSink(clip.Rate, clip.Channels)
		if err != nil {
			return fmt.Errorf("opening playback device: %w", err)
		}
		defer sink.Close()
	}

	s.brush.Reset()
	for i := 0; i < total && !s.stop.Load(); i++ {
		active := !spectral.Landmark(i, total)
		s.brush.Draw(frames[i].Freqs, i, total, frames[i].Weight, active)
		if s.OnFrame != nil {
			s.OnFrame(i, total)
		}
		if playback {
			if err := s.writeChunk(sink, clip, i, chunk); err != nil {
				return fmt.Errorf("playback: %w", err)
			}
		}
	}
	return nil
}

// writeChunk scales one chunk of the clip by the volume multiplier and
// hands it to the sink. The write blocks until the device accepts it.
func (s *Session) writeChunk(sink Sink, clip *Clip, i, chunk int) error {
	vol := s.Volume()
	lo := i * chunk * clip.Channels
	hi := lo + chunk*clip.Channels
	if hi > len(clip.Samples) {
		hi = len(clip.Samples)
	}
	out := make([]int16, hi-lo)
	for j, v := range clip.Samples[lo:hi] {
		out[j] = clampInt16(float64(v) * vol)
	}
	return sink.Write(out)
}

func clampInt16(v float64) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// Capture starts live analysis from src. If a worker is already running
// the call turns into a stop request, mirroring a record button that
// toggles.
func (s *Session) Capture(src Source) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.Stop()
		return nil
	}
	s.running = true
	s.lastErr = nil
	s.stop.Store(false)
	s.mu.Unlock()

	go func() {
		s.finish(s.runCapture(src))
	}()
	return nil
}

func (s *Session) runCapture(src Source) error {
	defer src.Close()

	s.mu.Lock()
	chunk := s.chunk
	s.mu.Unlock()

	analyzer := spectral.NewAnalyzer(CaptureRate)
	channels := make([][]float64, CaptureChannels)
	for ch := range channels {
		channels[ch] = make([]float64, chunk)
	}

	var recorded []int16
	s.brush.Reset()
	pos := 0
	for !s.stop.Load() {
		samples, err := src.ReadChunk(chunk)
		if err != nil {
			s.storeRecording(recorded)
			return fmt.Errorf("capture: %w", err)
		}
		recorded = append(recorded, samples...)

		for ch := 0; ch < CaptureChannels; ch++ {
			for j := 0; j < chunk; j++ {
				channels[ch][j] = float64(samples[j*CaptureChannels+ch])
			}
		}
		frame := analyzer.AnalyzeChunk(channels)

		// Capped frames are recorded but never painted. The frame total
		// only ever covers what has arrived so far.
		if !frame.Neutral() {
			active := !spectral.LiveLandmark(pos)
			s.brush.Draw(frame.Freqs, pos, pos+1, frame.Weight, active)
			if s.OnFrame != nil {
				s.OnFrame(pos, pos+1)
			}
		}
		pos++
	}
	s.storeRecording(recorded)
	return nil
}

func (s *Session) storeRecording(samples []int16) {
	s.mu.Lock()
	s.recording = samples
	s.mu.Unlock()
}

// HasRecording reports whether a finished capture is available to save.
func (s *Session) HasRecording() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recording) > 0
}

// SaveRecording writes the most recent capture to path as WAV.
func (s *Session) SaveRecording(path string) error {
	s.mu.Lock()
	samples := s.recording
	s.mu.Unlock()
	if len(samples) == 0 {
		return ErrNoRecording
	}
	return SaveWAV(path, samples, CaptureRate, CaptureChannels)
}
