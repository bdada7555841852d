package session

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/gen2brain/malgo"
)

// pcmQueue buffers interleaved samples between the device callback and
// ReadChunk.
type pcmQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	data   []int16
	closed bool
}

func newPCMQueue() *pcmQueue {
	q := &pcmQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *pcmQueue) push(samples []int16) {
	q.mu.Lock()
	q.data = append(q.data, samples...)
	q.mu.Unlock()
	q.cond.Broadcast()
}

func (q *pcmQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

// take removes exactly n samples, blocking while the queue is open but
// short. Once closed, it reports io.EOF as soon as a full chunk can no
// longer be served.
func (q *pcmQueue) take(n int) ([]int16, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.data) < n && !q.closed {
		q.cond.Wait()
	}
	if len(q.data) < n {
		return nil, io.EOF
	}
	out := make([]int16, n)
	copy(out, q.data)
	q.data = q.data[n:]
	return out, nil
}

// micSource captures the default input device through miniaudio.
type micSource struct {
	ctx   *malgo.AllocatedContext
	dev   *malgo.Device
	queue *pcmQueue
}

// OpenCaptureSource opens the default capture device at the fixed stream
// parameters (44.1 kHz stereo 16-bit).
func OpenCaptureSource() (Source, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("capture context: %w", err)
	}

	cfg := malgo.DefaultDeviceConfig(malgo.Capture)
	cfg.Capture.Format = malgo.FormatS16
	cfg.Capture.Channels = CaptureChannels
	cfg.SampleRate = CaptureRate
	cfg.Alsa.NoMMap = 1

	queue := newPCMQueue()
	callbacks := malgo.DeviceCallbacks{
		Data: func(_, in []byte, frameCount uint32) {
			samples := make([]int16, int(frameCount)*CaptureChannels)
			for i := range samples {
				samples[i] = int16(binary.LittleEndian.Uint16(in[i*2:]))
			}
			queue.push(samples)
		},
		Stop: func() {
			queue.close()
		},
	}

	dev, err := malgo.InitDevice(ctx.Context, cfg, callbacks)
	if err != nil {
		ctx.Uninit()
		ctx.Free()
		return nil, fmt.Errorf("capture device: %w", err)
	}
	if err := dev.Start(); err != nil {
		dev.Uninit()
		ctx.Uninit()
		ctx.Free()
		return nil, fmt.Errorf("starting capture: %w", err)
	}
	return &micSource{ctx: ctx, dev: dev, queue: queue}, nil
}

func (m *micSource) ReadChunk(frames int) ([]int16, error) {
	return m.queue.take(frames * CaptureChannels)
}

func (m *micSource) Close() error {
	m.dev.Uninit()
	m.queue.close()
	err := m.ctx.Uninit()
	m.ctx.Free()
	return err
}
