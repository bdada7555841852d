package session

// Capture stream parameters, fixed the way the recording path expects
// them: 16-bit stereo at 44.1 kHz.
const (
	CaptureRate     = 44100
	CaptureChannels = 2
)

// Source delivers live interleaved 16-bit PCM. ReadChunk blocks until
// frames sample frames are available and returns frames*CaptureChannels
// samples; it returns an error when the device stops producing.
type Source interface {
	ReadChunk(frames int) ([]int16, error)
	Close() error
}
