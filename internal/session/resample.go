package session

import "math"

// linearResampler converts an interleaved 16-bit stream between sample
// rates by linear interpolation. The read cursor and the trailing frame
// carry across calls so chunk boundaries stay continuous.
type linearResampler struct {
	step     float64
	pos      float64
	channels int
	tail     []int16
}

func newLinearResampler(srcRate, dstRate, channels int) *linearResampler {
	return &linearResampler{
		step:     float64(srcRate) / float64(dstRate),
		channels: channels,
	}
}

// process consumes one interleaved chunk and returns the output frames
// available so far. The last input frame is held back until its successor
// arrives, so a stream of chunks resamples exactly like one big buffer.
func (r *linearResampler) process(in []int16) []int16 {
	if len(in) == 0 {
		return nil
	}
	src := in
	if len(r.tail) > 0 {
		src = append(r.tail, in...)
	}
	ch := r.channels
	frames := len(src) / ch

	out := make([]int16, 0, int(float64(frames)/r.step)*ch+ch)
	pos := r.pos
	for int(pos)+1 < frames {
		i := int(pos)
		frac := pos - float64(i)
		for c := 0; c < ch; c++ {
			a := float64(src[i*ch+c])
			b := float64(src[(i+1)*ch+c])
			out = append(out, int16(math.Round(a+(b-a)*frac)))
		}
		pos += r.step
	}

	keep := int(pos)
	if keep > frames-1 {
		keep = frames - 1
	}
	r.tail = append([]int16(nil), src[keep*ch:]...)
	r.pos = pos - float64(keep)
	return out
}
