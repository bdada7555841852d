package paint

// dotField (algorithm 1, "Frequency Dots") plots one small filled circle per
// frame: x walks the frame index across [-1, 1], y is the channel-average
// dominant frequency against a 2000 Hz scale.
type dotField struct{}

const dotFieldMaxFreq = 2000.0

func (d *dotField) reset() {}

func (d *dotField) draw(rl *RenderList, in input) {
	x := 2*float64(in.pos)/float64(in.total) - 1

	sum := 0.0
	for _, f := range in.freqs {
		sum += f
	}
	y := sum / float64(len(in.freqs)) / dotFieldMaxFreq

	rl.Append(MakeCircle(x, y-0.5, 0.01, true, RGBF(1, 0, 0, 1)))
}
