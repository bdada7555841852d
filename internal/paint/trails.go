package paint

import "math"

// trailWalk covers algorithms 2-5: a persistent cursor walks a parametric
// curve, drawing a line from the previous position each frame. The curve
// function distinguishes the four variants.
type trailWalk struct {
	curve trailCurve
	x, y  float64
	angle float64
}

// trailCurve computes the next cursor position and line color from the
// accumulated angle and the frame input.
type trailCurve func(angle float64, in input) (x, y float64, col Color)

func (t *trailWalk) reset() {
	t.x, t.y, t.angle = 0, 0, 0
}

func (t *trailWalk) draw(rl *RenderList, in input) {
	t.angle += 0.1
	x, y, col := t.curve(t.angle, in)
	rl.Append(MakeLine(t.x, t.y, x, y, col))
	t.x, t.y = x, y
}

// trailCircle (algorithm 2, "Dynamite"): a circle whose radius is the
// fractional part of the first channel's frequency.
func trailCircle(angle float64, in input) (float64, float64, Color) {
	theta := math.Mod(angle, math.Pi) * 2
	amp := math.Mod(in.freqs[0], 1)
	col := RGB(200,
		uint8(math.Mod(in.weight, 200)+55),
		uint8(math.Mod(in.freqs[0], 100)+55), 255)
	return math.Cos(theta) * amp, math.Sin(theta) * amp, col
}

// trailPitch (algorithm 3, "Ball of Yarn"): the angle comes from the pitch
// itself rather than the accumulator, tangling the path.
func trailPitch(_ float64, in input) (float64, float64, Color) {
	theta := math.Mod(in.freqs[0], math.Pi) * 2
	amp := math.Mod(in.freqs[0], 1)
	col := RGB(uint8(math.Mod(in.weight, 155)+100), 100,
		uint8(math.Mod(in.freqs[0], 155)+100), 255)
	return math.Cos(theta) * amp, math.Sin(theta) * amp, col
}

// trailLobes (algorithm 4, "3-D Symmetry"): a 10:8 Lissajous figure.
func trailLobes(angle float64, in input) (float64, float64, Color) {
	theta := math.Mod(angle, math.Pi) * 2
	col := RGB(175,
		uint8(math.Mod(in.weight, 200)+55),
		uint8(math.Mod(in.freqs[0], 100)+155), 255)
	return math.Sin(10 * theta), math.Sin(8 * theta), col
}

// trailSpiro (algorithm 5, "Spirograph"): a nine-lobed hypotrochoid.
func trailSpiro(angle float64, in input) (float64, float64, Color) {
	theta := math.Mod(angle, math.Pi) * 2
	col := RGB(50,
		uint8(math.Mod(in.weight, 155)+100),
		uint8(math.Mod(in.freqs[0], 155)+100), 255)
	x := (math.Cos(theta) - math.Cos(9*theta)) / 2
	y := (math.Sin(theta) - math.Sin(9*theta)) / 2
	return x, y, col
}
