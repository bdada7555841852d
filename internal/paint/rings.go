package paint

import "math"

// spiralRings (algorithm 10, "Spiraling Circles") sweeps a dot around the
// origin while a second accumulator steps the orbit through seven fixed
// radius divisors, one per multiple-of-pi band. Past seven pi the band
// accumulator resets, snapping the orbit back out with a visible jump.
type spiralRings struct {
	a, b float64
}

var ringDivisors = [7]float64{1.06, 1.28, 1.6, 2.1, 2.95, 4.8, 12.0}

func (s *spiralRings) reset() {
	s.a, s.b = 0, 0
}

func (s *spiralRings) draw(rl *RenderList, in input) {
	s.a += 0.51
	s.b += 0.51
	theta := math.Mod(s.a, math.Pi) * 2

	div := 0.0
	for i, d := range ringDivisors {
		if s.b <= math.Pi*float64(i+1) {
			div = d
			break
		}
	}
	if div == 0 {
		s.b = 0
		return
	}

	col := RGB(uint8(math.Mod(in.weight, 155)+100), 75,
		uint8(math.Mod(in.freqs[0], 75)+180), 255)
	rl.Append(MakeCircle(math.Cos(theta)/div, math.Sin(theta)/div, 0.05, true, col))
}
