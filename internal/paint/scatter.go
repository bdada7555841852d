package paint

import (
	"math"
	"math/rand"
)

// spiralScatter (algorithm 11, "Circulating Squares") plots a small filled
// square per frame along an Archimedean spiral driven by the frame index,
// colored by bucketing the channel-average pitch.
type spiralScatter struct{}

func (s *spiralScatter) reset() {}

func (s *spiralScatter) draw(rl *RenderList, in input) {
	avg := in.avg()

	t := float64(in.pos) / 1000
	x := t * math.Cos(5*t*2*math.Pi)
	y := t * math.Sin(5*t*2*math.Pi)

	var col Color
	switch {
	case avg > 326:
		col = RGBF(1, 0, 0, 1)
	case avg > 250 && avg <= 325:
		col = RGBF(avg/1000, 1, avg/2000, 1)
	default:
		col = RGBF(0, 0, 0, 1)
	}
	rl.Append(MakeRect(x-0.05, y+0.05, x+0.05, y-0.05, true, col))
}

// randomScatter (algorithm 12, "Sporadic Squares") drops squares at uniform
// random positions, colored by bucketing the channel-average pitch.
type randomScatter struct {
	rng *rand.Rand
}

func (s *randomScatter) reset() {}

func (s *randomScatter) draw(rl *RenderList, in input) {
	avg := in.avg()

	x := s.rng.Float64()*2 - 1
	y := s.rng.Float64()*2 - 1

	var col Color
	switch {
	case avg > 300:
		col = RGBF(1, 0, 0, 1)
	case avg > 201 && avg <= 299:
		col = RGBF(0.5, 0, 0, 1)
	case avg > 150 && avg <= 200:
		col = RGBF(0, 1, 0, 1)
	default:
		col = RGBF(0, 0, 0, 1)
	}
	rl.Append(MakeRect(x-0.05, y+0.05, x+0.05, y-0.05, true, col))
}
