package paint

import "math"

// radialStar (algorithm 7, "Vortex") spins an 11-pointed star whose radius
// breathes between 0.1 and 1. The weave connects every fifth point; color
// tracks the current pitch against the loudest pitch seen so far.
type radialStar struct {
	angle   float64
	radius  float64
	rot     float64
	first   bool
	maxFreq float64
	growing bool
}

const starPoints = 11

func (s *radialStar) reset() {
	s.angle = math.Pi
	s.radius = 0.1
	s.rot = 0.1
	s.first = true
	s.maxFreq = 0
	s.growing = true
}

// starSize maps spectral weight to the per-frame radius multiplier, banded
// at 10000 and 200000, growing or shrinking with the direction flag.
func starSize(weight float64, growing bool) float64 {
	if growing {
		switch {
		case weight >= 200000:
			return 1.3
		case weight <= 10000:
			return 1
		}
		return (weight-10000)/190000*0.3 + 1
	}
	switch {
	case weight >= 200000:
		return 0.7
	case weight <= 10000:
		return 1
	}
	return 1 - (weight-10000)/190000*0.3
}

func (s *radialStar) draw(rl *RenderList, in input) {
	if s.first {
		s.maxFreq = in.freqs[0]
	} else if in.freqs[0] > s.maxFreq {
		s.maxFreq = in.freqs[0]
	}

	var col Color
	if s.maxFreq > 0 {
		rg := in.freqs[0]/s.maxFreq*510 - 255
		if rg < 0 {
			col = RGB(0, uint8(-rg), 255, 255)
		} else {
			col = RGB(uint8(rg), 0, 255, 255)
		}
	} else {
		col = RGB(0, 0, 255, 255)
	}

	mult := starSize(in.weight, s.growing)

	var pts [starPoints]pt
	for i := range pts {
		factor := 0.5 - float64(2*i)/11
		pts[i] = pt{
			x: s.radius * math.Cos(s.angle*factor+s.rot),
			y: s.radius * math.Sin(s.angle*factor+s.rot),
		}
	}

	// Weave: step five points ahead each segment, which visits all eleven.
	cur := 0
	for range pts {
		next := (cur + 5) % starPoints
		rl.Append(MakeLine(pts[cur].x, pts[cur].y, pts[next].x, pts[next].y, col))
		cur = next
	}

	s.radius *= mult
	if s.growing && s.radius > 1 {
		s.growing = false
	}
	if !s.growing && s.radius < 0.1 {
		s.growing = true
	}
	s.rot += 0.03
	s.first = false
}
