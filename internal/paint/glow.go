package paint

import "math"

// dualGlow (algorithm 8, "Illuminate Snake") orbits two glowing points at
// different radii and angular rates. Each point is drawn as ten concentric
// filled circles of shrinking radius and rising opacity, colored from the
// wheel by the channel's pitch relative to its running maximum.
type dualGlow struct {
	angle float64
	r1    float64
	rot   float64
	first bool
	max1  float64
	max2  float64
	r2    float64
}

func (g *dualGlow) reset() {
	g.angle = math.Pi
	g.r1 = 0.025
	g.rot = 0.1
	g.first = true
	g.max1 = 0
	g.max2 = 0
	g.r2 = 0.025
}

// glowRadius maps spectral weight to the outermost circle radius, banded at
// 10000 and 200000.
func glowRadius(weight float64) float64 {
	switch {
	case weight >= 200000:
		return 0.2
	case weight <= 10000:
		return 0.1
	}
	return (weight-10000)/190000*0.1 + 0.1
}

func (g *dualGlow) draw(rl *RenderList, in input) {
	if g.first {
		g.max1 = in.freqs[0]
	} else if in.freqs[0] > g.max1 {
		g.max1 = in.freqs[0]
	}

	var col2 Color
	stereo := len(in.freqs) > 1
	if stereo {
		if g.first {
			g.max2 = in.freqs[1]
		} else if in.freqs[0] > g.max2 {
			// After the first frame the running max follows channel 0.
			g.max2 = in.freqs[0]
		}
		wheel2 := 0
		if g.max2 > 0 {
			wheel2 = int(in.freqs[1] / g.max2 * 1530)
		}
		col2 = WheelRGB(wheel2)
	}

	wheel := 0
	if g.max1 > 0 {
		wheel = int(in.freqs[0] / g.max1 * 1530)
	}
	col := WheelRGB(wheel)

	radius := glowRadius(in.weight)

	p1 := pt{
		x: g.r1 * math.Cos(g.angle*0.5+g.rot),
		y: g.r1 * math.Sin(g.angle*0.5+g.rot),
	}
	p2 := pt{
		x: g.r2 * math.Cos(g.angle*1.5+g.rot),
		y: g.r2 * math.Sin(g.angle*1.5+g.rot),
	}

	for i := 0; i < 10; i++ {
		c := col
		c.A = uint8(255 * float64(i+1) * 0.1)
		rl.Append(MakeCircle(p1.x, p1.y, radius/float64(i+1), true, c))
	}
	if stereo {
		for i := 0; i < 10; i++ {
			c := col2
			c.A = uint8(255 * float64(i+1) * 0.1)
			rl.Append(MakeCircle(p2.x, p2.y, radius/float64(i+1), true, c))
		}
	}

	if g.r1 > 1 {
		g.r1 = 1
	} else if g.r1 < 1 {
		g.r1 += 0.05
	}
	if g.r2 > 0.5 {
		g.r2 = 0.5
	} else if g.r2 < 0.5 {
		g.r2 += 0.025
	}
	g.rot += 0.1
	g.first = false
}
