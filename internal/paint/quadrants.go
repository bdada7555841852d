package paint

// quadrantField (algorithm 13, "Emotional Progression") accumulates the
// channel-average pitch of every frame, and on each landmark frame paints one
// of nine fixed screen cells (cycling 0-8) with a color chosen by
// thresholding the accumulated mean, then starts a fresh accumulation.
type quadrantField struct {
	cell   int
	bounds [4]float64 // ulx, uly, lrx, lry
	sums   []float64
}

// quadrantCells are the nine cell bounds in cycle order, as upper-left /
// lower-right corner pairs.
var quadrantCells = [9][4]float64{
	{-1, 1, -0.33, 0.33},
	{-0.33, 0.33, 0.33, 1},
	{0.33, 1, 1, 0.33},
	{-1, 0.33, -0.33, -0.33},
	{-0.33, 0.33, 0.33, -0.33},
	{0.33, 0.33, 1, -0.33},
	{-1, -0.33, -0.33, -1},
	{-0.33, -1, 0.33, -0.33},
	{0.33, -0.33, 1, -1},
}

func (q *quadrantField) reset() {
	q.cell = 0
	q.bounds = [4]float64{}
	q.sums = nil
}

// quadrantColor thresholds the accumulated mean into five fixed bands.
func quadrantColor(mean float64) Color {
	switch {
	case mean < 50:
		return RGBF(0, 0, 0, 1)
	case mean < 210:
		return RGBF(0.1, 0.1, 1, 1)
	case mean < 550:
		return RGBF(0.5, 0.8, 0.7, 1)
	case mean < 2000:
		return RGBF(1, 0, 0, 1)
	}
	return RGBF(0, 1, 0, 1)
}

func (q *quadrantField) draw(rl *RenderList, in input) {
	q.sums = append(q.sums, in.avg())

	if in.active {
		return
	}

	q.bounds = quadrantCells[q.cell]
	if q.cell < 8 {
		q.cell++
	} else {
		q.cell = 0
	}

	total := 0.0
	for _, v := range q.sums {
		total += v
	}
	mean := total / float64(len(q.sums))
	q.sums = nil

	col := quadrantColor(mean)
	rl.Append(MakeRect(q.bounds[0], q.bounds[1], q.bounds[2], q.bounds[3], true, col))
}
