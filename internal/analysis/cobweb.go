package analysis

import "strings"

type Point struct {
	X, Y float64
}

// ReturnMap pairs every iterate with its successor.
func ReturnMap(trajectory []float64) []Point {
	if len(trajectory) < 2 {
		return nil
	}
	points := make([]Point, 0, len(trajectory)-1)
	for i := 1; i < len(trajectory); i++ {
		points = append(points, Point{X: trajectory[i-1], Y: trajectory[i]})
	}
	return points
}

// ReturnMapToASCII draws the return map with the diagonal y = x. The
// fixed point is where the dots meet the diagonal.
func ReturnMapToASCII(points []Point, width, height int) string {
	if len(points) == 0 || width <= 1 || height <= 1 {
		return ""
	}

	minV, maxV := points[0].X, points[0].X
	for _, p := range points {
		for _, v := range []float64{p.X, p.Y} {
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}

	rng := maxV - minV
	if rng == 0 {
		rng = 1
	}
	minV -= rng * 0.1
	maxV += rng * 0.1
	rng = maxV - minV

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	toCell := func(x, y float64) (int, int) {
		col := int((x - minV) / rng * float64(width-1))
		row := height - 1 - int((y-minV)/rng*float64(height-1))
		return row, col
	}

	for col := 0; col < width; col++ {
		v := minV + float64(col)/float64(width-1)*rng
		row, c := toCell(v, v)
		if row >= 0 && row < height && c >= 0 && c < width {
			canvas[row][c] = '·'
		}
	}

	for _, p := range points {
		row, col := toCell(p.X, p.Y)
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
