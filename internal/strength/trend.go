package strength

type Point struct {
	X float64
	Y float64
}

// LinearRegression fits y = slope*x + intercept with ordinary least squares.
// It needs at least two points with distinct x values.
func LinearRegression(points []Point) (slope, intercept float64, ok bool) {
	n := float64(len(points))
	if len(points) < 2 {
		return 0, 0, false
	}

	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumXX += p.X * p.X
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return 0, 0, false
	}

	slope = (n*sumXY - sumX*sumY) / denominator
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, true
}

// TrendPercent fits a line through the positive values of a session series
// (x = session index) and returns the percentage change of the fitted line
// between the first and the last index of the whole series.
func TrendPercent(values []float64) (float64, bool) {
	points := make([]Point, 0, len(values))
	for i, v := range values {
		if v > 0 {
			points = append(points, Point{X: float64(i), Y: v})
		}
	}
	if len(points) < 2 {
		return 0, false
	}

	slope, intercept, ok := LinearRegression(points)
	if !ok {
		return 0, false
	}

	startY := intercept
	endY := slope*float64(len(values)-1) + intercept
	if startY <= 0 {
		return 0, false
	}

	return (endY - startY) / startY * 100, true
}

// SeriesValues extracts the values of a session series.
func SeriesValues(points []SessionPoint) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	return values
}
