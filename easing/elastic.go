package easing

import "math"

// Positions this close to either edge snap to the bound.
const (
	elasticLowEdge  = 0.00001
	elasticHighEdge = 0.999

	elasticPeriod = .3
)

func elasticIn(position, start, end float64) float64 {
	if position <= elasticLowEdge {
		return start
	}

	if position >= elasticHighEdge {
		return end
	}

	const (
		p = elasticPeriod
		s = p / 4
	)

	position--

	postFix := (end - start) * math.Pow(2, 10*position)

	return -(postFix * math.Sin((position-s)*(2*math.Pi)/p)) + start
}

func elasticOut(position, start, end float64) float64 {
	if position <= elasticLowEdge {
		return start
	}

	if position >= elasticHighEdge {
		return end
	}

	const (
		p = elasticPeriod
		s = p / 4
	)

	return (end-start)*math.Pow(2, -10*position)*math.Sin((position-s)*(2*math.Pi)/p) + end
}

func elasticInOut(position, start, end float64) float64 {
	if position <= elasticLowEdge {
		return start
	}

	if position >= elasticHighEdge {
		return end
	}

	const (
		p = elasticPeriod * 1.5
		s = p / 4
	)

	position *= 2
	if position < 1 {
		position--

		postFix := (end - start) * math.Pow(2, 10*position)

		return -.5*(postFix*math.Sin((position-s)*(2*math.Pi)/p)) + start
	}

	position--

	postFix := (end - start) * math.Pow(2, -10*position)

	return postFix*math.Sin((position-s)*(2*math.Pi)/p)*.5 + end
}
