package easing

import "math"

const bounceScale = 7.5625

func bounceOut(position, start, end float64) float64 {
	span := end - start

	switch {
	case position < 1/2.75:
		return span*(bounceScale*math.Pow(position, 2)) + start
	case position < 2/2.75:
		position -= 1.5 / 2.75

		return span*(bounceScale*position*position+.75) + start
	case position < 2.5/2.75:
		position -= 2.25 / 2.75

		return span*(bounceScale*position*position+.9375) + start
	default:
		position -= 2.625 / 2.75

		return span*(bounceScale*position*position+.984375) + start
	}
}

// bounceIn plays bounceOut backwards and mirrors it across the span.
func bounceIn(position, start, end float64) float64 {
	return end - start - bounceOut(1-position, 0, end-start) + start
}

func bounceInOut(position, start, end float64) float64 {
	if position < 0.5 {
		return bounceIn(position*2, 0, end-start)*.5 + start
	}

	return bounceOut(position*2-1, 0, end-start)*.5 + (end-start)*.5 + start
}
