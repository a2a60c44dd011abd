package easing

import "math"

// defaultEase rounds the span (half to even) before scaling, so it differs
// from linear for fractional ranges.
func defaultEase(position, start, end float64) float64 {
	return math.RoundToEven(end-start)*position + start
}

func linear(position, start, end float64) float64 {
	return (end-start)*position + start
}

func stepped(_, start, _ float64) float64 {
	return start
}

func quadraticIn(position, start, end float64) float64 {
	return (end-start)*math.Pow(position, 2) + start
}

func quadraticOut(position, start, end float64) float64 {
	return -(end-start)*position*(position-2) + start
}

func quadraticInOut(position, start, end float64) float64 {
	position *= 2
	if position < 1 {
		return (end-start)/2*math.Pow(position, 2) + start
	}

	position--

	return -(end-start)/2*(position*(position-2)-1) + start
}

func cubicIn(position, start, end float64) float64 {
	return (end-start)*math.Pow(position, 3) + start
}

func cubicOut(position, start, end float64) float64 {
	position--

	return (end-start)*(math.Pow(position, 3)+1) + start
}

func cubicInOut(position, start, end float64) float64 {
	position *= 2
	if position < 1 {
		return (end-start)/2*math.Pow(position, 3) + start
	}

	position -= 2

	return (end-start)/2*(math.Pow(position, 3)+2) + start
}

func quarticIn(position, start, end float64) float64 {
	return (end-start)*math.Pow(position, 4) + start
}

func quarticOut(position, start, end float64) float64 {
	position--

	return -(end-start)*(math.Pow(position, 4)-1) + start
}

func quarticInOut(position, start, end float64) float64 {
	position *= 2
	if position < 1 {
		return (end-start)/2*math.Pow(position, 4) + start
	}

	position -= 2

	return -(end-start)/2*(math.Pow(position, 4)-2) + start
}

func quinticIn(position, start, end float64) float64 {
	return (end-start)*math.Pow(position, 5) + start
}

func quinticOut(position, start, end float64) float64 {
	position--

	return (end-start)*(math.Pow(position, 5)+1) + start
}

func quinticInOut(position, start, end float64) float64 {
	position *= 2
	if position < 1 {
		return (end-start)/2*math.Pow(position, 5) + start
	}

	position -= 2

	return (end-start)/2*(math.Pow(position, 5)+2) + start
}
