package easing

import "math"

func sinusoidalIn(position, start, end float64) float64 {
	return -(end-start)*math.Cos(position*math.Pi/2) + (end - start) + start
}

func sinusoidalOut(position, start, end float64) float64 {
	return (end-start)*math.Sin(position*math.Pi/2) + start
}

func sinusoidalInOut(position, start, end float64) float64 {
	return -(end-start)/2*(math.Cos(position*math.Pi)-1) + start
}

// The exponential family never reaches its bounds exactly: 2^-10 of the span
// is left over at the ends.

func exponentialIn(position, start, end float64) float64 {
	return (end-start)*math.Pow(2, 10*(position-1)) + start
}

func exponentialOut(position, start, end float64) float64 {
	return (end-start)*(-math.Pow(2, -10*position)+1) + start
}

func exponentialInOut(position, start, end float64) float64 {
	position *= 2
	if position < 1 {
		return (end-start)/2*math.Pow(2, 10*(position-1)) + start
	}

	position--

	return (end-start)/2*(-math.Pow(2, -10*position)+2) + start
}

func circularIn(position, start, end float64) float64 {
	return -(end-start)*(math.Sqrt(1-math.Pow(position, 2))-1) + start
}

func circularOut(position, start, end float64) float64 {
	position--

	return (end-start)*math.Sqrt(1-math.Pow(position, 2)) + start
}

func circularInOut(position, start, end float64) float64 {
	position *= 2
	if position < 1 {
		return -(end-start)/2*(math.Sqrt(1-math.Pow(position, 2))-1) + start
	}

	position -= 2

	return (end-start)/2*(math.Sqrt(1-math.Pow(position, 2))+1) + start
}
