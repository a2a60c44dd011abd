package easing

import "math"

// Back curves overshoot the range on purpose.
const backOvershoot = 1.70158

func backIn(position, start, end float64) float64 {
	const s = backOvershoot

	return (end-start)*math.Pow(position, 2)*((s+1)*position-s) + start
}

func backOut(position, start, end float64) float64 {
	const s = backOvershoot

	position--

	return (end-start)*(math.Pow(position, 2)*((s+1)*position+s)+1) + start
}

func backInOut(position, start, end float64) float64 {
	const s = backOvershoot * 1.525

	position *= 2
	if position < 1 {
		return (end-start)/2*(math.Pow(position, 2)*((s+1)*position-s)) + start
	}

	position -= 2

	return (end-start)/2*(math.Pow(position, 2)*((s+1)*position+s)+2) + start
}
