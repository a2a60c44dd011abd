package easing

import (
	"strconv"
	"strings"
)

// Ease maps a position, normally inside [0, 1], onto the range from start to
// end. Implementations must not clamp their result.
type Ease func(position, start, end float64) float64

type Curve int

// Custom marks a tween driven by a caller supplied Ease.
const Custom Curve = -1

const (
	Default Curve = iota
	Linear
	Stepped
	QuadraticIn
	QuadraticOut
	QuadraticInOut
	CubicIn
	CubicOut
	CubicInOut
	QuarticIn
	QuarticOut
	QuarticInOut
	QuinticIn
	QuinticOut
	QuinticInOut
	SinusoidalIn
	SinusoidalOut
	SinusoidalInOut
	ExponentialIn
	ExponentialOut
	ExponentialInOut
	CircularIn
	CircularOut
	CircularInOut
	BounceIn
	BounceOut
	BounceInOut
	ElasticIn
	ElasticOut
	ElasticInOut
	BackIn
	BackOut
	BackInOut

	curveCount
)

var curveNames = [curveCount]string{
	Default:          "Default",
	Linear:           "Linear",
	Stepped:          "Stepped",
	QuadraticIn:      "QuadraticIn",
	QuadraticOut:     "QuadraticOut",
	QuadraticInOut:   "QuadraticInOut",
	CubicIn:          "CubicIn",
	CubicOut:         "CubicOut",
	CubicInOut:       "CubicInOut",
	QuarticIn:        "QuarticIn",
	QuarticOut:       "QuarticOut",
	QuarticInOut:     "QuarticInOut",
	QuinticIn:        "QuinticIn",
	QuinticOut:       "QuinticOut",
	QuinticInOut:     "QuinticInOut",
	SinusoidalIn:     "SinusoidalIn",
	SinusoidalOut:    "SinusoidalOut",
	SinusoidalInOut:  "SinusoidalInOut",
	ExponentialIn:    "ExponentialIn",
	ExponentialOut:   "ExponentialOut",
	ExponentialInOut: "ExponentialInOut",
	CircularIn:       "CircularIn",
	CircularOut:      "CircularOut",
	CircularInOut:    "CircularInOut",
	BounceIn:         "BounceIn",
	BounceOut:        "BounceOut",
	BounceInOut:      "BounceInOut",
	ElasticIn:        "ElasticIn",
	ElasticOut:       "ElasticOut",
	ElasticInOut:     "ElasticInOut",
	BackIn:           "BackIn",
	BackOut:          "BackOut",
	BackInOut:        "BackInOut",
}

var eases = [curveCount]Ease{
	Default:          defaultEase,
	Linear:           linear,
	Stepped:          stepped,
	QuadraticIn:      quadraticIn,
	QuadraticOut:     quadraticOut,
	QuadraticInOut:   quadraticInOut,
	CubicIn:          cubicIn,
	CubicOut:         cubicOut,
	CubicInOut:       cubicInOut,
	QuarticIn:        quarticIn,
	QuarticOut:       quarticOut,
	QuarticInOut:     quarticInOut,
	QuinticIn:        quinticIn,
	QuinticOut:       quinticOut,
	QuinticInOut:     quinticInOut,
	SinusoidalIn:     sinusoidalIn,
	SinusoidalOut:    sinusoidalOut,
	SinusoidalInOut:  sinusoidalInOut,
	ExponentialIn:    exponentialIn,
	ExponentialOut:   exponentialOut,
	ExponentialInOut: exponentialInOut,
	CircularIn:       circularIn,
	CircularOut:      circularOut,
	CircularInOut:    circularInOut,
	BounceIn:         bounceIn,
	BounceOut:        bounceOut,
	BounceInOut:      bounceInOut,
	ElasticIn:        elasticIn,
	ElasticOut:       elasticOut,
	ElasticInOut:     elasticInOut,
	BackIn:           backIn,
	BackOut:          backOut,
	BackInOut:        backInOut,
}

var curvesByLowerName = func() map[string]Curve {
	m := make(map[string]Curve, curveCount)
	for idx, name := range curveNames {
		m[strings.ToLower(name)] = Curve(idx)
	}

	return m
}()

func (c Curve) Valid() bool {
	return c >= 0 && c < curveCount
}

func (c Curve) String() string {
	if c == Custom {
		return "Custom"
	}

	if !c.Valid() {
		return "Curve(" + strconv.Itoa(int(c)) + ")"
	}

	return curveNames[c]
}

func (c Curve) Ease() (Ease, error) {
	return Lookup(c)
}

func (c Curve) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrUnknownCurve
	}

	return []byte(curveNames[c]), nil
}

func (c *Curve) UnmarshalText(text []byte) error {
	curve, err := Parse(string(text))
	if err != nil {
		return err
	}

	*c = curve

	return nil
}

func Lookup(c Curve) (Ease, error) {
	if !c.Valid() {
		return nil, ErrUnknownCurve
	}

	return eases[c], nil
}

// Parse resolves a curve name. An exact match wins, otherwise the match is
// case-insensitive.
func Parse(name string) (Curve, error) {
	name = strings.TrimSpace(name)

	for idx, curveName := range curveNames {
		if curveName == name {
			return Curve(idx), nil
		}
	}

	if c, ok := curvesByLowerName[strings.ToLower(name)]; ok {
		return c, nil
	}

	return Custom, ErrUnknownCurve
}

func LookupName(name string) (Ease, error) {
	c, err := Parse(name)
	if err != nil {
		return nil, err
	}

	return eases[c], nil
}

func Curves() []Curve {
	cs := make([]Curve, 0, curveCount)
	for c := Default; c < curveCount; c++ {
		cs = append(cs, c)
	}

	return cs
}
