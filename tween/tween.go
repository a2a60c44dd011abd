package tween

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libtween/easing"
	"github.com/sgostarter/libtween/numeric"
)

// Tween tracks one scalar moving between start and end along an easing curve.
//
// A Tween is not safe for concurrent use. Subscribers run synchronously inside
// Seek and Step and must not call back into the same Tween.
type Tween[V numeric.Number] struct {
	logger l.Wrapper

	start     V
	end       V
	direction Direction
	curve     easing.Curve
	ease      easing.Ease
	duration  int64

	limits numeric.Range[V]

	progress float64
	value    V

	onSeek []func(V)
	onStep []func(V)
}

func New[V numeric.Number](start, end V, curve easing.Curve, opts ...Option) (*Tween[V], error) {
	o := optionNew(opts...)

	ease, err := easing.Lookup(curve)
	if err != nil {
		o.logger.WithFields(l.ErrorField(err), l.StringField("curve", curve.String())).Error("new: unknown curve")

		return nil, err
	}

	t := newTween[V](o)
	t.start = start
	t.end = end
	t.curve = curve
	t.ease = ease

	return t, nil
}

// From starts a fluent chain with the Default curve.
func From[V numeric.Number](start V, opts ...Option) *Tween[V] {
	t := newTween[V](optionNew(opts...))
	t.start = start

	return t
}

func newTween[V numeric.Number](o *Options) *Tween[V] {
	ease, _ := easing.Lookup(easing.Default)

	return &Tween[V]{
		logger:    o.logger.WithFields(l.StringField(l.ClsKey, "tween")),
		direction: o.direction,
		curve:     easing.Default,
		ease:      ease,
		duration:  o.duration,
		limits:    numeric.RangeOf[V](),
	}
}

func (t *Tween[V]) From(start V) *Tween[V] {
	t.start = start

	return t
}

func (t *Tween[V]) To(end V) *Tween[V] {
	t.end = end

	return t
}

// Ease drives the tween with a caller supplied curve. A nil ease is ignored.
func (t *Tween[V]) Ease(ease easing.Ease) *Tween[V] {
	if ease == nil {
		return t
	}

	t.curve = easing.Custom
	t.ease = ease

	return t
}

// Via, ViaName and During return the tween even on failure, with its state
// untouched, so a chain can carry on once the error is checked.
func (t *Tween[V]) Via(curve easing.Curve) (*Tween[V], error) {
	ease, err := easing.Lookup(curve)
	if err != nil {
		t.logger.WithFields(l.ErrorField(err), l.StringField("curve", curve.String())).Error("via: unknown curve")

		return t, err
	}

	t.curve = curve
	t.ease = ease

	return t, nil
}

func (t *Tween[V]) ViaName(name string) (*Tween[V], error) {
	curve, err := easing.Parse(name)
	if err != nil {
		t.logger.WithFields(l.ErrorField(err), l.StringField("curve", name)).Error("via: unknown curve")

		return t, err
	}

	return t.Via(curve)
}

// During sets the number of frames StepFrames treats as the whole range.
// duration must be a signed integer.
func (t *Tween[V]) During(duration any) (*Tween[V], error) {
	n, err := numeric.ToSigned(duration)
	if err != nil {
		t.logger.WithFields(l.ErrorField(err), l.StringField("kind", numeric.KindOf(duration).String())).
			Error("during: bad duration")

		return t, err
	}

	t.duration = n

	return t, nil
}

func (t *Tween[V]) Forward() *Tween[V] {
	t.direction = Forward

	return t
}

func (t *Tween[V]) Backward() *Tween[V] {
	t.direction = Backward

	return t
}

func (t *Tween[V]) OnSeek(callback func(V)) *Tween[V] {
	if callback != nil {
		t.onSeek = append(t.onSeek, callback)
	}

	return t
}

func (t *Tween[V]) OnStep(callback func(V)) *Tween[V] {
	if callback != nil {
		t.onStep = append(t.onStep, callback)
	}

	return t
}

func (t *Tween[V]) Start() V {
	return t.start
}

func (t *Tween[V]) End() V {
	return t.end
}

func (t *Tween[V]) Direction() Direction {
	return t.direction
}

func (t *Tween[V]) Curve() easing.Curve {
	return t.curve
}

func (t *Tween[V]) Duration() int64 {
	return t.duration
}

func (t *Tween[V]) Progress() float64 {
	return t.progress
}

// Value is the zero value until the first Seek or Step.
func (t *Tween[V]) Value() V {
	return t.value
}

// Seek jumps to progress, clipped to [0, 1], and notifies the on-seek
// subscribers unless suppressNotify is set.
func (t *Tween[V]) Seek(progress float64, suppressNotify bool) V {
	t.seek(progress)

	if !suppressNotify {
		notify(t.onSeek, t.value)
	}

	return t.value
}

// Step advances progress by delta in the current direction and notifies the
// on-step subscribers unless suppressNotify is set.
func (t *Tween[V]) Step(delta float64, suppressNotify bool) V {
	t.seek(t.progress + delta*float64(t.direction))

	if !suppressNotify {
		notify(t.onStep, t.value)
	}

	return t.value
}

// StepFrames advances by frames/duration of the range.
func (t *Tween[V]) StepFrames(frames int64, suppressNotify bool) (V, error) {
	if t.duration == 0 {
		t.logger.WithFields(l.ErrorField(ErrDivideByZero)).Error("step: no duration")

		return t.value, ErrDivideByZero
	}

	return t.Step(float64(frames)/float64(t.duration), suppressNotify), nil
}

func (t *Tween[V]) seek(progress float64) {
	t.progress = numeric.Clip(progress, 0, 1)

	start, end := float64(t.start), float64(t.end)

	// float64 cannot hold every int64/uint64, so the bounds above may be
	// rounded; clip again once back in V.
	v := t.limits.Narrow(numeric.Clip(t.ease(t.progress, start, end), start, end))
	t.value = numeric.Clip(v, t.start, t.end)
}

func notify[V numeric.Number](callbacks []func(V), v V) {
	for _, callback := range callbacks {
		callback(v)
	}
}
