package easing

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/libtween/numeric"
)

const DefaultResolution = 256

// Table holds a curve sampled over the unit range.
type Table struct {
	curve   Curve
	samples []float64
}

func NewTable(c Curve, resolution int) (*Table, error) {
	ease, err := Lookup(c)
	if err != nil {
		return nil, err
	}

	if resolution < 1 {
		return nil, ErrInvalidResolution
	}

	samples := make([]float64, resolution+1)
	for idx := range samples {
		samples[idx] = ease(float64(idx)/float64(resolution), 0, 1)
	}

	return &Table{
		curve:   c,
		samples: samples,
	}, nil
}

func (t *Table) Curve() Curve {
	return t.curve
}

func (t *Table) Resolution() int {
	return len(t.samples) - 1
}

// At interpolates linearly between the two nearest samples. position is
// clipped to [0, 1].
func (t *Table) At(position float64) float64 {
	last := len(t.samples) - 1
	scaled := numeric.Clip(position, 0, 1) * float64(last)

	idx := int(scaled)
	if idx >= last {
		return t.samples[last]
	}

	return t.samples[idx] + (t.samples[idx+1]-t.samples[idx])*(scaled-float64(idx))
}

func (t *Table) Ease() Ease {
	return func(position, start, end float64) float64 {
		return (end-start)*t.At(position) + start
	}
}

// Sampler builds tables on demand and keeps them around until expiration.
// It is safe for concurrent use.
type Sampler struct {
	resolution int
	tables     *cache.Cache
}

func NewSampler(resolution int, expiration time.Duration) *Sampler {
	if resolution < 1 {
		resolution = DefaultResolution
	}

	var cleanupInterval time.Duration

	if expiration <= 0 {
		expiration = cache.NoExpiration
	} else {
		cleanupInterval = expiration * 2
	}

	return &Sampler{
		resolution: resolution,
		tables:     cache.New(expiration, cleanupInterval),
	}
}

func (s *Sampler) Resolution() int {
	return s.resolution
}

func (s *Sampler) Table(c Curve) (*Table, error) {
	key := c.String()

	if i, ok := s.tables.Get(key); ok {
		if t, ok := i.(*Table); ok {
			return t, nil
		}
	}

	t, err := NewTable(c, s.resolution)
	if err != nil {
		return nil, err
	}

	s.tables.SetDefault(key, t)

	return t, nil
}

func (s *Sampler) Ease(c Curve) (Ease, error) {
	t, err := s.Table(c)
	if err != nil {
		return nil, err
	}

	return t.Ease(), nil
}

func (s *Sampler) Flush() {
	s.tables.Flush()
}
