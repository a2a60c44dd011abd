package tween

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libtween/easing"
	"github.com/sgostarter/libtween/numeric"
	"gopkg.in/yaml.v3"
)

// Config describes a tween with loosely typed values, as read from yaml or json.
type Config struct {
	// Type optionally names the value type, e.g. int or float32. It must be
	// numeric and of the same kind as the type the tween is built with.
	Type      string `yaml:"type,omitempty" json:"type,omitempty"`
	From      any    `yaml:"from" json:"from"`
	To        any    `yaml:"to" json:"to"`
	Curve     string `yaml:"curve,omitempty" json:"curve,omitempty"`
	Duration  any    `yaml:"duration,omitempty" json:"duration,omitempty"`
	Direction string `yaml:"direction,omitempty" json:"direction,omitempty"`
}

func LoadConfig(d []byte) (cfg *Config, err error) {
	cfg = &Config{}

	err = yaml.Unmarshal(d, cfg)
	if err != nil {
		cfg = nil
	}

	return
}

// NewFromConfig validates the whole config before building anything.
func NewFromConfig[V numeric.Number](cfg *Config, opts ...Option) (*Tween[V], error) {
	o := optionNew(opts...)
	logger := o.logger.WithFields(l.StringField(l.ClsKey, "tweenConfig"))

	if cfg == nil {
		logger.Error("no config")

		return nil, ErrNoConfig
	}

	if cfg.Type != "" {
		kind, err := numeric.ParseTypeName(cfg.Type)
		if err == nil && kind != numeric.TypeKind[V]() {
			err = numeric.ErrInvalidType
		}

		if err != nil {
			logger.WithFields(l.ErrorField(err), l.StringField("type", cfg.Type)).Error("bad value type")

			return nil, err
		}
	}

	start, err := configValue[V](cfg.From)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("bad from")

		return nil, err
	}

	end, err := configValue[V](cfg.To)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("bad to")

		return nil, err
	}

	curve := easing.Default

	if cfg.Curve != "" {
		curve, err = easing.Parse(cfg.Curve)
		if err != nil {
			logger.WithFields(l.ErrorField(err), l.StringField("curve", cfg.Curve)).Error("bad curve")

			return nil, err
		}
	}

	var duration int64

	if cfg.Duration != nil {
		duration, err = numeric.ToSigned(cfg.Duration)
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Error("bad duration")

			return nil, err
		}
	}

	direction, err := ParseDirection(cfg.Direction)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("direction", cfg.Direction)).Error("bad direction")

		return nil, err
	}

	opts = append(opts, DurationOption(duration), DirectionOption(direction))

	return New[V](start, end, curve, opts...)
}

func configValue[V numeric.Number](v any) (V, error) {
	if v == nil {
		return 0, nil
	}

	return numeric.Convert[V](v)
}
