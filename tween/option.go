package tween

import "github.com/sgostarter/i/l"

type Options struct {
	direction Direction
	duration  int64
	logger    l.Wrapper
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		direction: Forward,
	}

	for _, o := range option {
		o(opts)
	}

	if opts.logger == nil {
		opts.logger = l.NewNopLoggerWrapper()
	}

	return opts
}

func DirectionOption(direction Direction) Option {
	return func(o *Options) {
		if direction == Backward {
			o.direction = Backward
		} else {
			o.direction = Forward
		}
	}
}

func DurationOption(duration int64) Option {
	return func(o *Options) {
		o.duration = duration
	}
}

func LoggerOption(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}
