package fis

import (
	"github.com/sgostarter/i/l"
)

type Options struct {
	defuzzifier Defuzzifier
	logger      l.Wrapper
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		defuzzifier: WeightedAverage,
	}

	for _, o := range option {
		o(opts)
	}

	if opts.logger == nil {
		opts.logger = l.NewNopLoggerWrapper()
	}

	return opts
}

func WithDefuzzifier(d Defuzzifier) Option {
	return func(o *Options) {
		o.defuzzifier = d
	}
}

func WithLogger(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}
