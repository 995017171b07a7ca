//go:build pprof

package profile

// Option applies one configuration step to the profiler settings.
type Option func(settings) settings

// apply folds opts over s in order.
func apply(s settings, opts ...Option) settings {
	for _, opt := range opts {
		s = opt(s)
	}

	return s
}
