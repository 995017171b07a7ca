//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"

	_ "net/http/pprof" // register HTTP handlers
)

// Modes returns the sorted list of profiling modes supported when built with
// the pprof build tag. "quiet" is a modifier rather than a mode, so it is
// omitted.
var Modes = sync.OnceValue(
	func() []string {
		m := maps.Clone(modes)
		delete(m, "quiet")

		return slices.Sorted(maps.Keys(m))
	},
)

// modes maps mode names to their [github.com/pkg/profile] selectors.
var modes = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
	"quiet":     profile.Quiet,
}

// settings accumulates the profile selectors passed to [profile.Start].
type settings struct {
	selected []func(*profile.Profile)
}

func start(mode, path string, quiet bool) interface{ Stop() } {
	s := apply(settings{}, withMode(mode))

	// An unrecognized mode selects nothing.
	if len(s.selected) == 0 {
		return ignore{}
	}

	s = apply(s, withPath(path), withQuiet(quiet))

	return profile.Start(s.selected...)
}

func withMode(m string) Option {
	return func(s settings) settings {
		if fn, ok := modes[m]; ok {
			s.selected = append(s.selected, fn)
		}

		return s
	}
}

func withPath(p string) Option {
	return func(s settings) settings {
		if p != "" {
			s.selected = append(s.selected, profile.ProfilePath(p))
		}

		return s
	}
}

func withQuiet(v bool) Option {
	return func(s settings) settings {
		if v {
			s.selected = append(s.selected, profile.Quiet)
		}

		return s
	}
}
