package rng

import (
	"sort"

	"github.com/zeebo/rng/diver"
	"github.com/zeebo/rng/lathe"
	"github.com/zeebo/rng/light"
	"github.com/zeebo/rng/linnorm"
	"github.com/zeebo/rng/longperiod"
	"github.com/zeebo/rng/pcg"
	"github.com/zeebo/rng/pulley"
	"github.com/zeebo/rng/source"
	"github.com/zeebo/rng/thrust"
)

var algorithms = map[string]func(seed uint64) source.T{
	"diver":      func(s uint64) source.T { return diver.New(s) },
	"lathe":      func(s uint64) source.T { return lathe.New(s) },
	"light":      func(s uint64) source.T { return light.New(s) },
	"linnorm":    func(s uint64) source.T { return linnorm.New(s) },
	"longperiod": func(s uint64) source.T { return longperiod.New(s) },
	"pcg":        func(s uint64) source.T { return pcg.New(s, 0) },
	"pulley":     func(s uint64) source.T { return pulley.New(s) },
	"thrust":     func(s uint64) source.T { return thrust.New(s) },
}

// Names returns the names Lookup accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a T around the named generator built from seed.
func Lookup(name string, seed uint64) (*T, error) {
	fn, ok := algorithms[name]
	if !ok {
		return nil, Error.New("unknown algorithm %q", name)
	}
	return New(fn(seed)), nil
}
