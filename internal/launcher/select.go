package launcher

import (
	"fmt"
	"sort"

	"github.com/Skpow1234/oxilauncher/internal/util"
	"github.com/rs/zerolog"
)

// Launcher names accepted in configuration.
const (
	NameAuto   = "auto"
	NameDirect = "direct"
	NameLutris = "lutris"
)

// Options configures the launcher variants.
type Options struct {
	Executable string
	LutrisSlug string
	Runner     Runner
	Logger     zerolog.Logger
}

type factory func(Options) Launcher

var registry = map[string]factory{
	NameDirect: func(o Options) Launcher {
		d := NewDirect(o.Logger)
		if o.Executable != "" {
			d.Executable = o.Executable
		}
		if o.Runner != nil {
			d.Runner = o.Runner
		}
		return d
	},
	NameLutris: func(o Options) Launcher {
		l := NewLutris(o.LutrisSlug, o.Logger)
		if o.Runner != nil {
			l.Runner = o.Runner
		}
		return l
	},
}

// Names returns the selectable launcher names.
func Names() []string {
	names := []string{NameAuto}
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names[1:])
	return names
}

// DefaultFor returns the launcher used for goos when none is configured.
func DefaultFor(goos string) string {
	if goos == "linux" {
		return NameLutris
	}
	return NameDirect
}

// Select picks a launcher by name; "auto" or "" resolves by goos.
func Select(name, goos string, opts Options) (Launcher, error) {
	if name == "" || name == NameAuto {
		name = DefaultFor(goos)
	}
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown launcher %q (want one of %v)", util.ErrConfig, name, Names())
	}
	return f(opts), nil
}
