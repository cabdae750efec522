package platform

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/gogpu/glproc"
	"github.com/gogpu/gpucontext"
)

// Loader names.
const (
	EGL = "egl"
	GLX = "glx"
	WGL = "wgl"
	CGL = "cgl"
)

var (
	// ErrNoLoader is returned by Open when no loader could be opened.
	ErrNoLoader = errors.New("platform: no loader available")

	// ErrUnknownLoader is returned for names that were never registered.
	ErrUnknownLoader = errors.New("platform: unknown loader")
)

// Loader resolves GL entry points for one window system API.
type Loader interface {
	// Name returns the registered name.
	Name() string

	// Open loads the underlying libraries. It fails if the window system
	// library is not installed.
	Open() error

	// ProcAddress returns the entry point for name, or 0 if the driver does
	// not export it. Loader-specific invalid values are mapped to 0.
	ProcAddress(name string) uintptr

	// CurrentContext returns the context handle current on the calling
	// thread, or 0.
	CurrentContext() uintptr

	// Close releases the libraries loaded by Open.
	Close() error
}

// priority is the order Open tries the built-in loaders in.
var priority = []string{EGL, GLX, WGL, CGL}

var loaders = gpucontext.NewRegistry[Loader](
	gpucontext.WithPriority(priority...),
)

// Register registers a loader factory under name, replacing any previous
// registration. Built-in loaders register themselves from init.
func Register(name string, factory func() Loader) {
	loaders.Register(name, factory)
}

// Unregister removes a loader. This is useful for testing.
func Unregister(name string) {
	loaders.Unregister(name)
}

// IsRegistered reports whether a loader is registered under name.
func IsRegistered(name string) bool {
	return loaders.Has(name)
}

// Available returns the registered loader names in the order Open tries
// them: built-in priority first, then the rest sorted by name.
func Available() []string {
	names := loaders.Available()
	out := make([]string, 0, len(names))
	for _, p := range priority {
		if slices.Contains(names, p) {
			out = append(out, p)
		}
	}
	var rest []string
	for _, n := range names {
		if !slices.Contains(priority, n) {
			rest = append(rest, n)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// Binding is an opened Loader.
type Binding struct {
	loader Loader
}

var (
	_ glproc.Lookup         = (*Binding)(nil)
	_ glproc.ContextChecker = (*Binding)(nil)
)

// Open returns a Binding for the first of names that opens. With no names
// every registered loader is tried in Available order.
func Open(names ...string) (*Binding, error) {
	if len(names) == 0 {
		names = Available()
	}
	log := glproc.Logger()
	var errs []error
	for _, name := range names {
		if !loaders.Has(name) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownLoader, name))
			continue
		}
		l := loaders.Get(name)
		if err := l.Open(); err != nil {
			log.Debug("platform: loader failed to open", "loader", name, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		log.Info("platform: loader selected", "loader", name)
		return &Binding{loader: l}, nil
	}
	if len(errs) == 0 {
		return nil, ErrNoLoader
	}
	return nil, fmt.Errorf("%w: %w", ErrNoLoader, errors.Join(errs...))
}

// Name returns the name of the bound loader.
func (b *Binding) Name() string { return b.loader.Name() }

// ProcAddress implements glproc.Lookup.
func (b *Binding) ProcAddress(name string) uintptr {
	return b.loader.ProcAddress(name)
}

// CurrentContext implements glproc.ContextChecker.
func (b *Binding) CurrentContext() uintptr {
	return b.loader.CurrentContext()
}

// Close closes the underlying loader.
func (b *Binding) Close() error {
	return b.loader.Close()
}
