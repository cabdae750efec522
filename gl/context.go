package gl

import (
	"errors"
	"fmt"

	"github.com/gogpu/glproc"
)

// Context exposes the command table as typed methods. Each method resolves
// its command on first use through the Context's Registry and then calls
// the cached entry point.
//
// A Context belongs to one GL context: entry points may differ between
// contexts on some platforms. Methods of an unavailable command panic with
// the resolution error; use Has or Registry().Preload to check first.
type Context struct {
	reg    *glproc.Registry
	procs  [numCommands]*glproc.Proc
	report *glproc.Report
}

// NewContext builds a Context over a platform lookup. checker tells the
// default probe whether a context is current; it may be nil when WithProbe
// is given.
func NewContext(lookup glproc.Lookup, checker glproc.ContextChecker, opts ...Option) (*Context, error) {
	if lookup == nil {
		return nil, errors.New("gl: nil lookup")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	probe := o.probe
	if probe == nil {
		probe = glproc.NewGLProbe(checker, NewQuerier(lookup, o.invoker))
	}

	reg, err := glproc.NewRegistry(glproc.NewResolver(probe, lookup), Commands())
	if err != nil {
		return nil, fmt.Errorf("gl: %w", err)
	}
	c := &Context{reg: reg}
	for i, e := range table {
		c.procs[i] = glproc.NewProc(reg, e.cmd, e.sig, o.invoker)
	}

	if o.preload {
		rep, err := reg.Preload()
		if err != nil {
			return nil, fmt.Errorf("gl: %w", err)
		}
		c.report = rep
	}
	return c, nil
}

// Registry returns the resolution cache behind c.
func (c *Context) Registry() *glproc.Registry { return c.reg }

// Report returns the WithPreload result, or nil.
func (c *Context) Report() *glproc.Report { return c.report }

// Has reports whether the command with the given canonical name (e.g.
// "glGenVertexArrays") is available. It resolves the command if needed.
func (c *Context) Has(name string) bool {
	cmd, ok := c.reg.Lookup(name)
	if !ok {
		return false
	}
	_, err := c.reg.GetOrResolve(cmd)
	return err == nil
}

// Proc returns the trampoline for a canonical command name.
func (c *Context) Proc(name string) (*glproc.Proc, bool) {
	for _, p := range c.procs {
		if p.Command().Name() == name {
			return p, true
		}
	}
	return nil, false
}
