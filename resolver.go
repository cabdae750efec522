package glproc

// Lookup is the platform "get proc address" primitive. It returns 0 for
// symbols the driver does not export. It must only be called with a context
// current on the calling thread.
type Lookup interface {
	ProcAddress(name string) uintptr
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(name string) uintptr

// ProcAddress calls f.
func (f LookupFunc) ProcAddress(name string) uintptr { return f(name) }

// ResolvedSymbol is the outcome of a successful resolution.
type ResolvedSymbol struct {
	// Addr is the native entry point. It stays valid for the process lifetime.
	Addr uintptr
	// Name is the exported symbol that was bound, e.g. "glBindVertexArrayOES".
	Name string
	// Tag is the availability tag that selected Name.
	Tag Tag
}

// SymbolResolver maps a Command to a ResolvedSymbol under the current context.
// Registry depends on this interface rather than on *Resolver.
type SymbolResolver interface {
	Resolve(cmd *Command) (ResolvedSymbol, error)
}

// Resolver picks the first tag of a command that the current context
// satisfies and the driver exports.
type Resolver struct {
	probe  Probe
	lookup Lookup
}

// NewResolver returns a Resolver over the given probe and platform lookup.
func NewResolver(probe Probe, lookup Lookup) *Resolver {
	return &Resolver{probe: probe, lookup: lookup}
}

// Resolve implements SymbolResolver.
//
// Tags are tried in declared order. A satisfied tag whose symbol the driver
// does not export is skipped: drivers are known to advertise extensions they
// do not back with entry points. Resolve fails with ErrNoActiveContext when
// the probe does, and with *SymbolUnavailableError when nothing binds.
func (r *Resolver) Resolve(cmd *Command) (ResolvedSymbol, error) {
	caps, err := r.probe.Current()
	if err != nil {
		return ResolvedSymbol{}, err
	}
	return r.resolveWith(cmd, caps)
}

// ResolveWith resolves cmd against an explicit snapshot instead of probing.
// Registry.Preload uses it to probe once for a whole table.
func (r *Resolver) ResolveWith(cmd *Command, caps *Capabilities) (ResolvedSymbol, error) {
	if caps == nil {
		return ResolvedSymbol{}, ErrNoActiveContext
	}
	return r.resolveWith(cmd, caps)
}

func (r *Resolver) resolveWith(cmd *Command, caps *Capabilities) (ResolvedSymbol, error) {
	log := Logger()
	var tried []string
	for _, tag := range cmd.tags {
		if !tag.SatisfiedBy(caps) {
			continue
		}
		name := tag.SymbolName(cmd.name)
		if addr := r.lookup.ProcAddress(name); addr != 0 {
			return ResolvedSymbol{Addr: addr, Name: name, Tag: tag}, nil
		}
		log.Debug("glproc: variant advertised but not exported",
			"command", cmd.name, "symbol", name, "tag", tag.String())
		tried = append(tried, name)
	}
	return ResolvedSymbol{}, &SymbolUnavailableError{Name: cmd.name, Tried: tried}
}

// Snapshot returns the probe's current capabilities.
func (r *Resolver) Snapshot() (*Capabilities, error) {
	return r.probe.Current()
}
