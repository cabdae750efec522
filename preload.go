package glproc

import (
	"errors"
	"fmt"
)

// Binding is the outcome of preloading one command.
type Binding struct {
	Command *Command
	Symbol  ResolvedSymbol
	Err     error
}

// OK reports whether the command resolved.
func (b Binding) OK() bool { return b.Err == nil }

// Report is the result of Registry.Preload.
type Report struct {
	// Capabilities is the snapshot the table was resolved against.
	// It is nil when the resolver cannot expose one.
	Capabilities *Capabilities
	// Bindings holds one entry per command, in registration order.
	Bindings []Binding
}

// Missing returns the bindings that failed.
func (r *Report) Missing() []Binding {
	var out []Binding
	for _, b := range r.Bindings {
		if !b.OK() {
			out = append(out, b)
		}
	}
	return out
}

// Err joins the errors of all missing commands, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, b := range r.Bindings {
		if b.Err != nil {
			errs = append(errs, b.Err)
		}
	}
	return errors.Join(errs...)
}

// snapshotResolver is implemented by *Resolver. Preload uses it to probe the
// context once for the whole table.
type snapshotResolver interface {
	Snapshot() (*Capabilities, error)
	ResolveWith(cmd *Command, caps *Capabilities) (ResolvedSymbol, error)
}

// Preload resolves every unresolved command now instead of on first call.
// Use it to discover missing functionality before issuing any draw calls.
//
// Preload fails only when the context cannot be probed; unavailable commands
// are reported in the returned Report and their slots stay unresolved.
func (r *Registry) Preload() (*Report, error) {
	rep := &Report{Bindings: make([]Binding, 0, len(r.order))}
	resolve := r.resolver.Resolve
	if sr, ok := r.resolver.(snapshotResolver); ok {
		caps, err := sr.Snapshot()
		if err != nil {
			return nil, fmt.Errorf("glproc: preload: %w", err)
		}
		rep.Capabilities = caps
		resolve = func(cmd *Command) (ResolvedSymbol, error) {
			return sr.ResolveWith(cmd, caps)
		}
	}

	log := Logger()
	for _, cmd := range r.order {
		s := r.slots[cmd]
		if sym := s.sym.Load(); sym != nil {
			rep.Bindings = append(rep.Bindings, Binding{Command: cmd, Symbol: *sym})
			continue
		}
		r.misses.Add(1)
		sym, err := resolve(cmd)
		if err == nil && sym.Addr == 0 {
			err = &SymbolUnavailableError{Name: cmd.name, Tried: []string{sym.Name}}
		}
		if err != nil {
			r.failures.Add(1)
			if errors.Is(err, ErrNoActiveContext) {
				return nil, fmt.Errorf("glproc: preload: %w", err)
			}
			log.Warn("glproc: command unavailable", "command", cmd.name, "err", err)
			rep.Bindings = append(rep.Bindings, Binding{Command: cmd, Err: err})
			continue
		}
		r.store(cmd, s, sym)
		rep.Bindings = append(rep.Bindings, Binding{Command: cmd, Symbol: sym})
	}
	return rep, nil
}
