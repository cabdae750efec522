package glproc

import (
	"fmt"
	"sync/atomic"
)

// Registry owns one resolution slot per command. It is built once from the
// full command table and handed to whatever issues GL calls.
//
// A slot moves from unresolved to resolved exactly once and never back.
// Failures are not stored: a later call, possibly under a more capable
// context, resolves again. A Proc holds its slot directly, so a call after
// the first success costs one atomic load and writes nothing shared.
// Concurrent first calls may both resolve; both store the same address.
type Registry struct {
	resolver SymbolResolver
	slots    map[*Command]*slot
	byName   map[string]*Command
	order    []*Command

	misses   atomic.Uint64
	failures atomic.Uint64
}

type slot struct {
	sym atomic.Pointer[ResolvedSymbol]
}

// NewRegistry builds a registry over cmds. Command names must be unique.
func NewRegistry(resolver SymbolResolver, cmds []*Command) (*Registry, error) {
	if resolver == nil {
		return nil, fmt.Errorf("glproc: registry needs a resolver")
	}
	r := &Registry{
		resolver: resolver,
		slots:    make(map[*Command]*slot, len(cmds)),
		byName:   make(map[string]*Command, len(cmds)),
		order:    make([]*Command, 0, len(cmds)),
	}
	for i, c := range cmds {
		if c == nil {
			return nil, fmt.Errorf("glproc: registry: command %d is nil", i)
		}
		if _, dup := r.byName[c.name]; dup {
			return nil, fmt.Errorf("glproc: registry: duplicate command %s", c.name)
		}
		r.slots[c] = &slot{}
		r.byName[c.name] = c
		r.order = append(r.order, c)
	}
	return r, nil
}

// GetOrResolve returns the entry point of cmd, resolving it on first use.
func (r *Registry) GetOrResolve(cmd *Command) (uintptr, error) {
	s, err := r.slot(cmd)
	if err != nil {
		return 0, err
	}
	if sym := s.sym.Load(); sym != nil {
		return sym.Addr, nil
	}
	return r.resolve(cmd, s)
}

// resolve is the slow path of GetOrResolve for an empty slot.
func (r *Registry) resolve(cmd *Command, s *slot) (uintptr, error) {
	r.misses.Add(1)
	sym, err := r.resolver.Resolve(cmd)
	if err != nil {
		r.failures.Add(1)
		return 0, err
	}
	if sym.Addr == 0 {
		r.failures.Add(1)
		return 0, &SymbolUnavailableError{Name: cmd.name, Tried: []string{sym.Name}}
	}
	r.store(cmd, s, sym)
	return sym.Addr, nil
}

func (r *Registry) store(cmd *Command, s *slot, sym ResolvedSymbol) {
	s.sym.Store(&sym)
	Logger().Debug("glproc: resolved", "command", cmd.name, "symbol", sym.Name, "tag", sym.Tag.String())
}

func (r *Registry) slot(cmd *Command) (*slot, error) {
	if cmd == nil {
		return nil, fmt.Errorf("%w: nil command", ErrUnknownCommand)
	}
	s, ok := r.slots[cmd]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.name)
	}
	return s, nil
}

// Resolved reports the symbol bound to cmd, if it has been resolved.
// It never triggers resolution.
func (r *Registry) Resolved(cmd *Command) (ResolvedSymbol, bool) {
	s, err := r.slot(cmd)
	if err != nil {
		return ResolvedSymbol{}, false
	}
	if sym := s.sym.Load(); sym != nil {
		return *sym, true
	}
	return ResolvedSymbol{}, false
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []*Command {
	return append([]*Command(nil), r.order...)
}

// Len returns the number of registered commands.
func (r *Registry) Len() int { return len(r.order) }

// Stats is a point-in-time view of registry activity.
type Stats struct {
	// Misses counts resolver calls made for an empty slot.
	Misses uint64
	// Failures counts resolver calls that returned an error.
	Failures uint64
	// Resolved is the number of resolved slots.
	Resolved int
}

// Stats returns current counters.
func (r *Registry) Stats() Stats {
	st := Stats{
		Misses:   r.misses.Load(),
		Failures: r.failures.Load(),
	}
	for _, s := range r.slots {
		if s.sym.Load() != nil {
			st.Resolved++
		}
	}
	return st
}
