package glproc

import (
	"slices"
	"sync"
	"sync/atomic"
)

// fakeProbe returns whatever snapshot is currently installed. A nil snapshot
// means no context is current.
type fakeProbe struct {
	mu    sync.Mutex
	caps  *Capabilities
	calls atomic.Int64
}

func (p *fakeProbe) Current() (*Capabilities, error) {
	p.calls.Add(1)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.caps == nil {
		return nil, ErrNoActiveContext
	}
	return p.caps, nil
}

func (p *fakeProbe) bind(c *Capabilities) {
	p.mu.Lock()
	p.caps = c
	p.mu.Unlock()
}

// fakeLookup maps exported symbol names to addresses and records requests.
type fakeLookup struct {
	mu      sync.Mutex
	symbols map[string]uintptr
	asked   []string
}

func newFakeLookup(symbols map[string]uintptr) *fakeLookup {
	return &fakeLookup{symbols: symbols}
}

func (l *fakeLookup) ProcAddress(name string) uintptr {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.asked = append(l.asked, name)
	return l.symbols[name]
}

func (l *fakeLookup) requests() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.asked...)
}

// countingResolver wraps a SymbolResolver and counts Resolve calls.
type countingResolver struct {
	inner SymbolResolver
	calls atomic.Int64
}

func (r *countingResolver) Resolve(cmd *Command) (ResolvedSymbol, error) {
	r.calls.Add(1)
	return r.inner.Resolve(cmd)
}

// fakeQuerier answers GL string and integer queries from maps.
type fakeQuerier struct {
	strings  map[uint32]string
	indexed  []string
	integers map[uint32]int32
	asked    []uint32
}

func (q *fakeQuerier) GetString(name uint32) string {
	q.asked = append(q.asked, name)
	return q.strings[name]
}

// askedFor reports whether GetString was called with name.
func (q *fakeQuerier) askedFor(name uint32) bool {
	return slices.Contains(q.asked, name)
}

func (q *fakeQuerier) GetStringi(name, index uint32) string {
	if name != glExtensions || int(index) >= len(q.indexed) {
		return ""
	}
	return q.indexed[index]
}

func (q *fakeQuerier) GetInteger(pname uint32) int32 { return q.integers[pname] }

// fakeChecker reports a fixed current-context handle.
type fakeChecker uintptr

func (c fakeChecker) CurrentContext() uintptr { return uintptr(c) }
