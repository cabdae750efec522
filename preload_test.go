package glproc

import (
	"errors"
	"testing"
)

func TestPreloadProbesOnce(t *testing.T) {
	cmds := []*Command{
		MustCommand("glClear", Core(GL, 1, 0)),
		MustCommand("glGenVertexArrays", Core(GL, 3, 0), MustExtension("ARB_vertex_array_object")),
		MustCommand("glDebugMessageCallback", Core(GL, 4, 3), MustExtension("KHR_debug")),
	}
	probe := &fakeProbe{caps: NewCapabilities(GL, V(3, 3))}
	lookup := newFakeLookup(map[string]uintptr{
		"glClear":                0x1,
		"glGenVertexArrays":      0x2,
		"glDebugMessageCallback": 0x3,
	})
	reg, err := NewRegistry(NewResolver(probe, lookup), cmds)
	if err != nil {
		t.Fatal(err)
	}

	rep, err := reg.Preload()
	if err != nil {
		t.Fatalf("Preload() error = %v", err)
	}
	if n := probe.calls.Load(); n != 1 {
		t.Errorf("probe called %d times, want 1", n)
	}
	if rep.Capabilities == nil || rep.Capabilities.Version != V(3, 3) {
		t.Errorf("Capabilities = %v", rep.Capabilities)
	}
	if len(rep.Bindings) != 3 {
		t.Fatalf("len(Bindings) = %d", len(rep.Bindings))
	}
	for i, b := range rep.Bindings {
		if b.Command != cmds[i] {
			t.Errorf("Bindings[%d] out of order", i)
		}
	}

	missing := rep.Missing()
	if len(missing) != 1 || missing[0].Command.Name() != "glDebugMessageCallback" {
		t.Fatalf("Missing() = %v", missing)
	}
	if !errors.Is(rep.Err(), ErrSymbolUnavailable) {
		t.Errorf("Err() = %v", rep.Err())
	}

	if st := reg.Stats(); st.Resolved != 2 {
		t.Errorf("Resolved = %d, want 2", st.Resolved)
	}
	// Preloaded slots are served without probing again.
	if _, err := reg.GetOrResolve(cmds[1]); err != nil {
		t.Fatal(err)
	}
	if probe.calls.Load() != 1 {
		t.Error("GetOrResolve probed after Preload")
	}
}

func TestPreloadKeepsResolvedSlots(t *testing.T) {
	cmd := MustCommand("glClear", Core(GL, 1, 0))
	probe := &fakeProbe{caps: NewCapabilities(GL, V(4, 6))}
	lookup := newFakeLookup(map[string]uintptr{"glClear": 0x9})
	reg, _ := NewRegistry(NewResolver(probe, lookup), []*Command{cmd})
	if _, err := reg.GetOrResolve(cmd); err != nil {
		t.Fatal(err)
	}

	rep, err := reg.Preload()
	if err != nil {
		t.Fatal(err)
	}
	if len(lookup.requests()) != 1 {
		t.Errorf("lookups = %v, want one", lookup.requests())
	}
	if !rep.Bindings[0].OK() || rep.Bindings[0].Symbol.Addr != 0x9 {
		t.Errorf("Bindings[0] = %+v", rep.Bindings[0])
	}
	if rep.Err() != nil {
		t.Errorf("Err() = %v", rep.Err())
	}
}

func TestPreloadNoContext(t *testing.T) {
	cmd := MustCommand("glClear", Core(GL, 1, 0))
	reg, _ := NewRegistry(NewResolver(&fakeProbe{}, newFakeLookup(nil)), []*Command{cmd})
	if _, err := reg.Preload(); !errors.Is(err, ErrNoActiveContext) {
		t.Errorf("Preload() error = %v, want ErrNoActiveContext", err)
	}
}

func TestPreloadPlainResolver(t *testing.T) {
	a := MustCommand("glClear", Core(GL, 1, 0))
	b := MustCommand("glFoo", MustExtension("EXT_foo"))
	res := resolverFunc(func(c *Command) (ResolvedSymbol, error) {
		if c == a {
			return ResolvedSymbol{Addr: 1, Name: "glClear", Tag: Core(GL, 1, 0)}, nil
		}
		return ResolvedSymbol{}, &SymbolUnavailableError{Name: c.Name()}
	})
	reg, _ := NewRegistry(res, []*Command{a, b})
	rep, err := reg.Preload()
	if err != nil {
		t.Fatal(err)
	}
	if rep.Capabilities != nil {
		t.Error("Capabilities set without a snapshot resolver")
	}
	if len(rep.Missing()) != 1 {
		t.Errorf("Missing() = %v", rep.Missing())
	}
}
