package glproc

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/gogpu/glproc/abi"
)

// recordingInvoker captures the last call instead of jumping to fn.
type recordingInvoker struct {
	calls int
	fn    uintptr
	args  []unsafe.Pointer
	err   error
}

func (r *recordingInvoker) Invoke(sig *abi.Signature, fn uintptr, ret unsafe.Pointer, args []unsafe.Pointer) error {
	r.calls++
	r.fn = fn
	r.args = args
	if r.err != nil {
		return r.err
	}
	if sig.Ret() == abi.Uint32 {
		*(*uint32)(ret) = 42
	}
	return nil
}

func newTestProc(t *testing.T, caps *Capabilities, symbols map[string]uintptr, inv abi.Invoker) *Proc {
	t.Helper()
	cmd := MustCommand("glCreateShader", Core(GL, 2, 0), Core(GLES, 2, 0))
	reg, err := NewRegistry(NewResolver(&fakeProbe{caps: caps}, newFakeLookup(symbols)), []*Command{cmd})
	if err != nil {
		t.Fatal(err)
	}
	return NewProc(reg, cmd, abi.New(abi.Uint32, abi.Uint32), inv)
}

func TestProcCall(t *testing.T) {
	inv := &recordingInvoker{}
	p := newTestProc(t, NewCapabilities(GLES, V(3, 0)), map[string]uintptr{"glCreateShader": 0x500}, inv)

	kind := uint32(0x8B31)
	var ret uint32
	if err := p.Call(unsafe.Pointer(&ret), unsafe.Pointer(&kind)); err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if ret != 42 {
		t.Errorf("ret = %d, want 42", ret)
	}
	if inv.fn != 0x500 || len(inv.args) != 1 {
		t.Errorf("invoked fn=%#x args=%d", inv.fn, len(inv.args))
	}
	if !p.Available() {
		t.Error("Available() = false after a successful call")
	}
	if p.Command().Name() != "glCreateShader" || p.Signature().String() != "uint32(uint32)" {
		t.Errorf("accessors: %v %v", p.Command(), p.Signature())
	}
}

func TestProcUnavailableNeverInvokes(t *testing.T) {
	inv := &recordingInvoker{}
	p := newTestProc(t, NewCapabilities(GL, V(1, 5)), map[string]uintptr{"glCreateShader": 0x500}, inv)

	var ret uint32
	kind := uint32(0x8B31)
	err := p.Call(unsafe.Pointer(&ret), unsafe.Pointer(&kind))
	if !errors.Is(err, ErrSymbolUnavailable) {
		t.Fatalf("Call() error = %v, want ErrSymbolUnavailable", err)
	}
	if inv.calls != 0 {
		t.Error("invoker called without an address")
	}
	if p.Available() {
		t.Error("Available() = true")
	}
}

func TestProcCachedCallLeavesStats(t *testing.T) {
	cmd := MustCommand("glCreateShader", Core(GL, 2, 0))
	probe := &fakeProbe{caps: NewCapabilities(GL, V(3, 3))}
	reg, cr := newTestRegistry(t, probe, newFakeLookup(map[string]uintptr{"glCreateShader": 0x500}), cmd)
	p := NewProc(reg, cmd, abi.New(abi.Uint32, abi.Uint32), &recordingInvoker{})

	var ret uint32
	kind := uint32(0x8B31)
	if err := p.Call(unsafe.Pointer(&ret), unsafe.Pointer(&kind)); err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	before := reg.Stats()
	for i := 0; i < 1000; i++ {
		if err := p.Call(unsafe.Pointer(&ret), unsafe.Pointer(&kind)); err != nil {
			t.Fatalf("Call() error = %v", err)
		}
	}
	if after := reg.Stats(); after != before {
		t.Errorf("Stats() moved from %+v to %+v on cached calls", before, after)
	}
	if n := cr.calls.Load(); n != 1 {
		t.Errorf("resolver called %d times, want 1", n)
	}
	if probe.calls.Load() != 1 {
		t.Errorf("probe called %d times, want 1", probe.calls.Load())
	}
}

func TestProcUnknownCommand(t *testing.T) {
	known := MustCommand("glClear", Core(GL, 1, 0))
	reg, _ := newTestRegistry(t, &fakeProbe{}, newFakeLookup(nil), known)
	inv := &recordingInvoker{}
	p := NewProc(reg, MustCommand("glClear", Core(GL, 1, 0)), abi.New(abi.Void, abi.Uint32), inv)

	mask := uint32(0)
	if err := p.Call(nil, unsafe.Pointer(&mask)); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Call() error = %v, want ErrUnknownCommand", err)
	}
	if inv.calls != 0 {
		t.Error("invoker called for a foreign command")
	}
}

func TestProcNoContext(t *testing.T) {
	inv := &recordingInvoker{}
	p := newTestProc(t, nil, nil, inv)
	if _, err := p.Addr(); !errors.Is(err, ErrNoActiveContext) {
		t.Errorf("Addr() error = %v, want ErrNoActiveContext", err)
	}
}

func TestProcInvokeErrorWrapped(t *testing.T) {
	inv := &recordingInvoker{err: abi.ErrUnsupported}
	p := newTestProc(t, NewCapabilities(GL, V(4, 6)), map[string]uintptr{"glCreateShader": 0x500}, inv)
	var ret uint32
	kind := uint32(0)
	err := p.Call(unsafe.Pointer(&ret), unsafe.Pointer(&kind))
	if !errors.Is(err, abi.ErrUnsupported) {
		t.Errorf("Call() error = %v, want abi.ErrUnsupported", err)
	}
}

func TestProcMustCallPanics(t *testing.T) {
	p := newTestProc(t, NewCapabilities(GL, V(1, 5)), nil, &recordingInvoker{})
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrSymbolUnavailable) {
			t.Errorf("recovered %v, want ErrSymbolUnavailable", err)
		}
		var ue *SymbolUnavailableError
		if errors.As(err, &ue) && ue.Name != "glCreateShader" {
			t.Errorf("Name = %q", ue.Name)
		}
	}()
	var ret uint32
	kind := uint32(0)
	p.MustCall(unsafe.Pointer(&ret), unsafe.Pointer(&kind))
}

func BenchmarkProcCallCached(b *testing.B) {
	cmd := MustCommand("glClear", Core(GL, 1, 0))
	reg, err := NewRegistry(NewResolver(&fakeProbe{caps: NewCapabilities(GL, V(4, 6))},
		newFakeLookup(map[string]uintptr{"glClear": 0x1})), []*Command{cmd})
	if err != nil {
		b.Fatal(err)
	}
	nop := abi.InvokerFunc(func(*abi.Signature, uintptr, unsafe.Pointer, []unsafe.Pointer) error { return nil })
	p := NewProc(reg, cmd, abi.New(abi.Void, abi.Uint32), nop)
	if _, err := p.Addr(); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		mask := uint32(0x4000)
		for pb.Next() {
			_ = p.Call(nil, unsafe.Pointer(&mask))
		}
	})
}
