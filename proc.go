package glproc

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/glproc/abi"
)

// Proc is the resolve-then-invoke half of a trampoline: it binds one
// command of a Registry to its native signature.
type Proc struct {
	reg  *Registry
	cmd  *Command
	slot *slot
	err  error
	sig  *abi.Signature
	inv  abi.Invoker
}

// NewProc returns a Proc. A nil invoker selects abi.Native. When cmd is not
// part of reg, every call fails with ErrUnknownCommand.
func NewProc(reg *Registry, cmd *Command, sig *abi.Signature, inv abi.Invoker) *Proc {
	if inv == nil {
		inv = abi.Native
	}
	s, err := reg.slot(cmd)
	return &Proc{reg: reg, cmd: cmd, slot: s, err: err, sig: sig, inv: inv}
}

// Command returns the bound command.
func (p *Proc) Command() *Command { return p.cmd }

// Signature returns the native signature.
func (p *Proc) Signature() *abi.Signature { return p.sig }

// Addr resolves the entry point without calling it.
func (p *Proc) Addr() (uintptr, error) {
	if p.err != nil {
		return 0, p.err
	}
	if sym := p.slot.sym.Load(); sym != nil {
		return sym.Addr, nil
	}
	return p.reg.resolve(p.cmd, p.slot)
}

// Available reports whether the command resolves under the current context.
// A successful answer is cached like any other resolution.
func (p *Proc) Available() bool {
	_, err := p.Addr()
	return err == nil
}

// Call resolves the command if needed and invokes it. ret receives the
// return value and must be nil for void commands. Resolution errors are
// returned unchanged; the native function is never called without an address.
func (p *Proc) Call(ret unsafe.Pointer, args ...unsafe.Pointer) error {
	fn, err := p.Addr()
	if err != nil {
		return err
	}
	if fn == 0 {
		return fmt.Errorf("%w: %s", ErrNilAddress, p.cmd.name)
	}
	if err := p.inv.Invoke(p.sig, fn, ret, args); err != nil {
		return fmt.Errorf("glproc: %s: %w", p.cmd.name, err)
	}
	return nil
}

// MustCall is Call for call sites that mirror the native GL signature and so
// have no error result. It panics with the error; recover it and test with
// errors.Is against ErrSymbolUnavailable or ErrNoActiveContext.
func (p *Proc) MustCall(ret unsafe.Pointer, args ...unsafe.Pointer) {
	if err := p.Call(ret, args...); err != nil {
		panic(err)
	}
}
