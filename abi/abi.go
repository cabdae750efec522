// Package abi is the single conversion point between untyped entry-point
// addresses and typed native calls.
//
// Every GL trampoline describes its C signature once with New and invokes the
// resolved address through an Invoker. The native Invoker prepares a goffi
// call interface per Signature on first use and reuses it afterwards.
//
// Native calls are implemented with github.com/go-webgpu/goffi, which on
// Linux, macOS and FreeBSD requires CGO_ENABLED=0. In cgo builds on those
// platforms Native returns ErrUnsupported.
package abi

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unsafe"
)

// ErrUnsupported is returned by Native when this build cannot make native calls.
var ErrUnsupported = errors.New("abi: native calls unsupported in this build")

// ErrVoidArgument is returned when a signature lists Void as an argument.
var ErrVoidArgument = errors.New("abi: void is not a valid argument kind")

// Kind is the C-level type of an argument or return value.
type Kind uint8

// Kinds. GL handle and enum types map onto these: GLenum, GLuint, GLbitfield
// are Uint32; GLint, GLsizei are Int32; GLboolean is Uint8; GLfloat is
// Float32; GLdouble is Float64; pointers, GLintptr and GLsizeiptr are Pointer.
const (
	Void Kind = iota
	Uint8
	Int8
	Uint16
	Int16
	Uint32
	Int32
	Uint64
	Int64
	Float32
	Float64
	Pointer
)

var kindNames = [...]string{
	Void:    "void",
	Uint8:   "uint8",
	Int8:    "int8",
	Uint16:  "uint16",
	Int16:   "int16",
	Uint32:  "uint32",
	Int32:   "int32",
	Uint64:  "uint64",
	Int64:   "int64",
	Float32: "float32",
	Float64: "float64",
	Pointer: "pointer",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Signature is an immutable C function signature. Share one Signature between
// all commands of the same shape.
type Signature struct {
	ret  Kind
	args []Kind

	once sync.Once
	cif  callInterface
	err  error
}

// New returns a signature. It panics if an argument kind is Void, since
// signatures are declared in static tables.
func New(ret Kind, args ...Kind) *Signature {
	for _, a := range args {
		if a == Void {
			panic(ErrVoidArgument)
		}
	}
	return &Signature{ret: ret, args: append([]Kind(nil), args...)}
}

// Ret returns the return kind.
func (s *Signature) Ret() Kind { return s.ret }

// NumArgs returns the number of arguments.
func (s *Signature) NumArgs() int { return len(s.args) }

// Args returns a copy of the argument kinds.
func (s *Signature) Args() []Kind { return append([]Kind(nil), s.args...) }

func (s *Signature) String() string {
	parts := make([]string, len(s.args))
	for i, a := range s.args {
		parts[i] = a.String()
	}
	return s.ret.String() + "(" + strings.Join(parts, ", ") + ")"
}

// Invoker calls fn with the given signature. ret points at storage for the
// return value (nil for Void); args holds one pointer per argument value.
type Invoker interface {
	Invoke(sig *Signature, fn uintptr, ret unsafe.Pointer, args []unsafe.Pointer) error
}

// InvokerFunc adapts a function to Invoker.
type InvokerFunc func(sig *Signature, fn uintptr, ret unsafe.Pointer, args []unsafe.Pointer) error

// Invoke calls f.
func (f InvokerFunc) Invoke(sig *Signature, fn uintptr, ret unsafe.Pointer, args []unsafe.Pointer) error {
	return f(sig, fn, ret, args)
}

// Native is the Invoker that performs real native calls.
var Native Invoker = nativeInvoker{}

type nativeInvoker struct{}

func (nativeInvoker) Invoke(sig *Signature, fn uintptr, ret unsafe.Pointer, args []unsafe.Pointer) error {
	if err := check(sig, fn, ret, args); err != nil {
		return err
	}
	return invoke(sig, fn, ret, args)
}

// check validates a call before it reaches native code.
func check(sig *Signature, fn uintptr, ret unsafe.Pointer, args []unsafe.Pointer) error {
	switch {
	case sig == nil:
		return errors.New("abi: nil signature")
	case fn == 0:
		return errors.New("abi: nil function address")
	case len(args) != len(sig.args):
		return fmt.Errorf("abi: %s: got %d arguments", sig, len(args))
	case sig.ret != Void && ret == nil:
		return fmt.Errorf("abi: %s: nil return storage", sig)
	}
	return nil
}
