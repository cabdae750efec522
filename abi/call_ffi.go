//go:build (windows || !cgo) && (amd64 || arm64)

package abi

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

type callInterface = types.CallInterface

var descriptors = [...]*types.TypeDescriptor{
	Void:    types.VoidTypeDescriptor,
	Uint8:   types.UInt8TypeDescriptor,
	Int8:    types.SInt8TypeDescriptor,
	Uint16:  types.UInt16TypeDescriptor,
	Int16:   types.SInt16TypeDescriptor,
	Uint32:  types.UInt32TypeDescriptor,
	Int32:   types.SInt32TypeDescriptor,
	Uint64:  types.UInt64TypeDescriptor,
	Int64:   types.SInt64TypeDescriptor,
	Float32: types.FloatTypeDescriptor,
	Float64: types.DoubleTypeDescriptor,
	Pointer: types.PointerTypeDescriptor,
}

// prepare builds the goffi call interface once per signature.
func (s *Signature) prepare() error {
	s.once.Do(func() {
		argTypes := make([]*types.TypeDescriptor, len(s.args))
		for i, a := range s.args {
			argTypes[i] = descriptors[a]
		}
		s.err = ffi.PrepareCallInterface(&s.cif, types.DefaultCall, descriptors[s.ret], argTypes)
	})
	return s.err
}

func invoke(sig *Signature, fn uintptr, ret unsafe.Pointer, args []unsafe.Pointer) error {
	if err := sig.prepare(); err != nil {
		return err
	}
	//nolint:govet // fn is a driver entry point, not Go-managed memory
	return ffi.CallFunction(&sig.cif, unsafe.Pointer(fn), ret, args)
}
