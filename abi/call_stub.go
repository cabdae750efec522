//go:build !((windows || !cgo) && (amd64 || arm64))

package abi

import "unsafe"

type callInterface struct{}

func invoke(*Signature, uintptr, unsafe.Pointer, []unsafe.Pointer) error {
	return ErrUnsupported
}
