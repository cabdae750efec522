package abi

import "unsafe"

// CString returns a NUL-terminated copy of s. Keep the slice alive across
// the native call that reads it.
func CString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// GoString copies the NUL-terminated string at p. It returns "" for 0.
// p must point at driver-owned memory such as a glGetString result.
func GoString(p uintptr) string {
	if p == 0 {
		return ""
	}
	//nolint:govet // p is driver memory returned by a native call
	base := unsafe.Pointer(p)
	n := 0
	for *(*byte)(unsafe.Add(base, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(base), n))
}
