//go:build (linux || darwin) && !cgo && (amd64 || arm64)

package platform

import (
	"errors"
	"runtime"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/gogpu/glproc/abi"
)

// library is a dlopen'ed shared object.
type library struct {
	name   string
	handle unsafe.Pointer
}

// openLibrary loads the first of names that dlopen accepts.
func openLibrary(names ...string) (*library, error) {
	var errs []error
	for _, n := range names {
		h, err := ffi.LoadLibrary(n)
		if err == nil {
			return &library{name: n, handle: h}, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// symbol returns the address of an exported symbol, or 0.
func (l *library) symbol(name string) uintptr {
	if l == nil {
		return 0
	}
	p, err := ffi.GetSymbol(l.handle, name)
	if err != nil {
		return 0
	}
	return uintptr(p)
}

func (l *library) close() error {
	if l == nil {
		return nil
	}
	return ffi.FreeLibrary(l.handle)
}

var (
	// void *(*)(const char *), shared by glXGetProcAddressARB and friends.
	sigProcAddress = abi.New(abi.Pointer, abi.Pointer)
	// void *(*)(void), shared by the *GetCurrentContext functions.
	sigCurrentContext = abi.New(abi.Pointer)
)

// callProcAddress invokes a getProcAddress-style function.
func callProcAddress(fn uintptr, name string) uintptr {
	if fn == 0 {
		return 0
	}
	cname := abi.CString(name)
	p := uintptr(unsafe.Pointer(&cname[0]))
	var ret uintptr
	err := abi.Native.Invoke(sigProcAddress, fn, unsafe.Pointer(&ret), []unsafe.Pointer{unsafe.Pointer(&p)})
	runtime.KeepAlive(cname)
	if err != nil {
		return 0
	}
	return ret
}

// callCurrentContext invokes a getCurrentContext-style function.
func callCurrentContext(fn uintptr) uintptr {
	if fn == 0 {
		return 0
	}
	var ret uintptr
	if err := abi.Native.Invoke(sigCurrentContext, fn, unsafe.Pointer(&ret), nil); err != nil {
		return 0
	}
	return ret
}
