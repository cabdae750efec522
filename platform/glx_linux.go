//go:build linux && !cgo && (amd64 || arm64)

package platform

import (
	"errors"
	"fmt"
)

func init() {
	Register(GLX, func() Loader { return &glxLoader{} })
}

// glxLoader resolves through glXGetProcAddressARB. Mesa hands out dispatch
// stubs for any name, so the capability check in front of it matters.
type glxLoader struct {
	lib        *library
	getProc    uintptr
	getCurrent uintptr
}

func (l *glxLoader) Name() string { return GLX }

func (l *glxLoader) Open() error {
	lib, err := openLibrary("libGL.so.1", "libGL.so")
	if err != nil {
		return fmt.Errorf("load libGL: %w", err)
	}
	getProc := lib.symbol("glXGetProcAddressARB")
	if getProc == 0 {
		getProc = lib.symbol("glXGetProcAddress")
	}
	getCurrent := lib.symbol("glXGetCurrentContext")
	if getProc == 0 || getCurrent == 0 {
		_ = lib.close()
		return errors.New("libGL does not export GLX")
	}
	l.lib, l.getProc, l.getCurrent = lib, getProc, getCurrent
	return nil
}

func (l *glxLoader) ProcAddress(name string) uintptr {
	if p := callProcAddress(l.getProc, name); p != 0 {
		return p
	}
	return l.lib.symbol(name)
}

func (l *glxLoader) CurrentContext() uintptr {
	return callCurrentContext(l.getCurrent)
}

func (l *glxLoader) Close() error {
	return l.lib.close()
}
