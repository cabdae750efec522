//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

func init() {
	Register(WGL, func() Loader { return &wglLoader{} })
}

// wglLoader asks wglGetProcAddress first and falls back to the opengl32.dll
// export table, which is the only source of the GL 1.1 entry points.
type wglLoader struct {
	dll        *windows.LazyDLL
	getProc    *windows.LazyProc
	getCurrent *windows.LazyProc
}

func (l *wglLoader) Name() string { return WGL }

func (l *wglLoader) Open() error {
	dll := windows.NewLazySystemDLL("opengl32.dll")
	if err := dll.Load(); err != nil {
		return fmt.Errorf("load opengl32.dll: %w", err)
	}
	getProc := dll.NewProc("wglGetProcAddress")
	if err := getProc.Find(); err != nil {
		return err
	}
	getCurrent := dll.NewProc("wglGetCurrentContext")
	if err := getCurrent.Find(); err != nil {
		return err
	}
	l.dll, l.getProc, l.getCurrent = dll, getProc, getCurrent
	return nil
}

func (l *wglLoader) ProcAddress(name string) uintptr {
	cname, err := windows.BytePtrFromString(name)
	if err != nil {
		return 0
	}
	r, _, _ := l.getProc.Call(uintptr(unsafe.Pointer(cname)))
	if !invalidWGLAddress(r) {
		return r
	}
	p := l.dll.NewProc(name)
	if p.Find() != nil {
		return 0
	}
	return p.Addr()
}

func (l *wglLoader) CurrentContext() uintptr {
	r, _, _ := l.getCurrent.Call()
	return r
}

// Close is a no-op: opengl32.dll stays mapped for the process lifetime.
func (l *wglLoader) Close() error { return nil }
