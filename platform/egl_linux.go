//go:build linux && !cgo && (amd64 || arm64)

package platform

import (
	"fmt"
	"sync"

	"github.com/gogpu/wgpu/hal/gles/egl"
)

func init() {
	Register(EGL, func() Loader { return &eglLoader{} })
}

var (
	eglInitOnce sync.Once
	eglInitErr  error
)

func initEGL() error {
	eglInitOnce.Do(func() {
		eglInitErr = egl.Init()
	})
	return eglInitErr
}

// eglLoader resolves through eglGetProcAddress. Before EGL 1.5 that only
// covers extension functions, so core symbols fall back to dlsym on the
// client API libraries.
type eglLoader struct {
	gles *library
	gl   *library
}

func (l *eglLoader) Name() string { return EGL }

func (l *eglLoader) Open() error {
	if err := initEGL(); err != nil {
		return fmt.Errorf("init EGL: %w", err)
	}
	// Either may be missing; eglGetProcAddress covers the rest.
	l.gles, _ = openLibrary("libGLESv2.so.2", "libGLESv2.so")
	l.gl, _ = openLibrary("libGL.so.1", "libOpenGL.so.0")
	return nil
}

func (l *eglLoader) ProcAddress(name string) uintptr {
	if p := egl.GetProcAddress(name); p != 0 {
		return p
	}
	if p := l.gles.symbol(name); p != 0 {
		return p
	}
	return l.gl.symbol(name)
}

func (l *eglLoader) CurrentContext() uintptr {
	return uintptr(egl.GetCurrentContext())
}

func (l *eglLoader) Close() error {
	err := l.gles.close()
	if e := l.gl.close(); err == nil {
		err = e
	}
	return err
}
