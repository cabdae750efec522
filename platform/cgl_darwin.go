//go:build darwin && !cgo && (amd64 || arm64)

package platform

import (
	"errors"
	"fmt"
)

func init() {
	Register(CGL, func() Loader { return &cglLoader{} })
}

const openGLFramework = "/System/Library/Frameworks/OpenGL.framework/OpenGL"

// cglLoader resolves every entry point with dlsym: the framework exports
// all functions it implements and there is no getProcAddress.
type cglLoader struct {
	lib        *library
	getCurrent uintptr
}

func (l *cglLoader) Name() string { return CGL }

func (l *cglLoader) Open() error {
	lib, err := openLibrary(openGLFramework)
	if err != nil {
		return fmt.Errorf("load OpenGL.framework: %w", err)
	}
	getCurrent := lib.symbol("CGLGetCurrentContext")
	if getCurrent == 0 {
		_ = lib.close()
		return errors.New("OpenGL.framework does not export CGLGetCurrentContext")
	}
	l.lib, l.getCurrent = lib, getCurrent
	return nil
}

func (l *cglLoader) ProcAddress(name string) uintptr {
	return l.lib.symbol(name)
}

func (l *cglLoader) CurrentContext() uintptr {
	return callCurrentContext(l.getCurrent)
}

func (l *cglLoader) Close() error {
	return l.lib.close()
}
