package platform

import "errors"

// ErrHeadlessUnsupported is returned by NewHeadless on builds without an
// offscreen context implementation.
var ErrHeadlessUnsupported = errors.New("platform: headless contexts unsupported on this build")

// HeadlessConfig describes an offscreen context.
type HeadlessConfig struct {
	// GLES requests OpenGL ES instead of desktop OpenGL.
	GLES bool
	// Major and Minor select the requested version. Zero means 3.3 for GL
	// and 3.0 for GLES.
	Major, Minor int
	// Debug requests a debug context.
	Debug bool
}

func (c HeadlessConfig) version() (int, int) {
	if c.Major != 0 {
		return c.Major, c.Minor
	}
	if c.GLES {
		return 3, 0
	}
	return 3, 3
}
