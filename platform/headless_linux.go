//go:build linux && !cgo && (amd64 || arm64)

package platform

import (
	"fmt"

	"github.com/gogpu/glproc"
	"github.com/gogpu/wgpu/hal/gles/egl"
)

// Headless is an offscreen EGL context. NewHeadless makes it current on the
// calling thread; callers lock the goroutine to its thread first.
type Headless struct {
	ctx *egl.Context
}

// NewHeadless creates a surfaceless EGL context and makes it current.
func NewHeadless(cfg HeadlessConfig) (*Headless, error) {
	if err := initEGL(); err != nil {
		return nil, fmt.Errorf("platform: init EGL: %w", err)
	}
	major, minor := cfg.version()
	ctx, err := egl.NewContext(egl.ContextConfig{
		GLVersionMajor: major,
		GLVersionMinor: minor,
		CoreProfile:    !cfg.GLES && (major > 3 || major == 3 && minor >= 2),
		Debug:          cfg.Debug,
		GLES:           cfg.GLES,
		Surfaceless:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("platform: create EGL context: %w", err)
	}
	if err := ctx.MakeCurrent(); err != nil {
		ctx.Destroy()
		return nil, fmt.Errorf("platform: make EGL context current: %w", err)
	}
	glproc.Logger().Info("platform: headless context current",
		"gles", cfg.GLES, "major", major, "minor", minor, "window", ctx.WindowKind().String())
	return &Headless{ctx: ctx}, nil
}

// Close destroys the context.
func (h *Headless) Close() error {
	h.ctx.Destroy()
	return nil
}
