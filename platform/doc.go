// Package platform provides the per-window-system "get proc address"
// primitive for glproc.
//
// Each window system API is a Loader registered under a short name:
//
//	egl  libEGL via github.com/gogpu/wgpu/hal/gles/egl (Linux)
//	glx  libGL.so.1 glXGetProcAddressARB (Linux)
//	wgl  opengl32.dll wglGetProcAddress (Windows)
//	cgl  OpenGL.framework (macOS)
//
// Open tries loaders in priority order (egl, glx, wgl, cgl) and returns a
// Binding, which satisfies both glproc.Lookup and glproc.ContextChecker:
//
//	b, err := platform.Open()
//	if err != nil {
//	    return err
//	}
//	defer b.Close()
//	probe := glproc.NewGLProbe(b, gl.NewQuerier(b, nil))
//
// On Linux and macOS the loaders are built on goffi and are only compiled
// with CGO_ENABLED=0. Custom loaders can be added with Register.
package platform
