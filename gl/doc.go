// Package gl binds a representative OpenGL and OpenGL ES command set to
// glproc.
//
// Commands returns the registry data: one glproc.Command per entry point
// with its availability tags in preference order. NewContext builds a
// glproc.Registry from it and exposes each command as a method whose
// parameters mirror the C prototype:
//
//	ctx, err := gl.NewContext(binding, binding)
//	if err != nil {
//	    return err
//	}
//	var vao uint32
//	ctx.GenVertexArrays(1, &vao) // glGenVertexArraysOES on a GLES 2.0 driver
//
// Methods resolve lazily and panic with a glproc resolution error if the
// command is unavailable; call Has first for optional functionality.
//
// NewQuerier provides the glGetString family the capability probe needs.
// Those three entry points go straight to the platform lookup.
package gl
