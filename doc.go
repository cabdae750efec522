// Package glproc resolves OpenGL entry points lazily.
//
// # Overview
//
// A GL command may be exported by a driver under several names: the core
// name once the command entered a GL or GLES version, and a vendor-suffixed
// name for each extension that introduced it. glproc picks, at call time, the
// first variant the current context supports and the driver actually exports,
// loads it once and keeps it for the lifetime of the process.
//
// # Quick Start
//
//	cmd := glproc.MustCommand("glGenVertexArrays",
//	    glproc.Core(glproc.GL, 3, 0),
//	    glproc.Core(glproc.GLES, 3, 0),
//	    glproc.MustExtension("OES_vertex_array_object"),
//	    glproc.MustExtension("APPLE_vertex_array_object"),
//	)
//
//	resolver := glproc.NewResolver(probe, lookup)
//	reg, err := glproc.NewRegistry(resolver, []*glproc.Command{cmd})
//	if err != nil {
//	    return err
//	}
//	addr, err := reg.GetOrResolve(cmd) // resolves once, then one atomic load
//
// Most programs use package gl, which holds the command table and typed
// methods, together with package platform, which supplies the lookup.
//
// # Architecture
//
//   - Probe: reads API kind, version and extensions of the current context.
//   - Command, Tag: immutable table data; tag order is preference order.
//   - Resolver: first satisfied tag whose symbol the driver exports wins.
//   - Registry: one slot per command, success is stored, failure is not.
//   - Proc: resolve-then-invoke through package abi.
//
// # Errors
//
// ErrNoActiveContext and *SymbolUnavailableError are both retryable: the
// registry never records a failure. *MalformedExtensionTagError is raised
// while building tables, never during resolution.
package glproc
