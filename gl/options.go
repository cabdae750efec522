package gl

import (
	"github.com/gogpu/glproc"
	"github.com/gogpu/glproc/abi"
)

// Option configures a Context during creation.
//
// Example:
//
//	// Lazy resolution on first call
//	ctx, err := gl.NewContext(binding, binding)
//
//	// Resolve the whole table up front and inspect what is missing
//	ctx, err := gl.NewContext(binding, binding, gl.WithPreload())
type Option func(*options)

type options struct {
	preload bool
	invoker abi.Invoker
	probe   glproc.Probe
}

func defaultOptions() options {
	return options{
		invoker: nil, // abi.Native
		probe:   nil, // glproc.GLProbe over NewQuerier
	}
}

// WithPreload resolves every command in NewContext. NewContext then fails
// if no context is current, and Context.Report describes what is missing.
func WithPreload() Option {
	return func(o *options) {
		o.preload = true
	}
}

// WithInvoker replaces the native call path. Tests use it to observe calls
// without a driver.
func WithInvoker(inv abi.Invoker) Option {
	return func(o *options) {
		o.invoker = inv
	}
}

// WithProbe replaces the default capability probe.
func WithProbe(p glproc.Probe) Option {
	return func(o *options) {
		o.probe = p
	}
}
