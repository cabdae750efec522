package glproc

import (
	"fmt"
	"strings"
)

// GL enums read by GLProbe.
const (
	glVendor                 = 0x1F00
	glRenderer               = 0x1F01
	glVersion                = 0x1F02
	glExtensions             = 0x1F03
	glShadingLanguageVersion = 0x8B8C
	glNumExtensions          = 0x821D
)

// Probe reports the capabilities of the context current on the calling thread.
// Implementations must not cache: a process may switch between contexts of
// different capability.
type Probe interface {
	Current() (*Capabilities, error)
}

// ProbeFunc adapts a function to Probe.
type ProbeFunc func() (*Capabilities, error)

// Current calls f.
func (f ProbeFunc) Current() (*Capabilities, error) { return f() }

// ContextChecker reports the handle of the context current on the calling
// thread, or 0 when there is none.
type ContextChecker interface {
	CurrentContext() uintptr
}

// Querier exposes the three GL queries capability probing needs.
// Implementations return "" / 0 when an entry point is missing.
type Querier interface {
	// GetString wraps glGetString.
	GetString(name uint32) string
	// GetStringi wraps glGetStringi.
	GetStringi(name, index uint32) string
	// GetInteger wraps glGetIntegerv for a single value.
	GetInteger(pname uint32) int32
}

// GLProbe builds Capabilities by querying the live context.
type GLProbe struct {
	checker ContextChecker
	query   Querier
}

// NewGLProbe returns a probe over the given context checker and querier.
// checker may be nil, in which case an empty GL_VERSION is the only signal
// for a missing context.
func NewGLProbe(checker ContextChecker, query Querier) *GLProbe {
	return &GLProbe{checker: checker, query: query}
}

// Current implements Probe.
func (p *GLProbe) Current() (*Capabilities, error) {
	if p.checker != nil && p.checker.CurrentContext() == 0 {
		return nil, ErrNoActiveContext
	}
	raw := p.query.GetString(glVersion)
	if raw == "" {
		return nil, ErrNoActiveContext
	}
	api, v, err := ParseVersionString(raw)
	if err != nil {
		return nil, fmt.Errorf("glproc: probe: %w", err)
	}

	caps := NewCapabilities(api, v, p.extensions(v)...)
	caps.Adapter = adapterInfo(p.query.GetString(glVendor), p.query.GetString(glRenderer), raw)
	caps.ShadingLanguage = p.query.GetString(glShadingLanguageVersion)

	Logger().Debug("glproc: probed context",
		"api", api, "version", v,
		"extensions", caps.NumExtensions(),
		"renderer", caps.Adapter.Name)
	return caps, nil
}

// extensions lists the advertised extensions. GL 3.0 and GLES 3.0 introduced
// the indexed query and core profiles reject GL_EXTENSIONS in glGetString
// with GL_INVALID_ENUM, so the string form is only read below 3.0.
func (p *GLProbe) extensions(v Version) []string {
	if !v.AtLeast(V(3, 0)) {
		return strings.Fields(p.query.GetString(glExtensions))
	}
	n := p.query.GetInteger(glNumExtensions)
	out := make([]string, 0, max(n, 0))
	for i := int32(0); i < n; i++ {
		if e := p.query.GetStringi(glExtensions, uint32(i)); e != "" {
			out = append(out, e)
		}
	}
	return out
}
