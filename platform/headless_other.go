//go:build !(linux && !cgo && (amd64 || arm64))

package platform

// Headless is an offscreen context.
type Headless struct{}

// NewHeadless always fails on this build.
func NewHeadless(HeadlessConfig) (*Headless, error) {
	return nil, ErrHeadlessUnsupported
}

// Close is a no-op.
func (h *Headless) Close() error { return nil }
