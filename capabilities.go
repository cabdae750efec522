package glproc

import (
	"sort"
	"strings"

	"github.com/gogpu/gputypes"
)

// Capabilities is a snapshot of what the current context offers.
// A Probe builds a fresh one per resolution attempt; nothing caches it.
type Capabilities struct {
	API     API
	Version Version

	// Adapter describes the implementation behind the context.
	// Backend is always gputypes.BackendGL.
	Adapter gputypes.AdapterInfo

	// ShadingLanguage is the raw GL_SHADING_LANGUAGE_VERSION string, if any.
	ShadingLanguage string

	extensions map[string]struct{}
}

// NewCapabilities builds a snapshot. Extension names may carry the "GL_"
// prefix; duplicates and blanks are dropped.
func NewCapabilities(api API, v Version, extensions ...string) *Capabilities {
	c := &Capabilities{
		API:        api,
		Version:    v,
		Adapter:    gputypes.AdapterInfo{Backend: gputypes.BackendGL},
		extensions: make(map[string]struct{}, len(extensions)),
	}
	for _, e := range extensions {
		if n := normalizeExtension(e); n != "" {
			c.extensions[n] = struct{}{}
		}
	}
	return c
}

// HasExtension reports whether name is advertised, with or without "GL_".
func (c *Capabilities) HasExtension(name string) bool {
	_, ok := c.extensions[normalizeExtension(name)]
	return ok
}

// NumExtensions returns the number of distinct advertised extensions.
func (c *Capabilities) NumExtensions() int {
	return len(c.extensions)
}

// Extensions returns the advertised extension names, sorted.
func (c *Capabilities) Extensions() []string {
	out := make([]string, 0, len(c.extensions))
	for e := range c.extensions {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// Satisfies reports whether the snapshot meets tag.
func (c *Capabilities) Satisfies(tag Tag) bool {
	return tag != nil && tag.SatisfiedBy(c)
}

func (c *Capabilities) String() string {
	return c.API.String() + " " + c.Version.String()
}

// softwareRenderers are GL_RENDERER substrings of CPU rasterizers.
var softwareRenderers = []string{
	"llvmpipe",
	"softpipe",
	"swiftshader",
	"swrast",
	"gdi generic",
	"apple software renderer",
	"lavapipe",
}

// adapterInfo classifies a context from its GL_VENDOR and GL_RENDERER strings.
func adapterInfo(vendor, renderer, version string) gputypes.AdapterInfo {
	info := gputypes.AdapterInfo{
		Name:       renderer,
		Vendor:     vendor,
		Driver:     version,
		Backend:    gputypes.BackendGL,
		DeviceType: gputypes.DeviceTypeOther,
	}
	r := strings.ToLower(renderer)
	for _, s := range softwareRenderers {
		if strings.Contains(r, s) {
			info.DeviceType = gputypes.DeviceTypeCPU
			return info
		}
	}
	v := strings.ToLower(vendor)
	switch {
	case strings.Contains(v, "intel"):
		info.DeviceType = gputypes.DeviceTypeIntegratedGPU
	case strings.Contains(v, "nvidia"), strings.Contains(v, "ati "), strings.Contains(v, "amd"),
		strings.Contains(v, "advanced micro devices"):
		info.DeviceType = gputypes.DeviceTypeDiscreteGPU
	case strings.Contains(r, "virgl"), strings.Contains(r, "vmware"), strings.Contains(r, "svga3d"):
		info.DeviceType = gputypes.DeviceTypeVirtualGPU
	}
	return info
}
