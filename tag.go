package glproc

import (
	"fmt"
	"strings"
)

// Tag is an availability requirement under which one name-variant of a
// command is exported by a driver. The set of implementations is closed:
// CoreVersion and Extension.
type Tag interface {
	// SymbolName derives the exported symbol for canonical under this tag.
	SymbolName(canonical string) string

	// SatisfiedBy reports whether the capability snapshot meets the tag.
	SatisfiedBy(c *Capabilities) bool

	String() string

	tag()
}

// CoreVersion requires a context of the given API at or above Version.
type CoreVersion struct {
	API     API
	Version Version
}

// Core returns a CoreVersion tag.
func Core(api API, major, minor int) CoreVersion {
	return CoreVersion{API: api, Version: V(major, minor)}
}

func (CoreVersion) tag() {}

// SymbolName returns canonical unchanged: core entry points carry no suffix.
func (t CoreVersion) SymbolName(canonical string) string { return canonical }

// SatisfiedBy requires the same API kind and a version not below t.Version.
func (t CoreVersion) SatisfiedBy(c *Capabilities) bool {
	if c == nil || c.API != t.API {
		return false
	}
	return c.Version.AtLeast(t.Version)
}

func (t CoreVersion) String() string {
	return t.API.String() + " " + t.Version.String()
}

// Extension requires an extension string and binds the suffixed entry point.
// Build it with NewExtension so that the vendor suffix is validated up front.
type Extension struct {
	name   string
	suffix string
}

func (Extension) tag() {}

// Name returns the extension name without the "GL_" prefix.
func (t Extension) Name() string { return t.name }

// Suffix returns the vendor suffix appended to command names.
func (t Extension) Suffix() string { return t.suffix }

// SymbolName returns canonical with the vendor suffix appended.
func (t Extension) SymbolName(canonical string) string { return canonical + t.suffix }

// SatisfiedBy reports whether the snapshot advertises the extension.
func (t Extension) SatisfiedBy(c *Capabilities) bool {
	return c != nil && c.HasExtension(t.name)
}

func (t Extension) String() string { return t.name }

// vendorSuffixes lists the vendor prefixes of the Khronos GL registry.
// The prefix of an extension name doubles as the suffix of its commands.
var vendorSuffixes = map[string]struct{}{
	"3DFX": {}, "AMD": {}, "ANDROID": {}, "ANGLE": {}, "APPLE": {},
	"ARB": {}, "ARM": {}, "ATI": {}, "CHROMIUM": {}, "DMP": {},
	"EXT": {}, "EXTX": {}, "FJ": {}, "GREMEDY": {}, "HP": {}, "HUAWEI": {}, "IBM": {},
	"IMG": {}, "INGR": {}, "INTEL": {}, "KHR": {}, "MESA": {},
	"MESAX": {}, "NV": {}, "NVX": {}, "OES": {}, "OML": {},
	"OVR": {}, "PGI": {}, "QCOM": {}, "REND": {}, "S3": {},
	"SGI": {}, "SGIS": {}, "SGIX": {}, "SUN": {}, "SUNX": {},
	"VIV": {}, "WIN": {},
}

// normalizeExtension strips the "GL_" prefix drivers report.
func normalizeExtension(name string) string {
	return strings.TrimPrefix(strings.TrimSpace(name), "GL_")
}

// NewExtension builds an Extension tag. name may carry the "GL_" prefix.
// It fails with *MalformedExtensionTagError when the vendor prefix is not in
// the registry's vendor table.
func NewExtension(name string) (Extension, error) {
	n := normalizeExtension(name)
	vendor, rest, ok := strings.Cut(n, "_")
	switch {
	case n == "":
		return Extension{}, &MalformedExtensionTagError{Extension: name, Reason: "empty name"}
	case !ok || vendor == "" || rest == "":
		return Extension{}, &MalformedExtensionTagError{Extension: name, Reason: "missing vendor prefix"}
	}
	if _, known := vendorSuffixes[vendor]; !known {
		return Extension{}, &MalformedExtensionTagError{
			Extension: name,
			Reason:    fmt.Sprintf("unknown vendor prefix %q", vendor),
		}
	}
	return Extension{name: n, suffix: vendor}, nil
}

// MustExtension is like NewExtension but panics on a malformed name.
// Intended for static command tables.
func MustExtension(name string) Extension {
	t, err := NewExtension(name)
	if err != nil {
		panic(err)
	}
	return t
}
