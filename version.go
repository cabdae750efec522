package glproc

import (
	"fmt"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/gogpu/gputypes"
)

// API identifies the GL flavour of a context or of a core-version tag.
type API = gputypes.GLBackend

// API kinds.
const (
	// GL is desktop OpenGL.
	GL API = gputypes.GLBackendGL
	// GLES is OpenGL ES (including WebGL contexts, reported as their ES equivalent).
	GLES API = gputypes.GLBackendGLES
)

// Version is a GL or GLES API version.
type Version struct {
	Major int
	Minor int
}

// V is shorthand for Version{major, minor}.
func V(major, minor int) Version {
	return Version{Major: major, Minor: minor}
}

// Less reports whether v orders before o.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor < o.Minor
}

// AtLeast reports whether v >= o.
func (v Version) AtLeast(o Version) bool {
	return !v.Less(o)
}

// IsZero reports whether v is the zero version.
func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersion parses "major.minor" or "major.minor.release".
func ParseVersion(s string) (Version, error) {
	sv, err := semver.ParseTolerant(s)
	if err != nil {
		return Version{}, fmt.Errorf("glproc: parse version %q: %w", s, err)
	}
	return Version{Major: int(sv.Major), Minor: int(sv.Minor)}, nil
}

// versionPrefixes maps GL_VERSION prefixes to the API they announce.
// Longer prefixes come first so "OpenGL ES-CM" wins over "OpenGL ES".
var versionPrefixes = []struct {
	prefix string
	api    API
	webgl  bool
}{
	{"OpenGL ES-CM ", GLES, false},
	{"OpenGL ES-CL ", GLES, false},
	{"OpenGL ES ", GLES, false},
	{"WebGL ", GLES, true},
}

// ParseVersionString parses the value of glGetString(GL_VERSION).
//
// Desktop drivers report "<major>.<minor>[.<release>] <vendor info>",
// ES drivers prefix that with "OpenGL ES " (or "OpenGL ES-CM "/"-CL " for
// the 1.x profiles). WebGL 1.0 and 2.0 map to GLES 2.0 and 3.0.
func ParseVersionString(s string) (API, Version, error) {
	s = strings.TrimSpace(s)
	api := GL
	webgl := false
	for _, p := range versionPrefixes {
		if strings.HasPrefix(s, p.prefix) {
			api, webgl = p.api, p.webgl
			s = s[len(p.prefix):]
			break
		}
	}

	end := 0
	for end < len(s) && (s[end] == '.' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}
	num := strings.TrimRight(s[:end], ".")
	if num == "" {
		return api, Version{}, fmt.Errorf("glproc: no version number in %q", s)
	}
	if parts := strings.Split(num, "."); len(parts) > 3 {
		num = strings.Join(parts[:3], ".")
	}
	v, err := ParseVersion(num)
	if err != nil {
		return api, Version{}, err
	}
	if webgl {
		v = Version{Major: v.Major + 1, Minor: 0}
	}
	return api, v, nil
}
