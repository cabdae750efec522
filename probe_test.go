package glproc

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestGLProbeNoContext(t *testing.T) {
	q := &fakeQuerier{strings: map[uint32]string{glVersion: "4.6.0"}}

	p := NewGLProbe(fakeChecker(0), q)
	if _, err := p.Current(); !errors.Is(err, ErrNoActiveContext) {
		t.Errorf("Current() with no context error = %v, want ErrNoActiveContext", err)
	}

	// Without a checker, an empty GL_VERSION is the signal.
	p = NewGLProbe(nil, &fakeQuerier{})
	if _, err := p.Current(); !errors.Is(err, ErrNoActiveContext) {
		t.Errorf("Current() with empty GL_VERSION error = %v, want ErrNoActiveContext", err)
	}
}

func TestGLProbeBadVersion(t *testing.T) {
	q := &fakeQuerier{strings: map[uint32]string{glVersion: "garbage"}}
	_, err := NewGLProbe(fakeChecker(1), q).Current()
	if err == nil || errors.Is(err, ErrNoActiveContext) {
		t.Errorf("Current() error = %v, want parse error", err)
	}
}

func TestGLProbeIndexedExtensions(t *testing.T) {
	q := &fakeQuerier{
		strings: map[uint32]string{
			glVersion:                "4.6.0 NVIDIA 535.54.03",
			glVendor:                 "NVIDIA Corporation",
			glRenderer:               "NVIDIA GeForce RTX 3080/PCIe/SSE2",
			glShadingLanguageVersion: "4.60 NVIDIA",
			// Core profiles do not answer GL_EXTENSIONS through glGetString.
			glExtensions: "",
		},
		indexed:  []string{"GL_ARB_direct_state_access", "GL_KHR_debug"},
		integers: map[uint32]int32{glNumExtensions: 2},
	}
	caps, err := NewGLProbe(fakeChecker(1), q).Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if caps.API != GL || caps.Version != V(4, 6) {
		t.Errorf("caps = %v, want GL 4.6", caps)
	}
	if !caps.HasExtension("ARB_direct_state_access") || !caps.HasExtension("KHR_debug") {
		t.Errorf("Extensions() = %v", caps.Extensions())
	}
	if q.askedFor(glExtensions) {
		t.Error("glGetString(GL_EXTENSIONS) issued on a 4.6 context")
	}
	if caps.Adapter.DeviceType != gputypes.DeviceTypeDiscreteGPU {
		t.Errorf("DeviceType = %v", caps.Adapter.DeviceType)
	}
	if caps.ShadingLanguage != "4.60 NVIDIA" {
		t.Errorf("ShadingLanguage = %q", caps.ShadingLanguage)
	}
}

func TestGLProbeLegacyExtensions(t *testing.T) {
	q := &fakeQuerier{
		strings: map[uint32]string{
			glVersion:    "OpenGL ES 2.0 Mesa 23.0",
			glRenderer:   "llvmpipe (LLVM 15.0.7, 256 bits)",
			glExtensions: "GL_OES_vertex_array_object GL_EXT_occlusion_query_boolean  GL_OES_mapbuffer",
		},
		// Must be ignored below 3.0.
		indexed:  []string{"GL_NV_bogus"},
		integers: map[uint32]int32{glNumExtensions: 1},
	}
	caps, err := NewGLProbe(fakeChecker(1), q).Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if caps.API != GLES || caps.Version != V(2, 0) {
		t.Errorf("caps = %v, want GLES 2.0", caps)
	}
	if caps.NumExtensions() != 3 || caps.HasExtension("NV_bogus") {
		t.Errorf("Extensions() = %v", caps.Extensions())
	}
	if caps.Adapter.DeviceType != gputypes.DeviceTypeCPU {
		t.Errorf("DeviceType = %v, want CPU", caps.Adapter.DeviceType)
	}
}

func TestGLProbeNoStringFallbackFromVersion3(t *testing.T) {
	// Core profiles raise GL_INVALID_ENUM for glGetString(GL_EXTENSIONS).
	tests := []struct {
		name    string
		version string
	}{
		{"gl 3.0", "3.0 Mesa 10.1"},
		{"core 4.6", "4.6.0 core"},
		{"gles 3.2", "OpenGL ES 3.2 Mesa 23.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &fakeQuerier{
				strings: map[uint32]string{
					glVersion:    tt.version,
					glExtensions: "GL_ARB_vertex_array_object",
				},
			}
			caps, err := NewGLProbe(fakeChecker(1), q).Current()
			if err != nil {
				t.Fatalf("Current() error = %v", err)
			}
			if caps.NumExtensions() != 0 {
				t.Errorf("Extensions() = %v, want none", caps.Extensions())
			}
			if q.askedFor(glExtensions) {
				t.Error("glGetString(GL_EXTENSIONS) issued on a 3.0+ context")
			}
		})
	}
}

func TestProbeFunc(t *testing.T) {
	want := NewCapabilities(GL, V(3, 3))
	got, err := ProbeFunc(func() (*Capabilities, error) { return want, nil }).Current()
	if err != nil || got != want {
		t.Errorf("ProbeFunc.Current() = %v, %v", got, err)
	}
}
