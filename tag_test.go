package glproc

import (
	"errors"
	"testing"
)

func TestExtensionSuffix(t *testing.T) {
	tests := []struct {
		ext    string
		suffix string
		symbol string
	}{
		{"OES_vertex_array_object", "OES", "glBindVertexArrayOES"},
		{"ARB_direct_state_access", "ARB", "glBindVertexArrayARB"},
		{"GL_APPLE_vertex_array_object", "APPLE", "glBindVertexArrayAPPLE"},
		{"EXT_foo", "EXT", "glBindVertexArrayEXT"},
		{"NV_command_list", "NV", "glBindVertexArrayNV"},
		{"3DFX_tbuffer", "3DFX", "glBindVertexArray3DFX"},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			e, err := NewExtension(tt.ext)
			if err != nil {
				t.Fatalf("NewExtension(%q) error = %v", tt.ext, err)
			}
			if e.Suffix() != tt.suffix {
				t.Errorf("Suffix() = %q, want %q", e.Suffix(), tt.suffix)
			}
			if got := e.SymbolName("glBindVertexArray"); got != tt.symbol {
				t.Errorf("SymbolName() = %q, want %q", got, tt.symbol)
			}
		})
	}
}

func TestExtensionNameStripsGLPrefix(t *testing.T) {
	e := MustExtension("GL_KHR_debug")
	if e.Name() != "KHR_debug" {
		t.Errorf("Name() = %q, want KHR_debug", e.Name())
	}
	if e.String() != "KHR_debug" {
		t.Errorf("String() = %q", e.String())
	}
}

func TestNewExtensionMalformed(t *testing.T) {
	for _, name := range []string{"", "GL_", "debug", "_debug", "KHR_", "FOO_bar", "arb_lowercase"} {
		t.Run(name, func(t *testing.T) {
			_, err := NewExtension(name)
			if !errors.Is(err, ErrMalformedExtensionTag) {
				t.Fatalf("NewExtension(%q) error = %v, want ErrMalformedExtensionTag", name, err)
			}
			var me *MalformedExtensionTagError
			if !errors.As(err, &me) || me.Extension != name {
				t.Errorf("error = %#v, want *MalformedExtensionTagError for %q", err, name)
			}
		})
	}
}

func TestMustExtensionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustExtension did not panic on unknown vendor")
		}
	}()
	MustExtension("ACME_rocket")
}

func TestCoreVersionSatisfiedBy(t *testing.T) {
	tests := []struct {
		name string
		tag  CoreVersion
		caps *Capabilities
		want bool
	}{
		{"equal", Core(GL, 3, 0), NewCapabilities(GL, V(3, 0)), true},
		{"newer minor", Core(GL, 3, 0), NewCapabilities(GL, V(3, 1)), true},
		{"newer major", Core(GL, 3, 3), NewCapabilities(GL, V(4, 0)), true},
		{"older", Core(GL, 3, 0), NewCapabilities(GL, V(2, 1)), false},
		{"older minor", Core(GL, 4, 5), NewCapabilities(GL, V(4, 3)), false},
		{"gles tag on gl", Core(GLES, 2, 0), NewCapabilities(GL, V(4, 6)), false},
		{"gl tag on gles", Core(GL, 2, 0), NewCapabilities(GLES, V(3, 2)), false},
		{"nil caps", Core(GL, 1, 0), nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tag.SatisfiedBy(tt.caps); got != tt.want {
				t.Errorf("SatisfiedBy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoreVersionSymbolName(t *testing.T) {
	if got := Core(GL, 4, 5).SymbolName("glCreateBuffers"); got != "glCreateBuffers" {
		t.Errorf("SymbolName() = %q", got)
	}
	if got := Core(GLES, 3, 0).String(); got != "GLES 3.0" {
		t.Errorf("String() = %q", got)
	}
}

func TestExtensionSatisfiedBy(t *testing.T) {
	e := MustExtension("EXT_foo")
	if !e.SatisfiedBy(NewCapabilities(GL, V(2, 1), "GL_EXT_foo")) {
		t.Error("extension with GL_ prefix in snapshot not matched")
	}
	if !e.SatisfiedBy(NewCapabilities(GLES, V(2, 0), "EXT_foo")) {
		t.Error("extension without prefix not matched")
	}
	if e.SatisfiedBy(NewCapabilities(GL, V(4, 6), "GL_EXT_foobar")) {
		t.Error("prefix match must not satisfy")
	}
	if e.SatisfiedBy(nil) {
		t.Error("nil caps satisfied extension")
	}
}
