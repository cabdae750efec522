package gl

import (
	"sync"
	"unsafe"

	"github.com/gogpu/glproc"
	"github.com/gogpu/glproc/abi"
)

// fakeDriver exports a fixed symbol set and records calls made through it.
// Addresses are 0x1000 + index into names.
type fakeDriver struct {
	mu      sync.Mutex
	names   []string
	strings map[uint32][]byte
	ints    map[uint32]int32
	exts    [][]byte
	calls   []string
	onCall  func(name string, ret unsafe.Pointer, args []unsafe.Pointer)
}

func newFakeDriver(symbols ...string) *fakeDriver {
	return &fakeDriver{
		names:   symbols,
		strings: map[uint32][]byte{},
		ints:    map[uint32]int32{},
	}
}

func (d *fakeDriver) setString(name uint32, s string) { d.strings[name] = abi.CString(s) }

func (d *fakeDriver) ProcAddress(name string) uintptr {
	for i, n := range d.names {
		if n == name {
			return uintptr(0x1000 + i)
		}
	}
	return 0
}

func (d *fakeDriver) CurrentContext() uintptr { return 1 }

func (d *fakeDriver) symbol(fn uintptr) string {
	return d.names[fn-0x1000]
}

func (d *fakeDriver) Invoke(sig *abi.Signature, fn uintptr, ret unsafe.Pointer, args []unsafe.Pointer) error {
	if len(args) != sig.NumArgs() {
		panic("argument count mismatch for " + sig.String())
	}
	name := d.symbol(fn)
	d.mu.Lock()
	d.calls = append(d.calls, name)
	d.mu.Unlock()

	switch name {
	case "glGetString":
		s := d.strings[*(*uint32)(args[0])]
		if len(s) > 0 {
			*(*uintptr)(ret) = uintptr(unsafe.Pointer(&s[0]))
		}
	case "glGetStringi":
		i := *(*uint32)(args[1])
		if int(i) < len(d.exts) {
			*(*uintptr)(ret) = uintptr(unsafe.Pointer(&d.exts[i][0]))
		}
	case "glGetIntegerv":
		out := *(*unsafe.Pointer)(args[1])
		*(*int32)(out) = d.ints[*(*uint32)(args[0])]
	}
	if d.onCall != nil {
		d.onCall(name, ret, args)
	}
	return nil
}

func (d *fakeDriver) called() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.calls...)
}

// fixedProbe reports a fixed snapshot.
func fixedProbe(c *glproc.Capabilities) glproc.Probe {
	return glproc.ProbeFunc(func() (*glproc.Capabilities, error) {
		if c == nil {
			return nil, glproc.ErrNoActiveContext
		}
		return c, nil
	})
}
