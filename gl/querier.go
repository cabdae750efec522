package gl

import (
	"sync/atomic"
	"unsafe"

	"github.com/gogpu/glproc"
	"github.com/gogpu/glproc/abi"
)

// Querier implements glproc.Querier with glGetString, glGetStringi and
// glGetIntegerv bound straight through the platform lookup. These three
// feed the capability probe, so they cannot be resolved through it.
type Querier struct {
	lookup glproc.Lookup
	inv    abi.Invoker

	getString   bootstrapProc
	getStringi  bootstrapProc
	getIntegerv bootstrapProc
}

var _ glproc.Querier = (*Querier)(nil)

// NewQuerier returns a Querier. A nil invoker selects abi.Native.
func NewQuerier(lookup glproc.Lookup, inv abi.Invoker) *Querier {
	if inv == nil {
		inv = abi.Native
	}
	return &Querier{
		lookup:      lookup,
		inv:         inv,
		getString:   bootstrapProc{name: "glGetString", sig: sigPtrUint32},
		getStringi:  bootstrapProc{name: "glGetStringi", sig: sigPtrUint32x2},
		getIntegerv: bootstrapProc{name: "glGetIntegerv", sig: sigVoidUint32Ptr},
	}
}

// bootstrapProc caches the first non-zero address of one entry point.
type bootstrapProc struct {
	name string
	sig  *abi.Signature
	addr atomic.Uintptr
}

func (b *bootstrapProc) resolve(l glproc.Lookup) uintptr {
	if a := b.addr.Load(); a != 0 {
		return a
	}
	a := l.ProcAddress(b.name)
	if a != 0 {
		b.addr.Store(a)
	}
	return a
}

func (q *Querier) call(b *bootstrapProc, ret unsafe.Pointer, args ...unsafe.Pointer) bool {
	fn := b.resolve(q.lookup)
	if fn == 0 {
		return false
	}
	if err := q.inv.Invoke(b.sig, fn, ret, args); err != nil {
		glproc.Logger().Debug("gl: query failed", "symbol", b.name, "err", err)
		return false
	}
	return true
}

// GetString calls glGetString. It returns "" if the entry point is missing.
func (q *Querier) GetString(name uint32) string {
	var ptr uintptr
	if !q.call(&q.getString, unsafe.Pointer(&ptr), unsafe.Pointer(&name)) {
		return ""
	}
	return abi.GoString(ptr)
}

// GetStringi calls glGetStringi. It returns "" on contexts older than 3.0.
func (q *Querier) GetStringi(name, index uint32) string {
	var ptr uintptr
	if !q.call(&q.getStringi, unsafe.Pointer(&ptr), unsafe.Pointer(&name), unsafe.Pointer(&index)) {
		return ""
	}
	return abi.GoString(ptr)
}

// GetInteger calls glGetIntegerv for a single value.
func (q *Querier) GetInteger(pname uint32) int32 {
	var v int32
	p := unsafe.Pointer(&v)
	if !q.call(&q.getIntegerv, nil, unsafe.Pointer(&pname), unsafe.Pointer(&p)) {
		return 0
	}
	return v
}
