package gl

import (
	"runtime"
	"unsafe"

	"github.com/gogpu/glproc/abi"
)

func (c *Context) call(cmd command, ret unsafe.Pointer, args ...unsafe.Pointer) {
	c.procs[cmd].MustCall(ret, args...)
}

func boolean(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// ActiveTexture selects the active texture unit.
func (c *Context) ActiveTexture(texture uint32) {
	c.call(cmdActiveTexture, nil, unsafe.Pointer(&texture))
}

func (c *Context) AttachShader(program, shader uint32) {
	c.call(cmdAttachShader, nil, unsafe.Pointer(&program), unsafe.Pointer(&shader))
}

func (c *Context) BeginQuery(target, id uint32) {
	c.call(cmdBeginQuery, nil, unsafe.Pointer(&target), unsafe.Pointer(&id))
}

func (c *Context) BindBuffer(target, buffer uint32) {
	c.call(cmdBindBuffer, nil, unsafe.Pointer(&target), unsafe.Pointer(&buffer))
}

func (c *Context) BindFramebuffer(target, framebuffer uint32) {
	c.call(cmdBindFramebuffer, nil, unsafe.Pointer(&target), unsafe.Pointer(&framebuffer))
}

func (c *Context) BindTexture(target, texture uint32) {
	c.call(cmdBindTexture, nil, unsafe.Pointer(&target), unsafe.Pointer(&texture))
}

// BindVertexArray binds a vertex array object. On GLES 2.0 it resolves to
// glBindVertexArrayOES when available.
func (c *Context) BindVertexArray(array uint32) {
	c.call(cmdBindVertexArray, nil, unsafe.Pointer(&array))
}

// BufferData creates and initializes the data store of the bound buffer.
// data may be nil.
func (c *Context) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	sz := uintptr(size)
	c.call(cmdBufferData, nil, unsafe.Pointer(&target), unsafe.Pointer(&sz), unsafe.Pointer(&data), unsafe.Pointer(&usage))
}

func (c *Context) Clear(mask uint32) {
	c.call(cmdClear, nil, unsafe.Pointer(&mask))
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.call(cmdClearColor, nil, unsafe.Pointer(&r), unsafe.Pointer(&g), unsafe.Pointer(&b), unsafe.Pointer(&a))
}

func (c *Context) CompileShader(shader uint32) {
	c.call(cmdCompileShader, nil, unsafe.Pointer(&shader))
}

// CreateBuffers creates n buffer objects without binding them.
// Requires GL 4.5 or ARB_direct_state_access.
func (c *Context) CreateBuffers(n int32, buffers *uint32) {
	p := unsafe.Pointer(buffers)
	c.call(cmdCreateBuffers, nil, unsafe.Pointer(&n), unsafe.Pointer(&p))
}

func (c *Context) CreateProgram() uint32 {
	var ret uint32
	c.call(cmdCreateProgram, unsafe.Pointer(&ret))
	return ret
}

func (c *Context) CreateShader(typ uint32) uint32 {
	var ret uint32
	c.call(cmdCreateShader, unsafe.Pointer(&ret), unsafe.Pointer(&typ))
	return ret
}

// DebugMessageCallback installs a native debug callback. callback must be a
// C-callable function pointer.
func (c *Context) DebugMessageCallback(callback uintptr, userParam unsafe.Pointer) {
	c.call(cmdDebugMessageCallback, nil, unsafe.Pointer(&callback), unsafe.Pointer(&userParam))
}

func (c *Context) DeleteBuffers(n int32, buffers *uint32) {
	p := unsafe.Pointer(buffers)
	c.call(cmdDeleteBuffers, nil, unsafe.Pointer(&n), unsafe.Pointer(&p))
}

func (c *Context) DeleteProgram(program uint32) {
	c.call(cmdDeleteProgram, nil, unsafe.Pointer(&program))
}

func (c *Context) DeleteQueries(n int32, ids *uint32) {
	p := unsafe.Pointer(ids)
	c.call(cmdDeleteQueries, nil, unsafe.Pointer(&n), unsafe.Pointer(&p))
}

func (c *Context) DeleteShader(shader uint32) {
	c.call(cmdDeleteShader, nil, unsafe.Pointer(&shader))
}

func (c *Context) DeleteTextures(n int32, textures *uint32) {
	p := unsafe.Pointer(textures)
	c.call(cmdDeleteTextures, nil, unsafe.Pointer(&n), unsafe.Pointer(&p))
}

func (c *Context) DeleteVertexArrays(n int32, arrays *uint32) {
	p := unsafe.Pointer(arrays)
	c.call(cmdDeleteVertexArrays, nil, unsafe.Pointer(&n), unsafe.Pointer(&p))
}

func (c *Context) Disable(capability uint32) {
	c.call(cmdDisable, nil, unsafe.Pointer(&capability))
}

func (c *Context) DrawArrays(mode uint32, first, count int32) {
	c.call(cmdDrawArrays, nil, unsafe.Pointer(&mode), unsafe.Pointer(&first), unsafe.Pointer(&count))
}

func (c *Context) DrawArraysInstanced(mode uint32, first, count, instances int32) {
	c.call(cmdDrawArraysInstanced, nil,
		unsafe.Pointer(&mode), unsafe.Pointer(&first), unsafe.Pointer(&count), unsafe.Pointer(&instances))
}

func (c *Context) Enable(capability uint32) {
	c.call(cmdEnable, nil, unsafe.Pointer(&capability))
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.call(cmdEnableVertexAttribArray, nil, unsafe.Pointer(&index))
}

func (c *Context) EndQuery(target uint32) {
	c.call(cmdEndQuery, nil, unsafe.Pointer(&target))
}

func (c *Context) Finish() { c.call(cmdFinish, nil) }

func (c *Context) Flush() { c.call(cmdFlush, nil) }

func (c *Context) GenBuffers(n int32, buffers *uint32) {
	p := unsafe.Pointer(buffers)
	c.call(cmdGenBuffers, nil, unsafe.Pointer(&n), unsafe.Pointer(&p))
}

func (c *Context) GenFramebuffers(n int32, framebuffers *uint32) {
	p := unsafe.Pointer(framebuffers)
	c.call(cmdGenFramebuffers, nil, unsafe.Pointer(&n), unsafe.Pointer(&p))
}

// GenQueries generates query object names. On GLES 2.0 it resolves to
// glGenQueriesEXT under EXT_occlusion_query_boolean.
func (c *Context) GenQueries(n int32, ids *uint32) {
	p := unsafe.Pointer(ids)
	c.call(cmdGenQueries, nil, unsafe.Pointer(&n), unsafe.Pointer(&p))
}

func (c *Context) GenTextures(n int32, textures *uint32) {
	p := unsafe.Pointer(textures)
	c.call(cmdGenTextures, nil, unsafe.Pointer(&n), unsafe.Pointer(&p))
}

// GenVertexArrays generates n vertex array object names into arrays.
func (c *Context) GenVertexArrays(n int32, arrays *uint32) {
	p := unsafe.Pointer(arrays)
	c.call(cmdGenVertexArrays, nil, unsafe.Pointer(&n), unsafe.Pointer(&p))
}

func (c *Context) GenerateMipmap(target uint32) {
	c.call(cmdGenerateMipmap, nil, unsafe.Pointer(&target))
}

func (c *Context) GetError() uint32 {
	var ret uint32
	c.call(cmdGetError, unsafe.Pointer(&ret))
	return ret
}

func (c *Context) GetIntegerv(pname uint32, data *int32) {
	p := unsafe.Pointer(data)
	c.call(cmdGetIntegerv, nil, unsafe.Pointer(&pname), unsafe.Pointer(&p))
}

func (c *Context) GetProgramiv(program, pname uint32, params *int32) {
	p := unsafe.Pointer(params)
	c.call(cmdGetProgramiv, nil, unsafe.Pointer(&program), unsafe.Pointer(&pname), unsafe.Pointer(&p))
}

func (c *Context) GetQueryObjectuiv(id, pname uint32, params *uint32) {
	p := unsafe.Pointer(params)
	c.call(cmdGetQueryObjectuiv, nil, unsafe.Pointer(&id), unsafe.Pointer(&pname), unsafe.Pointer(&p))
}

func (c *Context) GetShaderiv(shader, pname uint32, params *int32) {
	p := unsafe.Pointer(params)
	c.call(cmdGetShaderiv, nil, unsafe.Pointer(&shader), unsafe.Pointer(&pname), unsafe.Pointer(&p))
}

// GetString returns a GL string such as VERSION, or "" for an invalid name.
func (c *Context) GetString(name uint32) string {
	var ptr uintptr
	c.call(cmdGetString, unsafe.Pointer(&ptr), unsafe.Pointer(&name))
	return abi.GoString(ptr)
}

func (c *Context) GetStringi(name, index uint32) string {
	var ptr uintptr
	c.call(cmdGetStringi, unsafe.Pointer(&ptr), unsafe.Pointer(&name), unsafe.Pointer(&index))
	return abi.GoString(ptr)
}

func (c *Context) LinkProgram(program uint32) {
	c.call(cmdLinkProgram, nil, unsafe.Pointer(&program))
}

// MapBufferRange maps part of the bound buffer. It returns nil on failure.
func (c *Context) MapBufferRange(target uint32, offset, length int, access uint32) unsafe.Pointer {
	var ret unsafe.Pointer
	off, n := uintptr(offset), uintptr(length)
	c.call(cmdMapBufferRange, unsafe.Pointer(&ret),
		unsafe.Pointer(&target), unsafe.Pointer(&off), unsafe.Pointer(&n), unsafe.Pointer(&access))
	return ret
}

// ObjectLabel attaches a debug label to an object.
func (c *Context) ObjectLabel(identifier, name uint32, label string) {
	cs := abi.CString(label)
	length := int32(len(label))
	p := unsafe.Pointer(&cs[0])
	c.call(cmdObjectLabel, nil, unsafe.Pointer(&identifier), unsafe.Pointer(&name), unsafe.Pointer(&length), unsafe.Pointer(&p))
	runtime.KeepAlive(cs)
}

func (c *Context) Scissor(x, y, width, height int32) {
	c.call(cmdScissor, nil, unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&width), unsafe.Pointer(&height))
}

// ShaderSource replaces the source of shader with a single string.
func (c *Context) ShaderSource(shader uint32, source string) {
	cs := abi.CString(source)
	str := unsafe.Pointer(&cs[0])
	strs := unsafe.Pointer(&str)
	count := int32(1)
	var lengths unsafe.Pointer // NUL-terminated
	c.call(cmdShaderSource, nil, unsafe.Pointer(&shader), unsafe.Pointer(&count), unsafe.Pointer(&strs), unsafe.Pointer(&lengths))
	runtime.KeepAlive(cs)
}

// UnmapBuffer releases a mapping. It returns false if the store was
// corrupted while mapped.
func (c *Context) UnmapBuffer(target uint32) bool {
	var ret uint8
	c.call(cmdUnmapBuffer, unsafe.Pointer(&ret), unsafe.Pointer(&target))
	return ret != 0
}

func (c *Context) UseProgram(program uint32) {
	c.call(cmdUseProgram, nil, unsafe.Pointer(&program))
}

func (c *Context) VertexAttribDivisor(index, divisor uint32) {
	c.call(cmdVertexAttribDivisor, nil, unsafe.Pointer(&index), unsafe.Pointer(&divisor))
}

// VertexAttribPointer describes a vertex attribute. offset is a byte offset
// into the bound ARRAY_BUFFER.
func (c *Context) VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr) {
	norm := boolean(normalized)
	c.call(cmdVertexAttribPointer, nil,
		unsafe.Pointer(&index), unsafe.Pointer(&size), unsafe.Pointer(&typ),
		unsafe.Pointer(&norm), unsafe.Pointer(&stride), unsafe.Pointer(&offset))
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.call(cmdViewport, nil, unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&width), unsafe.Pointer(&height))
}
