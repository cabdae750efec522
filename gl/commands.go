package gl

import (
	"github.com/gogpu/glproc"
	"github.com/gogpu/glproc/abi"
)

// Tags shared by many commands.
var (
	gl10   = glproc.Core(glproc.GL, 1, 0)
	gl11   = glproc.Core(glproc.GL, 1, 1)
	gl13   = glproc.Core(glproc.GL, 1, 3)
	gl15   = glproc.Core(glproc.GL, 1, 5)
	gl20   = glproc.Core(glproc.GL, 2, 0)
	gl30   = glproc.Core(glproc.GL, 3, 0)
	gl31   = glproc.Core(glproc.GL, 3, 1)
	gl33   = glproc.Core(glproc.GL, 3, 3)
	gl43   = glproc.Core(glproc.GL, 4, 3)
	gl45   = glproc.Core(glproc.GL, 4, 5)
	gles20 = glproc.Core(glproc.GLES, 2, 0)
	gles30 = glproc.Core(glproc.GLES, 3, 0)
	gles32 = glproc.Core(glproc.GLES, 3, 2)

	arbVertexBufferObject  = glproc.MustExtension("GL_ARB_vertex_buffer_object")
	arbOcclusionQuery      = glproc.MustExtension("GL_ARB_occlusion_query")
	extOcclusionQueryBool  = glproc.MustExtension("GL_EXT_occlusion_query_boolean")
	oesVertexArrayObject   = glproc.MustExtension("GL_OES_vertex_array_object")
	appleVertexArrayObject = glproc.MustExtension("GL_APPLE_vertex_array_object")
	extFramebufferObject   = glproc.MustExtension("GL_EXT_framebuffer_object")
	angleInstancedArrays   = glproc.MustExtension("GL_ANGLE_instanced_arrays")
	khrDebug               = glproc.MustExtension("GL_KHR_debug")
)

// command indexes into table.
type command int

const (
	cmdActiveTexture command = iota
	cmdAttachShader
	cmdBeginQuery
	cmdBindBuffer
	cmdBindFramebuffer
	cmdBindTexture
	cmdBindVertexArray
	cmdBufferData
	cmdClear
	cmdClearColor
	cmdCompileShader
	cmdCreateBuffers
	cmdCreateProgram
	cmdCreateShader
	cmdDebugMessageCallback
	cmdDeleteBuffers
	cmdDeleteProgram
	cmdDeleteQueries
	cmdDeleteShader
	cmdDeleteTextures
	cmdDeleteVertexArrays
	cmdDisable
	cmdDrawArrays
	cmdDrawArraysInstanced
	cmdEnable
	cmdEnableVertexAttribArray
	cmdEndQuery
	cmdFinish
	cmdFlush
	cmdGenBuffers
	cmdGenFramebuffers
	cmdGenQueries
	cmdGenTextures
	cmdGenVertexArrays
	cmdGenerateMipmap
	cmdGetError
	cmdGetIntegerv
	cmdGetProgramiv
	cmdGetQueryObjectuiv
	cmdGetShaderiv
	cmdGetString
	cmdGetStringi
	cmdLinkProgram
	cmdMapBufferRange
	cmdObjectLabel
	cmdScissor
	cmdShaderSource
	cmdUnmapBuffer
	cmdUseProgram
	cmdVertexAttribDivisor
	cmdVertexAttribPointer
	cmdViewport

	numCommands
)

type entry struct {
	cmd *glproc.Command
	sig *abi.Signature
}

func def(sig *abi.Signature, name string, tags ...glproc.Tag) entry {
	return entry{cmd: glproc.MustCommand(name, tags...), sig: sig}
}

func ext(name string) glproc.Tag { return glproc.MustExtension(name) }

// table is the registry data. Tag order is preference order: core first,
// then the most widely shipped extension.
var table = [numCommands]entry{
	cmdActiveTexture:   def(sigVoidUint32, "glActiveTexture", gl13, gles20, ext("GL_ARB_multitexture")),
	cmdAttachShader:    def(sigVoidUint32x2, "glAttachShader", gl20, gles20),
	cmdBeginQuery:      def(sigVoidUint32x2, "glBeginQuery", gl15, gles30, arbOcclusionQuery, extOcclusionQueryBool),
	cmdBindBuffer:      def(sigVoidUint32x2, "glBindBuffer", gl15, gles20, arbVertexBufferObject),
	cmdBindFramebuffer: def(sigVoidUint32x2, "glBindFramebuffer", gl30, gles20, extFramebufferObject),
	cmdBindTexture:     def(sigVoidUint32x2, "glBindTexture", gl11, gles20, ext("GL_EXT_texture_object")),
	cmdBindVertexArray: def(sigVoidUint32, "glBindVertexArray", gl30, gles30, oesVertexArrayObject, appleVertexArrayObject),
	cmdBufferData:      def(sigVoidBufferData, "glBufferData", gl15, gles20, arbVertexBufferObject),
	cmdClear:           def(sigVoidUint32, "glClear", gl10, gles20),
	cmdClearColor:      def(sigVoidFloat32x4, "glClearColor", gl10, gles20),
	cmdCompileShader:   def(sigVoidUint32, "glCompileShader", gl20, gles20),
	cmdCreateBuffers:   def(sigVoidInt32Ptr, "glCreateBuffers", gl45, ext("GL_ARB_direct_state_access")),
	cmdCreateProgram:   def(sigUint32, "glCreateProgram", gl20, gles20),
	cmdCreateShader:    def(sigUint32Uint32, "glCreateShader", gl20, gles20),
	cmdDebugMessageCallback: def(sigVoidPtrPtr, "glDebugMessageCallback",
		gl43, gles32, khrDebug, ext("GL_ARB_debug_output")),
	cmdDeleteBuffers:      def(sigVoidInt32Ptr, "glDeleteBuffers", gl15, gles20, arbVertexBufferObject),
	cmdDeleteProgram:      def(sigVoidUint32, "glDeleteProgram", gl20, gles20),
	cmdDeleteQueries:      def(sigVoidInt32Ptr, "glDeleteQueries", gl15, gles30, arbOcclusionQuery, extOcclusionQueryBool),
	cmdDeleteShader:       def(sigVoidUint32, "glDeleteShader", gl20, gles20),
	cmdDeleteTextures:     def(sigVoidInt32Ptr, "glDeleteTextures", gl11, gles20, ext("GL_EXT_texture_object")),
	cmdDeleteVertexArrays: def(sigVoidInt32Ptr, "glDeleteVertexArrays", gl30, gles30, oesVertexArrayObject, appleVertexArrayObject),
	cmdDisable:            def(sigVoidUint32, "glDisable", gl10, gles20),
	cmdDrawArrays:         def(sigVoidDrawArrays, "glDrawArrays", gl11, gles20, ext("GL_EXT_vertex_array")),
	cmdDrawArraysInstanced: def(sigVoidDrawInstanced, "glDrawArraysInstanced",
		gl31, gles30, ext("GL_ARB_draw_instanced"), ext("GL_EXT_draw_instanced"), angleInstancedArrays, ext("GL_NV_draw_instanced")),
	cmdEnable:                  def(sigVoidUint32, "glEnable", gl10, gles20),
	cmdEnableVertexAttribArray: def(sigVoidUint32, "glEnableVertexAttribArray", gl20, gles20, ext("GL_ARB_vertex_program")),
	cmdEndQuery:                def(sigVoidUint32, "glEndQuery", gl15, gles30, arbOcclusionQuery, extOcclusionQueryBool),
	cmdFinish:                  def(sigVoid, "glFinish", gl10, gles20),
	cmdFlush:                   def(sigVoid, "glFlush", gl10, gles20),
	cmdGenBuffers:              def(sigVoidInt32Ptr, "glGenBuffers", gl15, gles20, arbVertexBufferObject),
	cmdGenFramebuffers:         def(sigVoidInt32Ptr, "glGenFramebuffers", gl30, gles20, extFramebufferObject),
	cmdGenQueries:              def(sigVoidInt32Ptr, "glGenQueries", gl15, gles30, arbOcclusionQuery, extOcclusionQueryBool),
	cmdGenTextures:             def(sigVoidInt32Ptr, "glGenTextures", gl11, gles20, ext("GL_EXT_texture_object")),
	cmdGenVertexArrays:         def(sigVoidInt32Ptr, "glGenVertexArrays", gl30, gles30, oesVertexArrayObject, appleVertexArrayObject),
	cmdGenerateMipmap:          def(sigVoidUint32, "glGenerateMipmap", gl30, gles20, extFramebufferObject),
	cmdGetError:                def(sigUint32, "glGetError", gl10, gles20),
	cmdGetIntegerv:             def(sigVoidUint32Ptr, "glGetIntegerv", gl10, gles20),
	cmdGetProgramiv:            def(sigVoidUint32x2Ptr, "glGetProgramiv", gl20, gles20),
	cmdGetQueryObjectuiv:       def(sigVoidUint32x2Ptr, "glGetQueryObjectuiv", gl15, gles30, arbOcclusionQuery, extOcclusionQueryBool),
	cmdGetShaderiv:             def(sigVoidUint32x2Ptr, "glGetShaderiv", gl20, gles20),
	cmdGetString:               def(sigPtrUint32, "glGetString", gl10, gles20),
	cmdGetStringi:              def(sigPtrUint32x2, "glGetStringi", gl30, gles30),
	cmdLinkProgram:             def(sigVoidUint32, "glLinkProgram", gl20, gles20),
	cmdMapBufferRange:          def(sigPtrMapRange, "glMapBufferRange", gl30, gles30, ext("GL_EXT_map_buffer_range")),
	cmdObjectLabel:             def(sigVoidObjectLabel, "glObjectLabel", gl43, gles32, khrDebug),
	cmdScissor:                 def(sigVoidInt32x4, "glScissor", gl10, gles20),
	cmdShaderSource:            def(sigVoidShaderSource, "glShaderSource", gl20, gles20),
	cmdUnmapBuffer:             def(sigUint8Uint32, "glUnmapBuffer", gl15, gles30, arbVertexBufferObject, ext("GL_OES_mapbuffer")),
	cmdUseProgram:              def(sigVoidUint32, "glUseProgram", gl20, gles20),
	cmdVertexAttribDivisor: def(sigVoidUint32x2, "glVertexAttribDivisor",
		gl33, gles30, ext("GL_ARB_instanced_arrays"), ext("GL_EXT_instanced_arrays"), angleInstancedArrays, ext("GL_NV_instanced_arrays")),
	cmdVertexAttribPointer: def(sigVoidAttribPointer, "glVertexAttribPointer", gl20, gles20, ext("GL_ARB_vertex_program")),
	cmdViewport:            def(sigVoidInt32x4, "glViewport", gl10, gles20),
}

// Commands returns the command table in a stable order. The returned
// commands are shared; build one glproc.Registry per GL context from them.
func Commands() []*glproc.Command {
	out := make([]*glproc.Command, len(table))
	for i, e := range table {
		out[i] = e.cmd
	}
	return out
}
