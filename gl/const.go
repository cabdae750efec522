package gl

// Enumerants used by the typed methods and by the capability query.
const (
	NO_ERROR = 0

	COLOR_BUFFER_BIT   = 0x00004000
	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400

	POINTS         = 0x0000
	LINES          = 0x0001
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005

	BLEND        = 0x0BE2
	DEPTH_TEST   = 0x0B71
	SCISSOR_TEST = 0x0C11
	CULL_FACE    = 0x0B44

	VENDOR                   = 0x1F00
	RENDERER                 = 0x1F01
	VERSION                  = 0x1F02
	EXTENSIONS               = 0x1F03
	SHADING_LANGUAGE_VERSION = 0x8B8C
	NUM_EXTENSIONS           = 0x821D
	MAJOR_VERSION            = 0x821B
	MINOR_VERSION            = 0x821C

	UNSIGNED_BYTE = 0x1401
	FLOAT         = 0x1406

	TEXTURE_2D = 0x0DE1
	TEXTURE0   = 0x84C0

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STATIC_DRAW          = 0x88E4
	DYNAMIC_DRAW         = 0x88E8

	MAP_READ_BIT             = 0x0001
	MAP_WRITE_BIT            = 0x0002
	MAP_INVALIDATE_RANGE_BIT = 0x0004

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84

	FRAMEBUFFER = 0x8D40

	ANY_SAMPLES_PASSED     = 0x8C2F
	QUERY_RESULT           = 0x8866
	QUERY_RESULT_AVAILABLE = 0x8867

	DEBUG_OUTPUT_SYNCHRONOUS = 0x8242
	DEBUG_OUTPUT             = 0x92E0

	BUFFER  = 0x82E0
	SHADER  = 0x82E1
	PROGRAM = 0x82E2
)
