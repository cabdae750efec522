package gl

import "github.com/gogpu/glproc/abi"

// Native signatures shared by every command of the same shape.
var (
	sigVoid              = abi.New(abi.Void)                                                                       // void fn(void)
	sigUint32            = abi.New(abi.Uint32)                                                                     // uint32 fn(void)
	sigUint32Uint32      = abi.New(abi.Uint32, abi.Uint32)                                                         // uint32 fn(uint32)
	sigUint8Uint32       = abi.New(abi.Uint8, abi.Uint32)                                                          // GLboolean fn(uint32)
	sigPtrUint32         = abi.New(abi.Pointer, abi.Uint32)                                                        // const char* fn(uint32)
	sigPtrUint32x2       = abi.New(abi.Pointer, abi.Uint32, abi.Uint32)                                            // const char* fn(uint32, uint32)
	sigPtrMapRange       = abi.New(abi.Pointer, abi.Uint32, abi.Pointer, abi.Pointer, abi.Uint32)                  // void* fn(uint32, intptr, sizeiptr, uint32)
	sigVoidUint32        = abi.New(abi.Void, abi.Uint32)                                                           // void fn(uint32)
	sigVoidUint32x2      = abi.New(abi.Void, abi.Uint32, abi.Uint32)                                               // void fn(uint32, uint32)
	sigVoidUint32Ptr     = abi.New(abi.Void, abi.Uint32, abi.Pointer)                                              // void fn(uint32, void*)
	sigVoidUint32x2Ptr   = abi.New(abi.Void, abi.Uint32, abi.Uint32, abi.Pointer)                                  // void fn(uint32, uint32, void*)
	sigVoidInt32Ptr      = abi.New(abi.Void, abi.Int32, abi.Pointer)                                               // void fn(int32, void*)
	sigVoidInt32x4       = abi.New(abi.Void, abi.Int32, abi.Int32, abi.Int32, abi.Int32)                           // void fn(int32, int32, int32, int32)
	sigVoidFloat32x4     = abi.New(abi.Void, abi.Float32, abi.Float32, abi.Float32, abi.Float32)                   // void fn(float, float, float, float)
	sigVoidPtrPtr        = abi.New(abi.Void, abi.Pointer, abi.Pointer)                                             // void fn(void*, void*)
	sigVoidDrawArrays    = abi.New(abi.Void, abi.Uint32, abi.Int32, abi.Int32)                                     // void fn(uint32, int32, int32)
	sigVoidDrawInstanced = abi.New(abi.Void, abi.Uint32, abi.Int32, abi.Int32, abi.Int32)                          // void fn(uint32, int32, int32, int32)
	sigVoidBufferData    = abi.New(abi.Void, abi.Uint32, abi.Pointer, abi.Pointer, abi.Uint32)                     // void fn(uint32, sizeiptr, void*, uint32)
	sigVoidShaderSource  = abi.New(abi.Void, abi.Uint32, abi.Int32, abi.Pointer, abi.Pointer)                      // void fn(uint32, int32, char**, int32*)
	sigVoidAttribPointer = abi.New(abi.Void, abi.Uint32, abi.Int32, abi.Uint32, abi.Uint8, abi.Int32, abi.Pointer) // void fn(uint32, int32, uint32, GLboolean, int32, void*)
	sigVoidObjectLabel   = abi.New(abi.Void, abi.Uint32, abi.Uint32, abi.Int32, abi.Pointer)                       // void fn(uint32, uint32, int32, char*)
)
