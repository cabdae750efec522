package platform

// invalidWGLAddress reports whether p is one of the values some
// wglGetProcAddress implementations return instead of NULL.
func invalidWGLAddress(p uintptr) bool {
	switch p {
	case 0, 1, 2, 3, ^uintptr(0):
		return true
	}
	return false
}
