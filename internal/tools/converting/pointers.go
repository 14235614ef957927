package converting

// PointerToValue is used for optional numeric bounds and settings.
func PointerToValue[T any](v T) *T {
	return &v
}
