package zero

// ZeroValue returns the zero value of the given type.
func ZeroValue[T any]() T {
	var t T
	return t
}

// ZeroValuePtr returns a pointer to a new zero value of the given type.
func ZeroValuePtr[T any]() *T {
	var t T
	return &t
}

// IsZero returns whether the given value equals the zero value of its type.
func IsZero[T comparable](value T) bool {
	var t T
	return value == t
}
