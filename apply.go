package morph

// Apply runs the given transforms over a value in order and returns the final
// result. Useful for one-off transformation chains.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose builds a reusable transformation pipeline from the given transforms.
// Preferred over repeated Apply calls when the same chain is used multiple times.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
