package sanitizer

// Func cleans one string value.
type Func func(string) string

// Apply runs transforms over value in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose returns a reusable pipeline of transforms.
func Compose(transforms ...Func) Func {
	return func(value string) string {
		for _, transform := range transforms {
			value = transform(value)
		}
		return value
	}
}
