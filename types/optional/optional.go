// Package optional provides a container that either holds a value or is empty.
package optional

// Optional is a value of type T that may be absent.
// The zero value is an empty Optional.
type Optional[T any] struct {
	value T
	isSet bool
}

// Some returns an Optional holding the given value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, isSet: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSet returns true if the Optional holds a value.
func (o Optional[T]) IsSet() bool {
	return o.isSet
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOr returns the held value, or def if the Optional is empty.
func (o Optional[T]) GetOr(def T) T {
	if o.isSet {
		return o.value
	}
	return def
}

// Unwrap returns the held value, panicking if the Optional is empty.
func (o Optional[T]) Unwrap() T {
	if !o.isSet {
		panic("optional: unwrap of empty value")
	}
	return o.value
}

// Set stores a value in the Optional.
func (o *Optional[T]) Set(value T) {
	o.value = value
	o.isSet = true
}

// Unset empties the Optional.
func (o *Optional[T]) Unset() {
	var zero T
	o.value = zero
	o.isSet = false
}
