package advanced

// Result is Ok with a value or Err with a problem.  The number
// configuration carries one per base: Ok holds the conversion applied
// to a recognized literal, Err holds the problem reported when a
// literal of that base shows up anyway.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok builds a successful Result.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err builds a failed Result.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether the result is Ok.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// Value returns the Ok value.  Calling it on an Err result is a
// programming error and panics.
func (r Result[T, E]) Value() T {
	if !r.ok {
		panic("sprout: Value called on Err result")
	}
	return r.value
}

// Error returns the Err value.  Calling it on an Ok result is a
// programming error and panics.
func (r Result[T, E]) Error() E {
	if r.ok {
		panic("sprout: Error called on Ok result")
	}
	return r.err
}
