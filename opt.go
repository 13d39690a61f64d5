package optional

import "fmt"

// Opt is a plain two-state optional: Some(v) or None. It is the inner
// representation of a present Field and the target of outward conversions.
//
// The zero value is None.
type Opt[T any] struct {
	some  bool
	value T
}

// Some returns an optional holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{some: true, value: v}
}

// None returns the empty optional.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// OptFromPtr converts a pointer to an optional, treating nil as None.
func OptFromPtr[T any](p *T) Opt[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether the optional holds a value.
func (o Opt[T]) IsSome() bool { return o.some }

// IsNone reports whether the optional is empty.
func (o Opt[T]) IsNone() bool { return !o.some }

// Get returns the value and whether one is held.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.some
}

// Must returns the value, panicking when the optional is None.
func (o Opt[T]) Must() T {
	if !o.some {
		panic("optional: Must on None")
	}
	return o.value
}

// Or returns the value, or def when the optional is None.
func (o Opt[T]) Or(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// OrElse returns the value, or fn() when the optional is None.
func (o Opt[T]) OrElse(fn func() T) T {
	if o.some {
		return o.value
	}
	return fn()
}

// OrZero returns the value, or the zero value of T.
func (o Opt[T]) OrZero() T {
	return o.value
}

// Ptr returns a pointer to a copy of the value, or nil when None.
func (o Opt[T]) Ptr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

func (o Opt[T]) String() string {
	if !o.some {
		return "none"
	}
	return fmt.Sprintf("%v", o.value)
}
