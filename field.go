// Package optional provides a tri-state field type for serialization.
//
// A Field distinguishes three states a serialized field can be in: missing
// from the input entirely, present with an explicit null, or present with a
// value. The zero value of Field is Missing, so decoding a document that
// lacks a key leaves the corresponding Field in the Missing state without
// any extra machinery.
//
// The two present states carry an Opt, a plain two-state optional. Most
// operations come in two tiers: value-tier operations (Get, ValueOr, Map)
// see only the present-with-value state, while present-tier operations
// (Present, PresentOr, MapPresent) operate on the inner Opt and distinguish
// an explicit null from a value.
package optional

import "fmt"

// Field is a tri-state serialization field: Missing, Null, or a value.
//
// The states are mutually exclusive. The zero value is Missing.
type Field[T any] struct {
	present bool
	inner   Opt[T]
}

// Of returns a Field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{present: true, inner: Some(v)}
}

// Null returns a present Field with an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{present: true}
}

// Missing returns the missing Field. It is the zero value, spelled out.
func Missing[T any]() Field[T] {
	return Field[T]{}
}

// FromOpt lifts a plain optional into a present Field: Some(v) becomes a
// value, None becomes Null. A missing Field cannot be produced this way.
func FromOpt[T any](o Opt[T]) Field[T] {
	return Field[T]{present: true, inner: o}
}

// FromPtr lifts a pointer into a present Field, treating nil as Null.
func FromPtr[T any](p *T) Field[T] {
	if p == nil {
		return Null[T]()
	}
	return Of(*p)
}

// IsMissing reports whether the field was absent.
func (f Field[T]) IsMissing() bool { return !f.present }

// IsPresent reports whether the field was present, as null or as a value.
func (f Field[T]) IsPresent() bool { return f.present }

// HasValue reports whether the field holds a value.
func (f Field[T]) HasValue() bool { return f.present && f.inner.some }

// IsZero reports whether the field is Missing. It is the hook consulted by
// the encoders' omitzero directive.
func (f Field[T]) IsZero() bool { return !f.present }

// Get returns the value and whether the field holds one.
func (f Field[T]) Get() (T, bool) {
	if f.present {
		return f.inner.Get()
	}
	var zero T
	return zero, false
}

// MustValue returns the value, panicking when the field is Missing or Null.
func (f Field[T]) MustValue() T {
	v, ok := f.Get()
	if !ok {
		panic(fmt.Sprintf("optional: MustValue on %s field", f.state()))
	}
	return v
}

// ValueOr returns the value, or def when the field is Missing or Null.
func (f Field[T]) ValueOr(def T) T {
	if v, ok := f.Get(); ok {
		return v
	}
	return def
}

// ValueOrElse returns the value, or fn() when the field is Missing or Null.
func (f Field[T]) ValueOrElse(fn func() T) T {
	if v, ok := f.Get(); ok {
		return v
	}
	return fn()
}

// ValueOrZero returns the value, or the zero value of T.
func (f Field[T]) ValueOrZero() T {
	v, _ := f.Get()
	return v
}

// Ptr returns a pointer to a copy of the value, or nil when the field is
// Missing or Null.
func (f Field[T]) Ptr() *T {
	if v, ok := f.Get(); ok {
		return &v
	}
	return nil
}

// Present returns the inner optional and whether the field was present.
func (f Field[T]) Present() (Opt[T], bool) {
	return f.inner, f.present
}

// MustPresent returns the inner optional, panicking when the field is
// Missing.
func (f Field[T]) MustPresent() Opt[T] {
	if !f.present {
		panic("optional: MustPresent on missing field")
	}
	return f.inner
}

// PresentOr returns the inner optional, or def when the field is Missing.
func (f Field[T]) PresentOr(def Opt[T]) Opt[T] {
	if f.present {
		return f.inner
	}
	return def
}

// PresentOrElse returns the inner optional, or fn() when the field is
// Missing.
func (f Field[T]) PresentOrElse(fn func() Opt[T]) Opt[T] {
	if f.present {
		return f.inner
	}
	return fn()
}

// Opt collapses the field outward to a plain optional. Missing and Null
// both become None.
func (f Field[T]) Opt() Opt[T] {
	if !f.present {
		return None[T]()
	}
	return f.inner
}

func (f Field[T]) state() string {
	switch {
	case !f.present:
		return "missing"
	case !f.inner.some:
		return "null"
	default:
		return "value"
	}
}

func (f Field[T]) String() string {
	if f.HasValue() {
		return fmt.Sprintf("%v", f.inner.value)
	}
	return f.state()
}
