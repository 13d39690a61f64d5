package optional

// The combinators come in two tiers. The present tier transforms the inner
// optional of a present field and leaves Missing alone; the value tier is
// derived from it by lifting a plain value function over the inner optional,
// so Null passes through untouched as well.

// MapOpt applies fn to the value of a plain optional, leaving None as None.
func MapOpt[T, U any](o Opt[T], fn func(T) U) Opt[U] {
	if !o.some {
		return None[U]()
	}
	return Some(fn(o.value))
}

// lift turns a value function into an inner-optional function.
func lift[T, U any](fn func(T) U) func(Opt[T]) Opt[U] {
	return func(o Opt[T]) Opt[U] { return MapOpt(o, fn) }
}

// MapPresent applies fn to the inner optional of a present field. A Missing
// field stays Missing and fn is not invoked.
func MapPresent[T, U any](f Field[T], fn func(Opt[T]) Opt[U]) Field[U] {
	if !f.present {
		return Field[U]{}
	}
	return FromOpt(fn(f.inner))
}

// Map applies fn to the value of a field. Missing stays Missing, Null stays
// Null, and fn is not invoked for either.
func Map[T, U any](f Field[T], fn func(T) U) Field[U] {
	return MapPresent(f, lift(fn))
}

// MapPresentOr applies fn to the inner optional of a present field, or
// returns def when the field is Missing.
func MapPresentOr[T, U any](f Field[T], def Opt[U], fn func(Opt[T]) Opt[U]) Opt[U] {
	if !f.present {
		return def
	}
	return fn(f.inner)
}

// MapOr applies fn to the value of a field, or returns def when the field
// is Missing or Null.
func MapOr[T, U any](f Field[T], def U, fn func(T) U) U {
	if v, ok := f.Get(); ok {
		return fn(v)
	}
	return def
}

// MapPresentOrElse applies fn to the inner optional of a present field, or
// returns def() when the field is Missing.
func MapPresentOrElse[T, U any](f Field[T], def func() Opt[U], fn func(Opt[T]) Opt[U]) Opt[U] {
	if !f.present {
		return def()
	}
	return fn(f.inner)
}

// MapOrElse applies fn to the value of a field, or returns def() when the
// field is Missing or Null.
func MapOrElse[T, U any](f Field[T], def func() U, fn func(T) U) U {
	if v, ok := f.Get(); ok {
		return fn(v)
	}
	return def()
}

// Contains reports whether the field holds exactly v.
func Contains[T comparable](f Field[T], v T) bool {
	got, ok := f.Get()
	return ok && got == v
}
