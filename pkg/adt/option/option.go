package option

import "github.com/ib-77/adt/pkg/adt"

// MapSome applies f to a present value. Nothing is passed through and f is
// not called.
func MapSome[T, U any](o adt.Option[T], f func(T) U) adt.Option[U] {
	return adt.FoldOption(o,
		func(v T) adt.Option[U] {
			return adt.Some(f(v))
		},
		adt.Nothing[U])
}

// AndThen feeds a present value into f and returns what f returns. Nothing is
// passed through and f is not called.
func AndThen[T, U any](o adt.Option[T], f func(T) adt.Option[U]) adt.Option[U] {
	return adt.FoldOption(o, f, adt.Nothing[U])
}

// FromOptional converts a nil-able pointer into an Option. A nil pointer
// gives Nothing; otherwise the pointee is copied into Some.
func FromOptional[T any](value *T) adt.Option[T] {
	if value == nil {
		return adt.Nothing[T]()
	}

	return adt.Some(*value)
}

// RequireSome lifts an Option into a Result, using err for the Nothing case.
// err is evaluated by the caller even when o is Some.
func RequireSome[T, E any](o adt.Option[T], err E) adt.Result[T, E] {
	return adt.FoldOption(o,
		adt.Ok[T, E],
		func() adt.Result[T, E] {
			return adt.Err[T](err)
		})
}
