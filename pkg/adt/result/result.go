package result

import (
	"iter"
	"slices"

	"github.com/ib-77/adt/pkg/adt"
)

// MapOk applies f to the value of an Ok. An Err is passed through and f is
// not called.
func MapOk[T, U, E any](r adt.Result[T, E], f func(T) U) adt.Result[U, E] {
	return adt.FoldResult(r,
		func(v T) adt.Result[U, E] {
			return adt.Ok[U, E](f(v))
		},
		adt.Err[U, E])
}

// AndThen feeds the value of an Ok into f and returns what f returns. An Err
// is passed through and f is not called, so a chain of AndThen calls stops at
// the first failure.
func AndThen[T, U, E any](r adt.Result[T, E], f func(T) adt.Result[U, E]) adt.Result[U, E] {
	return adt.FoldResult(r, f, adt.Err[U, E])
}

// MapErr applies f to the error of an Err. An Ok is passed through.
func MapErr[T, E, F any](r adt.Result[T, E], f func(E) F) adt.Result[T, F] {
	return adt.FoldResult(r,
		adt.Ok[T, F],
		func(e E) adt.Result[T, F] {
			return adt.Err[T](f(e))
		})
}

// DiscardOkValue replaces the value of an Ok with adt.Unit. An Err is passed
// through.
func DiscardOkValue[T, E any](r adt.Result[T, E]) adt.Result[adt.Unit, E] {
	return MapOk(r, func(T) adt.Unit { return adt.Unit{} })
}

// Collect turns a slice of Results into a Result of a slice. See CollectSeq.
func Collect[T, E any](results []adt.Result[T, E]) adt.Result[[]T, E] {
	return CollectSeq(slices.Values(results))
}

// CollectSeq walks seq left to right. If every element is Ok it returns Ok
// with the values in order (an empty, non-nil slice for an empty seq).
// Otherwise it returns the first Err and stops pulling from seq.
func CollectSeq[T, E any](seq iter.Seq[adt.Result[T, E]]) adt.Result[[]T, E] {
	values := make([]T, 0)

	var (
		failed   bool
		firstErr E
	)
	for r := range seq {
		stop := adt.FoldResult(r,
			func(v T) bool {
				values = append(values, v)
				return false
			},
			func(e E) bool {
				failed, firstErr = true, e
				return true
			})
		if stop {
			break
		}
	}

	if failed {
		return adt.Err[[]T](firstErr)
	}
	return adt.Ok[[]T, E](values)
}
