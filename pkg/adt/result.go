package adt

import (
	"errors"
	"fmt"
)

// ErrUnconstructed is the panic value (wrapped with the concrete type) raised
// when a zero-value Result or Option reaches an eliminator.
var ErrUnconstructed = errors.New("adt: value was not built by a constructor")

type variant uint8

const (
	unconstructed variant = iota
	okVariant
	errVariant
	someVariant
	nothingVariant
)

// Unit is the payload of a success that carries no meaningful value.
type Unit struct{}

// Result is either Ok holding a T or Err holding an E.
type Result[T, E any] struct {
	kind  variant
	value T
	err   E
}

// Ok constructs a success.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{kind: okVariant, value: value}
}

// Err constructs a failure.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{kind: errVariant, err: err}
}

// FoldResult is the Result eliminator: exactly one of the handlers runs and
// its return value is returned.
//
// FoldResult : (Result[T, E], T -> R, E -> R) -> R.
func FoldResult[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	switch r.kind {
	case okVariant:
		return onOk(r.value)
	case errVariant:
		return onErr(r.err)
	default:
		panic(fmt.Errorf("%w: %T", ErrUnconstructed, r))
	}
}

// Match runs onOk or onErr depending on the variant.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	FoldResult(r,
		func(v T) Unit {
			onOk(v)
			return Unit{}
		},
		func(e E) Unit {
			onErr(e)
			return Unit{}
		})
}

func (r Result[T, E]) String() string {
	switch r.kind {
	case okVariant:
		return fmt.Sprintf("Ok(%v)", r.value)
	case errVariant:
		return fmt.Sprintf("Err(%v)", r.err)
	default:
		return "Result(<unconstructed>)"
	}
}
