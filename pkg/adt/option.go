package adt

import "fmt"

// Option is either Some holding a T or Nothing.
type Option[T any] struct {
	kind  variant
	value T
}

// Some wraps a present value.
func Some[T any](value T) Option[T] {
	return Option[T]{kind: someVariant, value: value}
}

// Nothing constructs the absent variant. T is still needed for type checking.
func Nothing[T any]() Option[T] {
	return Option[T]{kind: nothingVariant}
}

// FoldOption is the Option eliminator.
//
// FoldOption : (Option[T], T -> R, () -> R) -> R.
func FoldOption[T, R any](o Option[T], onSome func(T) R, onNothing func() R) R {
	switch o.kind {
	case someVariant:
		return onSome(o.value)
	case nothingVariant:
		return onNothing()
	default:
		panic(fmt.Errorf("%w: %T", ErrUnconstructed, o))
	}
}

// Match runs onSome or onNothing depending on the variant.
func (o Option[T]) Match(onSome func(T), onNothing func()) {
	FoldOption(o,
		func(v T) Unit {
			onSome(v)
			return Unit{}
		},
		func() Unit {
			onNothing()
			return Unit{}
		})
}

func (o Option[T]) String() string {
	switch o.kind {
	case someVariant:
		return fmt.Sprintf("Some(%v)", o.value)
	case nothingVariant:
		return "Nothing()"
	default:
		return "Option(<unconstructed>)"
	}
}
