// Package option contains pure combinators over adt.Option[T].
//
// Highlights:
// - MapSome: transform a present value
// - AndThen: chain an Option-returning step, short-circuiting on Nothing
// - FromOptional: the boundary conversion from a nil-able pointer
// - RequireSome: lift an Option into an adt.Result with a supplied error
package option
