// Package adt contains the two closed sum types used for explicit error and
// absence handling: Result[T, E] and Option[T].
//
// Values are built only through their constructors and read only through
// eliminators that take a handler for every variant, so a call site cannot
// forget the failure or absence path.
//
// Highlights:
// - Ok/Err: construct Result[T, E]
// - Some/Nothing: construct Option[T]
// - FoldResult/FoldOption: reduce to a concrete value via per-variant handlers
// - Match: run per-variant side effects
//
// Combinators live in the result and option subpackages.
package adt
