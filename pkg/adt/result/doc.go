// Package result contains pure combinators over adt.Result[T, E].
//
// Highlights:
// - MapOk: transform the success value
// - AndThen: chain a Result-returning step, short-circuiting on Err
// - MapErr: translate the error type at a module boundary
// - DiscardOkValue: keep only success or failure
// - Collect/CollectSeq: fail-fast join of many Results, in input order
//
// None of these recover panics raised by caller-supplied functions.
package result
