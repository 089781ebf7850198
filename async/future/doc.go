// Package future implements a continuation-passing future: a Future[F, S]
// does not hold a result, it holds a deferred computation that, once forked,
// eventually invokes exactly one of two continuations: a failure
// continuation receiving an F or a success continuation receiving an S.
//
// Forking a plain Future re-runs its producer every time; Memoise wraps a
// Future so the producer runs at most once and its outcome is broadcast to
// every caller.
package future
