package future

// Future[F, S] wraps a producer that, given a failure continuation and a
// success continuation, eventually invokes exactly one of them exactly once.
// The producer may call back synchronously on the forking stack or later
// from another goroutine; nothing here assumes either timing.
//
// A Future carries no state of its own: every Fork call invokes the producer
// again. Use Memoise for run-once sharing.
type Future[F, S any] func(reject func(F), resolve func(S))

// New wraps a producer function as-is.
func New[F, S any](run func(reject func(F), resolve func(S))) Future[F, S] {
	return Future[F, S](run)
}

// Of returns a Future that immediately resolves with value. Its failure
// channel is unreachable.
func Of[F, S any](value S) Future[F, S] {
	return func(_ func(F), resolve func(S)) {
		resolve(value)
	}
}

// Rejected returns a Future that immediately rejects with reason. Its
// success channel is unreachable.
func Rejected[F, S any](reason F) Future[F, S] {
	return func(reject func(F), _ func(S)) {
		reject(reason)
	}
}

// Fork registers the two outcome continuations and runs the producer. It is
// the only effectful entry point; every combinator is inert until the final
// composed Future is forked.
func (f Future[F, S]) Fork(reject func(F), resolve func(S)) {
	f(reject, resolve)
}

// String returns a fixed diagnostic tag, independent of internal state.
func (f Future[F, S]) String() string {
	return "Future"
}
