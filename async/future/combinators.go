package future

// Combinators are package-level generic functions because a Go method cannot
// introduce the new type parameter most of them need. Each returns a new
// Future built from the old one's producer; none mutates its argument.
//
// Chain is the monadic bind; together with Of, Bimap and Swap it is
// primitive, and everything else is derivable. The monad laws hold:
//
//   - left identity:  Chain(Of(x), f)      ~ f(x)
//   - right identity: Chain(m, Of)         ~ m
//   - associativity:  Chain(Chain(m, f), g) ~ Chain(m, func(x) { return Chain(f(x), g) })

// Chain sequences two Futures: on success b it forks fn(b) with the original
// continuations; a failure bypasses fn and propagates unchanged.
func Chain[F, A, B any](f Future[F, A], fn func(A) Future[F, B]) Future[F, B] {
	return func(reject func(F), resolve func(B)) {
		f(reject, func(b A) {
			fn(b)(reject, resolve)
		})
	}
}

// Map transforms the success value, leaving a failure untouched.
func Map[F, A, B any](f Future[F, A], fn func(A) B) Future[F, B] {
	return Chain(f, func(b A) Future[F, B] {
		return Of[F](fn(b))
	})
}

// Ap treats fn as a Future of a function: it runs fn first, then applies the
// produced function to arg's success value. If both sides fail, fn's failure
// wins — Chain never starts arg after fn has rejected.
func Ap[F, A, B any](fn Future[F, func(A) B], arg Future[F, A]) Future[F, B] {
	return Chain(fn, func(g func(A) B) Future[F, B] {
		return Map(arg, g)
	})
}

// Fold collapses both channels into the success channel: a failure a becomes
// onRejected(a), a success b becomes onResolved(b). The returned Future's
// failure channel is unreachable.
func Fold[F, S, C any](f Future[F, S], onRejected func(F) C, onResolved func(S) C) Future[F, C] {
	return func(_ func(F), resolve func(C)) {
		f(func(a F) {
			resolve(onRejected(a))
		}, func(b S) {
			resolve(onResolved(b))
		})
	}
}

// Swap exchanges the channels: a failure resolves, a success rejects, each
// with its value unchanged.
func Swap[F, S any](f Future[F, S]) Future[S, F] {
	return func(reject func(S), resolve func(F)) {
		f(resolve, reject)
	}
}

// Bimap transforms both channels at once: a failure a stays a failure as
// fn(a), a success b stays a success as gn(b).
func Bimap[A, B, C, D any](f Future[A, B], fn func(A) C, gn func(B) D) Future[C, D] {
	return func(reject func(C), resolve func(D)) {
		f(func(a A) {
			reject(fn(a))
		}, func(b B) {
			resolve(gn(b))
		})
	}
}

// RejectedMap transforms the failure value, leaving a success untouched.
// Mirror of Map.
func RejectedMap[A, B, S any](f Future[A, S], fn func(A) B) Future[B, S] {
	return func(reject func(B), resolve func(S)) {
		f(func(a A) {
			reject(fn(a))
		}, resolve)
	}
}

// OrElse recovers from a failure: on failure a it forks fn(a) with the
// original continuations; a success passes through unchanged. Mirror of
// Chain.
func OrElse[A, B, S any](f Future[A, S], fn func(A) Future[B, S]) Future[B, S] {
	return func(reject func(B), resolve func(S)) {
		f(func(a A) {
			fn(a)(reject, resolve)
		}, resolve)
	}
}
