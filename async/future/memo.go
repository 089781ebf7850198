package future

import "sync"

type memoState uint8

const (
	memoIdle memoState = iota
	memoStarted
	memoRejected
	memoResolved
)

// waiter is one Fork call's continuation pair, queued while the underlying
// producer is still in flight.
type waiter[F, S any] struct {
	reject  func(F)
	resolve func(S)
}

// memoCell is the state machine behind a memoised Future. Each Memoise call
// creates one cell, owned exclusively by the returned Future; it never
// escapes. All transitions happen under mu so that Fork may be called from
// concurrent goroutines, but mu is never held while a continuation runs.
type memoCell[F, S any] struct {
	mu      sync.Mutex
	state   memoState
	reason  F
	value   S
	pending []waiter[F, S]
}

// Memoise wraps f so its producer runs at most once across any number of
// Fork calls. The first Fork starts the producer; Forks arriving before it
// settles are queued and, once it does, notified in arrival order after the
// first caller's own continuation. Forks arriving after settlement replay
// the cached outcome synchronously.
func Memoise[F, S any](f Future[F, S]) Future[F, S] {
	cell := &memoCell[F, S]{}
	return func(reject func(F), resolve func(S)) {
		cell.mu.Lock()
		switch cell.state {
		case memoRejected:
			reason := cell.reason
			cell.mu.Unlock()
			reject(reason)
		case memoResolved:
			value := cell.value
			cell.mu.Unlock()
			resolve(value)
		case memoStarted:
			cell.pending = append(cell.pending, waiter[F, S]{reject: reject, resolve: resolve})
			cell.mu.Unlock()
		default:
			cell.state = memoStarted
			cell.mu.Unlock()
			f(func(a F) {
				queued, ok := cell.settleRejected(a)
				if !ok {
					return
				}
				reject(a)
				for _, w := range queued {
					w.reject(a)
				}
			}, func(b S) {
				queued, ok := cell.settleResolved(b)
				if !ok {
					return
				}
				resolve(b)
				for _, w := range queued {
					w.resolve(b)
				}
			})
		}
	}
}

// settleRejected moves the cell to its rejected state and hands back a
// snapshot of the queue. The snapshot is drained with mu released, so a
// continuation that forks the same instance again sees the settled state and
// is served synchronously instead of landing in a queue nobody will drain.
// A producer calling back a second time gets ok == false and is ignored.
func (c *memoCell[F, S]) settleRejected(reason F) (queued []waiter[F, S], ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != memoStarted {
		return nil, false
	}
	c.state = memoRejected
	c.reason = reason
	queued = c.pending
	c.pending = nil
	return queued, true
}

func (c *memoCell[F, S]) settleResolved(value S) (queued []waiter[F, S], ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != memoStarted {
		return nil, false
	}
	c.state = memoResolved
	c.value = value
	queued = c.pending
	c.pending = nil
	return queued, true
}
