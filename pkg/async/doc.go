// Package async provides small generic helpers for running computations
// concurrently and waiting for them to settle.
//
// The package is centred around Future, the eventual result of a function
// started with Async or Go. A caller waits with Await, AwaitContext or
// AwaitWithTimeout, or polls with IsComplete. WaitAll settles a whole fan-out:
// it never returns before every future has completed, which is what the
// validator tree relies on when it aggregates a verdict over concurrently
// evaluated fields.
//
// # Usage
//
//	f := async.Go(ctx, func(ctx context.Context) (bool, error) {
//	    return lookupAllowed(ctx, email)
//	})
//	ok, err := f.AwaitWithTimeout(2 * time.Second)
//
// # Error Handling
//
// Functions return the error produced by the callback. AwaitWithTimeout
// returns ErrTimeout, and a panicking callback completes its future with an
// error wrapping ErrPanic.
package async
