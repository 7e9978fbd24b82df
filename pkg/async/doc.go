// Package async provides small generic helpers for running work concurrently
// and joining on the results.
//
// A Future is obtained from Go, which starts the supplied function in its own
// goroutine and returns immediately. Await blocks until completion. All joins on
// a group of futures and returns every outcome in input order; it is a barrier,
// not a race, so no partial result set is ever returned. Collect is the common
// fan-out/fan-in shortcut over a slice.
//
// # Usage
//
//	futures := make([]*async.Future[int], 0, len(ids))
//	for _, id := range ids {
//	    futures = append(futures, async.Go(ctx, func(ctx context.Context) (int, error) {
//	        return lookup(ctx, id)
//	    }))
//	}
//	for _, res := range async.All(futures...) {
//	    if res.Err != nil {
//	        // handle
//	    }
//	}
//
// # Error Handling
//
// Errors returned by the callback are passed through unchanged. A panic in the
// callback is recovered and surfaces as an error wrapping ErrPanic.
package async
