// Package taskeither provides the asynchronous result computation type:
// a deferred, zero-argument computation that, when run, settles to either
// a typed failure or a success.
//
// # Cold effects
//
// A TaskEither is a recipe. Constructing one performs no work; invoking
// it does, and every invocation re-executes the underlying work from
// scratch. One value may be run many times, each run independent of the
// others. Nothing is memoized.
//
// # Two error channels
//
// Modeled failure travels in the E channel and propagates through Chain's
// short-circuit: once a step settles to a failure, no downstream step
// runs. Go errors and panics raised inside user callbacks are a separate
// channel — only TryCatch and Taskify convert a Go error into the modeled
// channel, and only for the single call they wrap. A panic escaping a
// callback is out of contract and propagates to the caller.
//
// # Parallel vs sequential
//
// Ap and TraverseSlice launch their operands as independent goroutines:
// no ordering holds between their starts, and a parallel traversal waits
// for every element before reducing to the first failure in index order.
// ApSeq and TraverseSeqSlice instead run strictly left to right and bail
// out at the first failure, never starting the rest. Callers pick a
// variant by whether side-effect ordering or early exit matters more
// than throughput.
//
// # What this package is not
//
// There is no scheduler, no cancellation, no timeout, and no retry here.
// The context passed to Run flows through to the wrapped work untouched;
// callers compose cancellation externally if they need it.
package taskeither
