// Package task provides the deferred-computation primitive underlying
// the asynchronous effect types: a zero-argument computation that cannot
// fail. A Task is cold — nothing runs until it is invoked, and every
// invocation re-executes the work.
package task

import "context"

// Task is a deferred computation producing an A. The context is passed
// through to the underlying work untouched; the type itself attaches no
// cancellation or timeout semantics.
type Task[A any] func(context.Context) A

// Run executes the task.
func (ta Task[A]) Run(ctx context.Context) A { return ta(ctx) }

// Of lifts an already-available value into a task that resolves to it.
func Of[A any](a A) Task[A] {
	return func(context.Context) A { return a }
}

// Map transforms the produced value.
func Map[A, B any](ta Task[A], f func(A) B) Task[B] {
	return func(ctx context.Context) B {
		return f(ta(ctx))
	}
}

// Chain sequences a dependent task: fb starts only after ta has settled.
func Chain[A, B any](ta Task[A], f func(A) Task[B]) Task[B] {
	return func(ctx context.Context) B {
		return f(ta(ctx))(ctx)
	}
}

// ApPar combines two independent tasks, running fa on its own goroutine
// while fab runs on the caller's. Results combine once both settle.
func ApPar[A, B any](fab Task[func(A) B], fa Task[A]) Task[B] {
	return func(ctx context.Context) B {
		done := make(chan A, 1)
		go func() {
			done <- fa(ctx)
		}()
		f := fab(ctx)
		return f(<-done)
	}
}
