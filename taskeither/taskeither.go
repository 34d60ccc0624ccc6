package taskeither

import (
	"context"

	"github.com/on-the-ground/compos_able_go/either"
	"github.com/on-the-ground/compos_able_go/option"
	"github.com/on-the-ground/compos_able_go/task"
)

// TaskEither is a deferred computation settling to either a failure E or
// a success A. The context is handed through to the underlying work; the
// type itself attaches no cancellation semantics to it.
type TaskEither[E, A any] func(context.Context) either.Either[E, A]

// Run executes the computation and blocks until it settles.
func (ma TaskEither[E, A]) Run(ctx context.Context) either.Either[E, A] {
	return ma(ctx)
}

// Left constructs an immediately-settling failure.
func Left[A, E any](e E) TaskEither[E, A] {
	return func(context.Context) either.Either[E, A] {
		return either.Left[A](e)
	}
}

// Right constructs an immediately-settling success.
func Right[E, A any](a A) TaskEither[E, A] {
	return func(context.Context) either.Either[E, A] {
		return either.Right[E](a)
	}
}

// Of is Right under its applicative name.
func Of[E, A any](a A) TaskEither[E, A] {
	return Right[E](a)
}

// RightTask lifts an always-succeeding task into success position.
func RightTask[E, A any](ta task.Task[A]) TaskEither[E, A] {
	return func(ctx context.Context) either.Either[E, A] {
		return either.Right[E](ta(ctx))
	}
}

// LeftTask lifts an always-succeeding task into failure position.
func LeftTask[A, E any](te task.Task[E]) TaskEither[E, A] {
	return func(ctx context.Context) either.Either[E, A] {
		return either.Left[A](te(ctx))
	}
}

// FromEither lifts an already-settled result.
func FromEither[E, A any](ea either.Either[E, A]) TaskEither[E, A] {
	return func(context.Context) either.Either[E, A] {
		return ea
	}
}

// FromOption converts an optional value: present becomes success, absent
// becomes the failure produced by onNone.
func FromOption[A, E any](oa option.Option[A], onNone func() E) TaskEither[E, A] {
	return func(context.Context) either.Either[E, A] {
		if a, ok := oa.Unwrap(); ok {
			return either.Right[E](a)
		}
		return either.Left[A](onNone())
	}
}

// FromPredicate tests a value: pass yields success of the value, fail
// yields the failure produced by onFalse.
func FromPredicate[E, A any](a A, pred func(A) bool, onFalse func(A) E) TaskEither[E, A] {
	return func(context.Context) either.Either[E, A] {
		if pred(a) {
			return either.Right[E](a)
		}
		return either.Left[A](onFalse(a))
	}
}

// TryCatch bridges a fallible Go operation into the modeled failure
// channel: a nil error wraps the value as success, a non-nil error maps
// through onRejected into a failure. onRejected must not panic — this is
// the one boundary where external failure enters the tagged model.
func TryCatch[E, A any](
	f func(context.Context) (A, error),
	onRejected func(error) E,
) TaskEither[E, A] {
	return func(ctx context.Context) either.Either[E, A] {
		a, err := f(ctx)
		if err != nil {
			return either.Left[A](onRejected(err))
		}
		return either.Right[E](a)
	}
}

// TryCatchK lifts a fallible Kleisli function, applying TryCatch to each
// argument.
func TryCatchK[E, A, B any](
	f func(context.Context, A) (B, error),
	onRejected func(error) E,
) func(A) TaskEither[E, B] {
	return func(a A) TaskEither[E, B] {
		return TryCatch(func(ctx context.Context) (B, error) {
			return f(ctx, a)
		}, onRejected)
	}
}

// Taskify wraps a callback-style asynchronous API. The wrapped function
// must invoke the callback exactly once; a non-nil err settles the
// computation as a failure, otherwise the value settles as a success.
func Taskify[A any](f func(ctx context.Context, callback func(err error, a A))) TaskEither[error, A] {
	return func(ctx context.Context) either.Either[error, A] {
		done := make(chan either.Either[error, A], 1)
		f(ctx, func(err error, a A) {
			if err != nil {
				done <- either.Left[A](err)
				return
			}
			done <- either.Right[error](a)
		})
		return <-done
	}
}

// Map transforms the success value, leaving failures and the execution
// untouched.
func Map[E, A, B any](ma TaskEither[E, A], f func(A) B) TaskEither[E, B] {
	return func(ctx context.Context) either.Either[E, B] {
		return either.Map(ma(ctx), f)
	}
}

// MapLeft transforms the failure value, leaving successes untouched.
func MapLeft[A, E, G any](ma TaskEither[E, A], f func(E) G) TaskEither[G, A] {
	return func(ctx context.Context) either.Either[G, A] {
		return either.MapLeft(ma(ctx), f)
	}
}

// BiMap transforms whichever branch the computation settles to.
func BiMap[E, A, G, B any](ma TaskEither[E, A], f func(E) G, g func(A) B) TaskEither[G, B] {
	return func(ctx context.Context) either.Either[G, B] {
		return either.BiMap(ma(ctx), f, g)
	}
}

// Swap exchanges the success and failure channels.
func Swap[E, A any](ma TaskEither[E, A]) TaskEither[A, E] {
	return func(ctx context.Context) either.Either[A, E] {
		return either.Swap(ma(ctx))
	}
}

// Chain sequences a dependent computation. A failure short-circuits: f is
// never invoked and the failure settles the whole pipeline.
func Chain[E, A, B any](ma TaskEither[E, A], f func(A) TaskEither[E, B]) TaskEither[E, B] {
	return func(ctx context.Context) either.Either[E, B] {
		a, e, ok := ma(ctx).Unwrap()
		if !ok {
			return either.Left[B](e)
		}
		return f(a)(ctx)
	}
}

// ChainFirst runs f's computation for its effect but keeps ma's value.
// A failure from either side settles the pipeline.
func ChainFirst[E, A, B any](ma TaskEither[E, A], f func(A) TaskEither[E, B]) TaskEither[E, A] {
	return Chain(ma, func(a A) TaskEither[E, A] {
		return Map(f(a), func(B) A { return a })
	})
}

// ChainEitherK sequences an already-settled-result computation.
func ChainEitherK[E, A, B any](ma TaskEither[E, A], f func(A) either.Either[E, B]) TaskEither[E, B] {
	return Chain(ma, func(a A) TaskEither[E, B] {
		return FromEither(f(a))
	})
}

// ChainOptionK sequences an optional computation, failing via onNone when
// it comes up absent.
func ChainOptionK[E, A, B any](
	ma TaskEither[E, A],
	f func(A) option.Option[B],
	onNone func() E,
) TaskEither[E, B] {
	return Chain(ma, func(a A) TaskEither[E, B] {
		return FromOption(f(a), onNone)
	})
}

// Flatten collapses a nested computation.
func Flatten[E, A any](mma TaskEither[E, TaskEither[E, A]]) TaskEither[E, A] {
	return Chain(mma, func(ma TaskEither[E, A]) TaskEither[E, A] { return ma })
}

// Alt runs first; on success it settles unchanged and onAlt is never
// invoked. On failure the fallback computation produced by onAlt runs
// and its outcome, success or failure, settles the whole.
func Alt[E, A any](first TaskEither[E, A], onAlt func() TaskEither[E, A]) TaskEither[E, A] {
	return func(ctx context.Context) either.Either[E, A] {
		res := first(ctx)
		if res.IsRight() {
			return res
		}
		return onAlt()(ctx)
	}
}

// OrElse is Alt with access to the failure value.
func OrElse[E, A, G any](ma TaskEither[E, A], onLeft func(E) TaskEither[G, A]) TaskEither[G, A] {
	return func(ctx context.Context) either.Either[G, A] {
		a, e, ok := ma(ctx).Unwrap()
		if ok {
			return either.Right[G](a)
		}
		return onLeft(e)(ctx)
	}
}

// GetOrElse collapses the computation into an infallible task.
func GetOrElse[E, A any](ma TaskEither[E, A], onLeft func(E) A) task.Task[A] {
	return func(ctx context.Context) A {
		return ma(ctx).GetOrElse(onLeft)
	}
}

// Fold collapses both branches into an infallible task via pattern match.
func Fold[E, A, B any](ma TaskEither[E, A], onLeft func(E) B, onRight func(A) B) task.Task[B] {
	return func(ctx context.Context) B {
		return either.Fold(ma(ctx), onLeft, onRight)
	}
}
