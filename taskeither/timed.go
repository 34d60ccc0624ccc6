package taskeither

import (
	"context"
	"time"

	"github.com/rickb777/date/v2/timespan"

	"github.com/on-the-ground/compos_able_go/either"
)

// TimedValue carries a success value together with the wall-clock span
// of the invocation that produced it.
type TimedValue[A any] struct {
	Value A
	Span  timespan.TimeSpan
}

// Timed measures each invocation of ma, wrapping a success in a
// TimedValue. A failure settles unchanged — there is nothing useful to
// time about it.
func Timed[E, A any](ma TaskEither[E, A]) TaskEither[E, TimedValue[A]] {
	return func(ctx context.Context) either.Either[E, TimedValue[A]] {
		from := time.Now()
		res := ma(ctx)
		to := time.Now()
		return either.Map(res, func(a A) TimedValue[A] {
			return TimedValue[A]{
				Value: a,
				Span:  timespan.BetweenTimes(from, to),
			}
		})
	}
}
