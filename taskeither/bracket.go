package taskeither

import (
	"context"

	"github.com/on-the-ground/compos_able_go/either"
)

// Bracket runs acquire, use, release with the guarantees resource code
// needs: release runs exactly once whenever acquire succeeds, no matter
// how use settles, and never runs when acquire fails. The settled
// outcome is use's — unless release itself fails, in which case
// release's failure wins.
func Bracket[E, A, B any](
	acquire TaskEither[E, A],
	use func(A) TaskEither[E, B],
	release func(A, either.Either[E, B]) TaskEither[E, struct{}],
) TaskEither[E, B] {
	return Chain(acquire, func(a A) TaskEither[E, B] {
		return func(ctx context.Context) either.Either[E, B] {
			outcome := use(a)(ctx)
			if _, e, ok := release(a, outcome)(ctx).Unwrap(); !ok {
				return either.Left[B](e)
			}
			return outcome
		}
	})
}
