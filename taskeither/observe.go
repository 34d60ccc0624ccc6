package taskeither

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/compos_able_go/either"
)

// Observe wraps a computation with structured logging. Each invocation
// gets its own run id, so interleaved runs of the same cold value stay
// distinguishable in the log stream. The computation's outcome is
// untouched; only the logging rides along.
func Observe[E, A any](logger *zap.Logger, name string, ma TaskEither[E, A]) TaskEither[E, A] {
	return func(ctx context.Context) either.Either[E, A] {
		runID := uuid.NewString()
		logger.Debug("computation started",
			zap.String("name", name),
			zap.String("run_id", runID),
		)

		res := ma(ctx)

		if a, e, ok := res.Unwrap(); ok {
			logger.Debug("computation succeeded",
				zap.String("name", name),
				zap.String("run_id", runID),
				zap.Any("value", a),
			)
		} else {
			logger.Warn("computation failed",
				zap.String("name", name),
				zap.String("run_id", runID),
				zap.Any("failure", e),
			)
		}
		return res
	}
}
