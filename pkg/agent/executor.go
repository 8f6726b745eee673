package agent

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jLucasZ1/contele-app/pkg/apperrors"
	"github.com/jLucasZ1/contele-app/pkg/logging"
	"github.com/jLucasZ1/contele-app/pkg/models"
)

// Store is the read capability of the visit store.
// *database.DB satisfies it; tests inject fakes.
type Store interface {
	Select(ctx context.Context, sql string) (*models.QueryResult, error)
	Ping(ctx context.Context) error
}

// Executor runs validated statements against the store. A failed validated
// query is a generation/validation miss to be surfaced, not transiently
// retried, so there is no retry policy here.
type Executor struct {
	store   Store
	timeout time.Duration
	logger  *zap.Logger
}

// NewExecutor creates an executor with the given per-statement timeout.
// timeout <= 0 disables the deadline.
func NewExecutor(store Store, timeout time.Duration, logger *zap.Logger) *Executor {
	return &Executor{
		store:   store,
		timeout: timeout,
		logger:  logger.Named("executor"),
	}
}

// Execute runs one validated statement. The store's error text passes
// through verbatim inside the wrapped error, never swallowed: a
// validated-but-failing statement indicates a validator or catalog gap
// worth exposing.
func (e *Executor) Execute(ctx context.Context, sqlText string) (*models.QueryResult, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := e.store.Select(ctx, sqlText)
	if err != nil {
		e.logger.Error("sql execution failed",
			zap.String("sql", logging.SanitizeQuery(sqlText)),
			zap.String("error", logging.SanitizeError(err)))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExecution, err)
	}

	e.logger.Info("sql executed",
		zap.String("sql", logging.SanitizeQuery(sqlText)),
		zap.Int("rows", len(result.Rows)),
		zap.Duration("elapsed", time.Since(start)))

	return result, nil
}
