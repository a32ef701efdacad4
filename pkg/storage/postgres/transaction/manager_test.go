package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Kabir14815/rr/pkg/logger"
	mock_metric "github.com/Kabir14815/rr/pkg/metric/mock"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*manager, *mock_metric.MockTransaction) {
	ctrl := gomock.NewController(t)
	metrics := mock_metric.NewMockTransaction(ctrl)
	metrics.EXPECT().ObserveDuration("create_consignment", gomock.Any()).Times(1)

	return &manager{
		log:            logger.NewNop(),
		metrics:        metrics,
		maxAttempts:    3,
		baseRetryDelay: time.Millisecond,
		maxRetryDelay:  2 * time.Millisecond,
	}, metrics
}

func TestWithRetry_RecoversFromSerializationFailure(t *testing.T) {
	tm, metrics := newTestManager(t)
	metrics.EXPECT().IncrementRetries("create_consignment").Times(1)

	calls := 0
	err := tm.withRetry(context.Background(), "create_consignment", func() error {
		calls++
		if calls == 1 {
			return &pgconn.PgError{Code: "40001"}
		}
		return nil
	})

	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestWithRetry_PermanentErrorReturnedAsIs(t *testing.T) {
	tm, metrics := newTestManager(t)
	metrics.EXPECT().IncrementFailures("create_consignment").Times(1)

	unique := &pgconn.PgError{Code: "23505"}
	calls := 0
	err := tm.withRetry(context.Background(), "create_consignment", func() error {
		calls++
		return unique
	})

	require.Same(t, unique, err)
	require.Equal(t, 1, calls)
}

func TestWithRetry_AttemptsExhausted(t *testing.T) {
	tm, metrics := newTestManager(t)
	metrics.EXPECT().IncrementRetries("create_consignment").Times(2)
	metrics.EXPECT().IncrementFailures("create_consignment").Times(1)

	calls := 0
	err := tm.withRetry(context.Background(), "create_consignment", func() error {
		calls++
		return &pgconn.PgError{Code: "40P01"}
	})

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	require.Equal(t, "40P01", pgErr.Code)
	require.Equal(t, 3, calls)
}

func TestWithRetry_CanceledContext(t *testing.T) {
	tm, metrics := newTestManager(t)
	metrics.EXPECT().IncrementFailures("create_consignment").Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := tm.withRetry(ctx, "create_consignment", func() error {
		return ctx.Err()
	})

	require.ErrorIs(t, err, context.Canceled)
}

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		desc string
		err  error
		want bool
	}{
		{desc: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{desc: "connection failure", err: &pgconn.PgError{Code: "08006"}, want: true},
		{desc: "unique violation", err: &pgconn.PgError{Code: "23505"}},
		{desc: "closed tx", err: pgx.ErrTxClosed, want: true},
		{desc: "deadline", err: context.DeadlineExceeded},
		{desc: "plain", err: errors.New("boom")},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.want, isRetryableError(tc.err))
		})
	}
}

func TestNewManager_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewManager(nil, logger.NewNop(), mock_metric.NewMockTransaction(ctrl))
	require.Error(t, err)
}
