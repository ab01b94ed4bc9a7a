//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"tourpay/internal/domain/booking"
	"tourpay/internal/infra"
	"tourpay/internal/infra/repository"
	sqlc "tourpay/internal/infra/sqlc/generated"
	"tourpay/tests/common/builder"
	repositorymock "tourpay/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		queryErr   error
		expectErr  bool
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "error: duplicate id", queryErr: &pgconn.PgError{Code: "23505"}, expectErr: true, expectKind: infra.KindDuplicateKey},
		{name: "error: unknown tour", queryErr: &pgconn.PgError{Code: "23503"}, expectErr: true, expectKind: infra.KindForeignKeyViolated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			q := repositorymock.NewMockBookingWriteQueries(ctrl)
			db := &mockDBTX{}
			b := builder.NewBookingBuilder().BuildDomain()
			q.EXPECT().CreateBooking(ctx, db, sqlc.CreateBookingParams{
				ID:            b.ID(),
				TourID:        b.TourID(),
				CustomerEmail: b.CustomerEmail(),
				Status:        "pending",
				CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt(), Valid: true},
				UpdatedAt:     pgtype.Timestamptz{Time: b.UpdatedAt(), Valid: true},
			}).Return(tc.queryErr)

			err := repository.NewBookingRepository(q, db).Create(ctx, b)
			assertRepoErr(t, err, tc.expectErr, tc.expectKind)
		})
	}
}

func TestBookingRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed)

	testCases := []struct {
		name       string
		row        sqlc.Bookings
		queryErr   error
		expectErr  bool
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", row: b.BuildInfra()},
		{name: "error: not found", queryErr: pgx.ErrNoRows, expectErr: true, expectKind: infra.KindNotFound},
		{name: "error: database failure", queryErr: errConnReset, expectErr: true, expectKind: infra.KindDBFailure},
		{
			name:       "error: unknown status in row",
			row:        func() sqlc.Bookings { r := b.BuildInfra(); r.Status = "archived"; return r }(),
			expectErr:  true,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			q := repositorymock.NewMockBookingWriteQueries(ctrl)
			db := &mockDBTX{}
			q.EXPECT().GetBookingByIDForUpdate(ctx, db, b.ID).Return(tc.row, tc.queryErr)

			got, err := repository.NewBookingRepository(q, db).FindByIDForUpdate(ctx, b.ID)
			assertRepoErr(t, err, tc.expectErr, tc.expectKind)
			if !tc.expectErr {
				assert.Equal(t, booking.StatusConfirmed, got.Status())
				assert.Equal(t, b.CustomerEmail, got.CustomerEmail())
			}
		})
	}
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectErr  bool
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "error: status moved underneath", affected: 0, expectErr: true, expectKind: infra.KindStaleState},
		{name: "error: database failure", queryErr: errConnReset, expectErr: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			q := repositorymock.NewMockBookingWriteQueries(ctrl)
			db := &mockDBTX{}
			b := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, b.Cancel(now))

			q.EXPECT().UpdateBookingStatus(ctx, db, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error) {
					assert.Equal(t, "cancelled", arg.Status)
					assert.Equal(t, "pending", arg.ExpectedStatus)
					assert.Equal(t, now, arg.UpdatedAt.Time)
					return tc.affected, tc.queryErr
				})

			err := repository.NewBookingRepository(q, db).UpdateStatus(ctx, b, booking.StatusPending)
			assertRepoErr(t, err, tc.expectErr, tc.expectKind)
		})
	}
}
