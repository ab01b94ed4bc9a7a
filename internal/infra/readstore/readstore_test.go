//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"tourpay/internal/infra"
	"tourpay/internal/infra/readstore"
	sqlc "tourpay/internal/infra/sqlc/generated"
	"tourpay/tests/common/builder"
	readstoremock "tourpay/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// Tours
// =============================================================================

func TestTourReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockTourViewQueries)
		expectErr  bool
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: tour with every price",
			setupMock: func(q *readstoremock.MockTourViewQueries) {
				q.EXPECT().GetTourByID(ctx, gomock.Any(), int64(7)).Return(builder.NewTourBuilder().BuildInfra(), nil)
			},
		},
		{
			name: "error: tour not found",
			setupMock: func(q *readstoremock.MockTourViewQueries) {
				q.EXPECT().GetTourByID(ctx, gomock.Any(), int64(7)).Return(sqlc.Tours{}, pgx.ErrNoRows)
			},
			expectErr:  true,
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: connection lost",
			setupMock: func(q *readstoremock.MockTourViewQueries) {
				q.EXPECT().GetTourByID(ctx, gomock.Any(), int64(7)).Return(sqlc.Tours{}, errDBConnectionLost)
			},
			expectErr:  true,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			q := readstoremock.NewMockTourViewQueries(ctrl)
			tc.setupMock(q)

			view, err := readstore.NewTourReadStore(q, nil).FindByID(ctx, 7)
			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Fjord Kayak", view.Name)
			require.NotNil(t, view.PriceBTC)
			assert.Equal(t, "0.002", view.PriceBTC.String())
		})
	}
}

func TestTourReadStore_List(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := readstoremock.NewMockTourViewQueries(ctrl)
	cabin := builder.NewTourBuilder().With(func(b *builder.TourBuilder) {
		b.ID = 8
		b.PriceBTC = nil
		b.PriceETH = nil
	}).BuildInfra()

	q.EXPECT().ListTours(ctx, gomock.Any(), sqlc.ListToursParams{Limit: 20, Offset: 40}).
		Return([]sqlc.Tours{builder.NewTourBuilder().BuildInfra(), cabin}, nil)
	q.EXPECT().ListTours(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

	store := readstore.NewTourReadStore(q, nil)

	views, err := store.List(ctx, 20, 40)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.NotNil(t, views[0].PriceETH)
	assert.Nil(t, views[1].PriceBTC)
	assert.Nil(t, views[1].PriceETH)

	_, err = store.List(ctx, 20, 60)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

// =============================================================================
// Payments
// =============================================================================

func TestPaymentReadStore(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("find by id maps nullable columns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockPaymentViewQueries(ctrl)

		completed := builder.NewPaymentBuilder().AsCompleted(bookingID).BuildInfra()
		q.EXPECT().GetPaymentByID(ctx, gomock.Any(), completed.ID).Return(completed, nil)

		view, err := readstore.NewPaymentReadStore(q, nil).FindByID(ctx, completed.ID)
		require.NoError(t, err)
		assert.Equal(t, &bookingID, view.BookingID)
		assert.Equal(t, "completed", view.Status)
		assert.NotNil(t, view.CompletedAt)
		assert.Nil(t, view.FailureReason)
		assert.Nil(t, view.RefundedAt)
	})

	t.Run("find by id reports a missing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockPaymentViewQueries(ctrl)
		q.EXPECT().GetPaymentByID(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Payments{}, pgx.ErrNoRows)

		_, err := readstore.NewPaymentReadStore(q, nil).FindByID(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("find by booking keeps the query order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockPaymentViewQueries(ctrl)

		first := builder.NewPaymentBuilder().AsCompleted(bookingID).BuildInfra()
		second := builder.NewPaymentBuilder().AsFailed("amount mismatch").BuildInfra()
		q.EXPECT().ListPaymentsByBookingID(ctx, gomock.Any(), pgtype.UUID{Bytes: bookingID, Valid: true}).
			Return([]sqlc.Payments{first, second}, nil)

		views, err := readstore.NewPaymentReadStore(q, nil).FindByBookingID(ctx, bookingID)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, first.ID, views[0].ID)
		require.NotNil(t, views[1].FailureReason)
		assert.Equal(t, "amount mismatch", *views[1].FailureReason)
	})

	t.Run("find by booking with no payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockPaymentViewQueries(ctrl)
		q.EXPECT().ListPaymentsByBookingID(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		views, err := readstore.NewPaymentReadStore(q, nil).FindByBookingID(ctx, bookingID)
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}

// =============================================================================
// Bookings
// =============================================================================

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := readstoremock.NewMockBookingViewQueries(ctrl)
	row := builder.NewBookingBuilder().BuildInfra()
	q.EXPECT().GetBookingByID(ctx, gomock.Any(), row.ID).Return(row, nil)
	q.EXPECT().GetBookingByID(ctx, gomock.Any(), gomock.Not(row.ID)).Return(sqlc.Bookings{}, pgx.ErrNoRows)

	store := readstore.NewBookingReadStore(q, nil)

	view, err := store.FindByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", view.Status)
	assert.NotNil(t, view.Payments)

	_, err = store.FindByID(ctx, uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
