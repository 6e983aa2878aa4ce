//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"zen-booking/internal/domain/booking"
	"zen-booking/internal/infra"
	"zen-booking/internal/usecase/queries"
	"zen-booking/tests/common/builder"
	queriesmock "zen-booking/tests/mock/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newQueriesFixture(t *testing.T) (*queriesmock.MockBookingReadStore, queries.BookingQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	return store, queries.NewBookingQueries(store)
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("without date filter", func(t *testing.T) {
		store, q := newQueriesFixture(t)
		views := []*queries.BookingView{builder.NewBookingBuilder().View()}

		store.EXPECT().List(ctx, nil).Return(views, nil)

		got, err := q.List(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("with date filter", func(t *testing.T) {
		store, q := newQueriesFixture(t)
		date := "2030-06-15"

		store.EXPECT().List(ctx, &date).Return(nil, nil)

		_, err := q.List(ctx, &date)
		assert.NoError(t, err)
	})

	t.Run("malformed date filter never reaches the store", func(t *testing.T) {
		_, q := newQueriesFixture(t)
		date := "June 15th"

		_, err := q.List(ctx, &date)
		assert.ErrorIs(t, err, booking.ErrInvalidDate)
	})
}

func TestFindByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		store, q := newQueriesFixture(t)
		view := builder.NewBookingBuilder().View()

		store.EXPECT().FindFirstByEmail(ctx, view.Email).Return(view, nil)

		got, err := q.FindByEmail(ctx, view.Email)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("not found", func(t *testing.T) {
		store, q := newQueriesFixture(t)

		store.EXPECT().FindFirstByEmail(ctx, "ghost@example.com").
			Return(nil, infra.WrapRepoErr("not found", pgx.ErrNoRows))

		_, err := q.FindByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("storage failure passes through", func(t *testing.T) {
		store, q := newQueriesFixture(t)
		dbErr := infra.WrapRepoErr("query failed", errors.New("connection reset"))

		store.EXPECT().FindFirstByEmail(ctx, "alice@example.com").Return(nil, dbErr)

		_, err := q.FindByEmail(ctx, "alice@example.com")
		require.Error(t, err)
		assert.NotErrorIs(t, err, queries.ErrBookingNotFound)
	})
}
