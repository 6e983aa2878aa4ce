//go:build unit

package booking_test

import (
	"errors"
	"testing"
	"time"

	"zen-booking/internal/domain/booking"
	"zen-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type draftCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func runDraftCases(t *testing.T, cases []draftCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			err := b.Draft().Validate()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDraftValidate(t *testing.T) {
	t.Run("required fields", func(t *testing.T) {
		runDraftCases(t, []draftCase{
			{
				name: "all fields present",
			},
			{
				name:   "missing name",
				mutate: func(b *builder.BookingBuilder) { b.Name = "" },
				errIs:  booking.ErrMissingFields,
			},
			{
				name:   "whitespace-only surname",
				mutate: func(b *builder.BookingBuilder) { b.Surname = "   " },
				errIs:  booking.ErrMissingFields,
			},
			{
				name:   "missing email",
				mutate: func(b *builder.BookingBuilder) { b.Email = "" },
				errIs:  booking.ErrMissingFields,
			},
			{
				name:   "missing date",
				mutate: func(b *builder.BookingBuilder) { b.Date = "" },
				errIs:  booking.ErrMissingFields,
			},
			{
				name:   "missing time",
				mutate: func(b *builder.BookingBuilder) { b.Time = "" },
				errIs:  booking.ErrMissingFields,
			},
			{
				name:   "missing session",
				mutate: func(b *builder.BookingBuilder) { b.Session = "" },
				errIs:  booking.ErrMissingFields,
			},
			{
				name:   "phone is optional",
				mutate: func(b *builder.BookingBuilder) { b.Phone = "" },
			},
		})
	})

	t.Run("slot format", func(t *testing.T) {
		runDraftCases(t, []draftCase{
			{
				name:   "malformed date",
				mutate: func(b *builder.BookingBuilder) { b.Date = "15/06/2030" },
				errIs:  booking.ErrInvalidDate,
			},
			{
				name:   "impossible date",
				mutate: func(b *builder.BookingBuilder) { b.Date = "2030-02-30" },
				errIs:  booking.ErrInvalidDate,
			},
			{
				name:   "malformed time",
				mutate: func(b *builder.BookingBuilder) { b.Time = "10am" },
				errIs:  booking.ErrInvalidTime,
			},
			{
				name:   "out of range time",
				mutate: func(b *builder.BookingBuilder) { b.Time = "25:00" },
				errIs:  booking.ErrInvalidTime,
			},
		})
	})

	t.Run("session membership", func(t *testing.T) {
		runDraftCases(t, []draftCase{
			{
				name:   "unknown session",
				mutate: func(b *builder.BookingBuilder) { b.Session = "90-min" },
				errIs:  booking.ErrUnknownSession,
			},
			{
				name:   "free consultation session",
				mutate: func(b *builder.BookingBuilder) { b.Session = booking.Session15Min },
			},
		})
	})

	t.Run("missing fields error lists every absent field", func(t *testing.T) {
		err := booking.Draft{}.Validate()
		require.Error(t, err)

		var missingErr *booking.MissingFieldsError
		require.True(t, errors.As(err, &missingErr))
		assert.ElementsMatch(t,
			[]string{"name", "surname", "email", "date", "time", "session"},
			missingErr.Fields)
	})
}

func TestNewBooking(t *testing.T) {
	now := time.Date(2030, 6, 1, 9, 30, 0, 0, time.UTC)
	cancelURL := "http://localhost:3000/cancel-booking"

	t.Run("valid draft", func(t *testing.T) {
		b, err := booking.NewBooking(builder.NewBookingBuilder().Draft(), cancelURL, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, "Alice", b.Name())
		assert.Equal(t, "alice@example.com", b.Email())
		assert.Equal(t, "2030-06-15", b.Slot().Date())
		assert.Equal(t, "10:00", b.Slot().Time())
		assert.Equal(t, booking.Session30Min, b.Session())
		assert.Equal(t, cancelURL, b.CancelURL())
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		bb.Name = "  Alice  "
		bb.Email = " alice@example.com "

		b, err := booking.NewBooking(bb.Draft(), cancelURL, now)
		require.NoError(t, err)
		assert.Equal(t, "Alice", b.Name())
		assert.Equal(t, "alice@example.com", b.Email())
	})

	t.Run("invalid draft is rejected", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		bb.Date = "not-a-date"

		_, err := booking.NewBooking(bb.Draft(), cancelURL, now)
		assert.ErrorIs(t, err, booking.ErrInvalidDate)
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	original := builder.NewBookingBuilder().Entity()

	restored, err := booking.FromSnapshot(original.Snapshot())
	require.NoError(t, err)

	assert.Equal(t, original.ID(), restored.ID())
	assert.Equal(t, original.Email(), restored.Email())
	assert.Equal(t, original.Slot(), restored.Slot())
	assert.Equal(t, original.Session(), restored.Session())
	assert.Equal(t, original.CancelURL(), restored.CancelURL())
}
