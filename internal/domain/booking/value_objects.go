package booking

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidTime    = errors.New("invalid time")
	ErrUnknownSession = errors.New("unknown session type")
)

// Slot is the unique (date, time) pair identifying one bookable appointment.
type Slot struct {
	date string
	time string
}

func NewSlot(date, timeOfDay string) (Slot, error) {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil || parsed.Format(DateLayout) != date {
		return Slot{}, ErrInvalidDate
	}
	if _, err := time.Parse(TimeLayout, timeOfDay); err != nil {
		return Slot{}, ErrInvalidTime
	}
	return Slot{date: date, time: timeOfDay}, nil
}

func (s Slot) Date() string {
	return s.date
}

func (s Slot) Time() string {
	return s.time
}

func (s Slot) String() string {
	return s.date + " " + s.time
}

// SessionPrice is one row of the static session price table. Amounts are in
// minor currency units (pence).
type SessionPrice struct {
	DisplayName string
	AmountPence int64
}

func (p SessionPrice) IsFree() bool {
	return p.AmountPence == 0
}

// PriceTable is configuration, not derived data: the quoting step and any
// record of what was charged must read the same table.
type PriceTable struct {
	prices map[Session]SessionPrice
}

func NewDefaultPriceTable() *PriceTable {
	return &PriceTable{
		prices: map[Session]SessionPrice{
			Session15Min: {DisplayName: "15 min free consultation", AmountPence: 0},
			Session30Min: {DisplayName: "30 min session", AmountPence: 4500},
			Session45Min: {DisplayName: "45 min session", AmountPence: 6750},
			Session60Min: {DisplayName: "1 hr session", AmountPence: 9000},
		},
	}
}

func (t *PriceTable) For(s Session) (SessionPrice, error) {
	price, ok := t.prices[s]
	if !ok {
		return SessionPrice{}, fmt.Errorf("%w: %q", ErrUnknownSession, s)
	}
	return price, nil
}
