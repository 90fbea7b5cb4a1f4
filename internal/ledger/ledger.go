package ledger

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/ticketoffice/internal/domain"
	"github.com/Domenick1991/ticketoffice/internal/refund"
	"github.com/google/uuid"
)

var (
	ErrPastOrPresentDate = errors.New("departure date must be in the future")
	ErrDuplicateBooking  = errors.New("flight is already booked for this date")
	ErrBookingNotFound   = errors.New("booking not found")
)

// Ledger owns the active bookings for the lifetime of the process.
// Mutating operations are serialized; reads see consistent snapshots.
type Ledger struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
	order    []string
}

func New() *Ledger {
	return &Ledger{bookings: make(map[string]domain.Booking)}
}

// Create validates the departure date against now, rejects duplicate
// flight+date combinations and inserts a booking with the flight price
// snapshotted.
func (l *Ledger) Create(flight domain.Flight, departure, now time.Time) (domain.Booking, error) {
	departureDate := domain.Date(departure)
	if !departureDate.After(domain.Date(now)) {
		return domain.Booking{}, ErrPastOrPresentDate
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, id := range l.order {
		b := l.bookings[id]
		if b.FlightNumber == flight.Number && b.DepartureDate.Equal(departureDate) {
			return domain.Booking{}, ErrDuplicateBooking
		}
	}

	booking := domain.Booking{
		ID:            l.newID(),
		FlightNumber:  flight.Number,
		Destination:   flight.Destination,
		Category:      flight.Category,
		DepartureDate: departureDate,
		CreatedAt:     now,
		Price:         flight.Price,
	}
	l.bookings[booking.ID] = booking
	l.order = append(l.order, booking.ID)
	return booking, nil
}

// List returns active bookings in creation order.
func (l *Ledger) List() []domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Booking, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.bookings[id])
	}
	return out
}

func (l *Ledger) Get(id string) (domain.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	b, ok := l.bookings[id]
	if !ok {
		return domain.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// RefundPreview computes the refund the booking would yield if cancelled
// as of asOf, without removing it.
func (l *Ledger) RefundPreview(id string, asOf time.Time) (int64, error) {
	b, err := l.Get(id)
	if err != nil {
		return 0, err
	}
	return refund.Compute(b.Category, b.Price, b.DepartureDate, asOf), nil
}

// Cancel removes the booking and returns it together with the refund
// amount computed as of asOf. A second cancel on the same id fails with
// ErrBookingNotFound.
func (l *Ledger) Cancel(id string, asOf time.Time) (domain.Booking, int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.bookings[id]
	if !ok {
		return domain.Booking{}, 0, ErrBookingNotFound
	}

	amount := refund.Compute(b.Category, b.Price, b.DepartureDate, asOf)
	delete(l.bookings, id)
	for i, oid := range l.order {
		if oid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return b, amount, nil
}

// newID allocates an 8-char booking id. Caller holds the write lock.
func (l *Ledger) newID() string {
	for {
		id := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		if _, taken := l.bookings[id]; !taken {
			return id
		}
	}
}
