package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Domenick1991/ticketoffice/internal/catalog"
	"github.com/Domenick1991/ticketoffice/internal/domain"
	"github.com/Domenick1991/ticketoffice/internal/kafka"
	"github.com/Domenick1991/ticketoffice/internal/ledger"
	"github.com/Domenick1991/ticketoffice/internal/metrics"
	"github.com/Domenick1991/ticketoffice/internal/refund"
	"github.com/avast/retry-go"
)

var ErrUnknownFlight = errors.New("unknown flight number")

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]BookingView, error)
	RefundPreview(ctx context.Context, id string) (*RefundQuote, error)
	CancelBooking(ctx context.Context, id string) (*RefundQuote, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateBookingInput struct {
	FlightNumber  string
	DepartureDate time.Time
}

// BookingView pairs a booking with the refund it would yield today.
// Amounts are recomputed on every call, so the same booking can show a
// smaller refund as its departure approaches.
type BookingView struct {
	Booking     domain.Booking
	Refund      int64
	Eligibility refund.Eligibility
}

type RefundQuote struct {
	Booking     domain.Booking
	Amount      int64
	Eligibility refund.Eligibility
}

type BookingService struct {
	ledger             *ledger.Ledger
	catalog            *catalog.Catalog
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	now                func() time.Time
	retryAttempts      uint
	retryDelay         time.Duration
	retryMaxDelay      time.Duration
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithClock overrides the wall clock so date-dependent behaviour is
// deterministic in tests.
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func WithPublishRetry(attempts uint, delay, maxDelay time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.retryAttempts = attempts
		s.retryDelay = delay
		s.retryMaxDelay = maxDelay
	}
}

func NewBookingService(
	l *ledger.Ledger,
	cat *catalog.Catalog,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		ledger:        l,
		catalog:       cat,
		producer:      producer,
		bookingTopic:  bookingTopic,
		now:           time.Now,
		retryAttempts: 1,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	flight, ok := s.catalog.Find(input.FlightNumber)
	if !ok {
		return nil, ErrUnknownFlight
	}

	booking, err := s.ledger.Create(flight, input.DepartureDate, s.now())
	if err != nil {
		return nil, err
	}

	metrics.BookingsCreated.Inc()
	if err := s.publish(ctx, "booking_created", booking, 0); err != nil {
		log.Printf("WARNING: failed to publish booking_created event for booking %s: %v", booking.ID, err)
	}
	return &booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]BookingView, error) {
	today := s.now()
	bookings := s.ledger.List()

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		amount := refund.Compute(b.Category, b.Price, b.DepartureDate, today)
		views = append(views, BookingView{
			Booking:     b,
			Refund:      amount,
			Eligibility: refund.Classify(amount, b.Price),
		})
	}
	return views, nil
}

func (s *BookingService) RefundPreview(ctx context.Context, id string) (*RefundQuote, error) {
	booking, err := s.ledger.Get(id)
	if err != nil {
		return nil, err
	}
	amount, err := s.ledger.RefundPreview(id, s.now())
	if err != nil {
		return nil, err
	}
	return &RefundQuote{
		Booking:     booking,
		Amount:      amount,
		Eligibility: refund.Classify(amount, booking.Price),
	}, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, id string) (*RefundQuote, error) {
	booking, amount, err := s.ledger.Cancel(id, s.now())
	if err != nil {
		return nil, err
	}

	metrics.BookingsCancelled.Inc()
	metrics.RefundedAmount.Add(float64(amount))
	if err := s.publish(ctx, "booking_cancelled", booking, amount); err != nil {
		log.Printf("WARNING: failed to publish booking_cancelled event for booking %s: %v", booking.ID, err)
	}
	return &RefundQuote{
		Booking:     booking,
		Amount:      amount,
		Eligibility: refund.Classify(amount, booking.Price),
	}, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking domain.Booking, refundAmount int64) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:          eventType,
		BookingID:     booking.ID,
		FlightNumber:  booking.FlightNumber,
		Destination:   booking.Destination,
		Category:      string(booking.Category),
		DepartureDate: booking.DepartureDate.Format("2006-01-02"),
		Price:         booking.Price,
		Refund:        refundAmount,
		OccurredAt:    s.now(),
	}

	err := retry.Do(
		func() error {
			return s.producer.Publish(ctx, s.bookingTopic, booking.ID, event)
		},
		retry.Attempts(s.retryAttempts),
		retry.Delay(s.retryDelay),
		retry.MaxDelay(s.retryMaxDelay),
	)
	if err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
