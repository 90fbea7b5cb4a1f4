package notify

import (
	"context"
	"fmt"

	"github.com/Domenick1991/ticketoffice/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("notify: %s booking %s flight %s to %s, refund %d\n",
		event.Type, event.BookingID, event.FlightNumber, event.Destination, event.Refund)
	return nil
}
