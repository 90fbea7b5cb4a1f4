package refund

import (
	"time"

	"github.com/Domenick1991/ticketoffice/internal/domain"
)

type Eligibility string

const (
	EligibilityFull    Eligibility = "FULL"
	EligibilityPartial Eligibility = "PARTIAL"
	EligibilityNone    Eligibility = "NONE"
)

// DaysBefore returns the whole calendar days from asOf until departure.
// Negative when the departure already passed.
func DaysBefore(departure, asOf time.Time) int {
	return int(domain.Date(departure).Sub(domain.Date(asOf)).Hours() / 24)
}

// Compute returns the amount refundable for cancelling a ticket of the
// given category and price as of asOf. Tiers match on a strict "more than
// MinDaysBefore days left" comparison; a booking at or past its departure
// date refunds nothing.
func Compute(category domain.FlightCategory, price int64, departure, asOf time.Time) int64 {
	days := DaysBefore(departure, asOf)
	for _, tier := range category.RefundTiers() {
		if days > tier.MinDaysBefore {
			return price * tier.Percent / 100
		}
	}
	return 0
}

func Classify(amount, price int64) Eligibility {
	switch {
	case amount >= price:
		return EligibilityFull
	case amount > 0:
		return EligibilityPartial
	default:
		return EligibilityNone
	}
}
