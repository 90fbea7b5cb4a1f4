package domain

type FlightCategory string

const (
	CategoryDomestic      FlightCategory = "DOMESTIC"
	CategoryInternational FlightCategory = "INTERNATIONAL"
)

// RefundTier grants Percent of the ticket price when cancellation happens
// strictly more than MinDaysBefore whole days before departure.
type RefundTier struct {
	MinDaysBefore int   `json:"min_days_before"`
	Percent       int64 `json:"percent"`
}

var basePrices = map[FlightCategory]int64{
	CategoryDomestic:      10000,
	CategoryInternational: 50000,
}

// Tier tables are ordered most generous first; the evaluator returns the
// first matching tier and 0 when none match.
var refundTiers = map[FlightCategory][]RefundTier{
	CategoryDomestic: {
		{MinDaysBefore: 14, Percent: 100},
		{MinDaysBefore: 7, Percent: 80},
		{MinDaysBefore: 3, Percent: 50},
	},
	CategoryInternational: {
		{MinDaysBefore: 30, Percent: 100},
		{MinDaysBefore: 14, Percent: 70},
		{MinDaysBefore: 7, Percent: 50},
	},
}

func (c FlightCategory) BasePrice() int64 {
	return basePrices[c]
}

func (c FlightCategory) RefundTiers() []RefundTier {
	return refundTiers[c]
}

type Flight struct {
	Number      string         `json:"number"`
	Destination string         `json:"destination"`
	Category    FlightCategory `json:"category"`
	Price       int64          `json:"price"`
}

func NewFlight(number, destination string, category FlightCategory) Flight {
	return Flight{
		Number:      number,
		Destination: destination,
		Category:    category,
		Price:       category.BasePrice(),
	}
}
