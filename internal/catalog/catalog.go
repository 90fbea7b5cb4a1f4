package catalog

import "github.com/Domenick1991/ticketoffice/internal/domain"

// Catalog holds the airline's flights. Seeded once at construction,
// read-only afterwards.
type Catalog struct {
	airline string
	flights []domain.Flight
}

func New(airline string) *Catalog {
	return &Catalog{
		airline: airline,
		flights: []domain.Flight{
			domain.NewFlight("B101", "Budapest", domain.CategoryDomestic),
			domain.NewFlight("B102", "Szeged", domain.CategoryDomestic),
			domain.NewFlight("N201", "London", domain.CategoryInternational),
		},
	}
}

func (c *Catalog) Airline() string {
	return c.airline
}

// Flights returns the seeded flights in insertion order.
func (c *Catalog) Flights() []domain.Flight {
	out := make([]domain.Flight, len(c.flights))
	copy(out, c.flights)
	return out
}

func (c *Catalog) Find(number string) (domain.Flight, bool) {
	for _, f := range c.flights {
		if f.Number == number {
			return f, true
		}
	}
	return domain.Flight{}, false
}
