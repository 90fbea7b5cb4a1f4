package flights

import (
	"context"
	"errors"

	"github.com/Domenick1991/ticketoffice/internal/catalog"
	"github.com/Domenick1991/ticketoffice/internal/domain"
)

var ErrFlightNotFound = errors.New("flight not found")

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByNumber(ctx context.Context, number string) (*domain.Flight, error)
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type FlightService struct {
	catalog *catalog.Catalog
	cache   FlightCache
}

func NewFlightService(cat *catalog.Catalog, cache FlightCache) *FlightService {
	return &FlightService{catalog: cat, cache: cache}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights := s.catalog.Flights()
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	f, ok := s.catalog.Find(number)
	if !ok {
		return nil, ErrFlightNotFound
	}
	return &f, nil
}

var _ FlightUseCase = (*FlightService)(nil)
