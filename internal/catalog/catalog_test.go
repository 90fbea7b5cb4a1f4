package catalog

import (
	"testing"

	"github.com/Domenick1991/ticketoffice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SeedsFlightsInOrder(t *testing.T) {
	cat := New("MALÉV")

	assert.Equal(t, "MALÉV", cat.Airline())

	list := cat.Flights()
	require.Len(t, list, 3)
	assert.Equal(t, "B101", list[0].Number)
	assert.Equal(t, "B102", list[1].Number)
	assert.Equal(t, "N201", list[2].Number)

	assert.Equal(t, domain.CategoryDomestic, list[0].Category)
	assert.Equal(t, int64(10000), list[0].Price)
	assert.Equal(t, domain.CategoryInternational, list[2].Category)
	assert.Equal(t, int64(50000), list[2].Price)
}

func TestFind(t *testing.T) {
	cat := New("MALÉV")

	flight, ok := cat.Find("N201")
	require.True(t, ok)
	assert.Equal(t, "London", flight.Destination)

	_, ok = cat.Find("X999")
	assert.False(t, ok)
}

func TestFlights_ReturnsCopy(t *testing.T) {
	cat := New("MALÉV")

	list := cat.Flights()
	list[0].Price = 1

	fresh := cat.Flights()
	assert.Equal(t, int64(10000), fresh[0].Price)
}
