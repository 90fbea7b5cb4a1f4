package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/ticketoffice/internal/domain"
	"github.com/Domenick1991/ticketoffice/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightResponse struct {
	Number       string              `json:"number"`
	Destination  string              `json:"destination"`
	Category     string              `json:"category"`
	Price        int64               `json:"price"`
	RefundPolicy []domain.RefundTier `json:"refund_policy"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:number", h.get)
}

func (h *FlightHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]flightResponse, 0, len(list))
	for _, f := range list {
		out = append(out, toFlightResponse(f))
	}
	c.JSON(http.StatusOK, out)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.Is(err, flights.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(*flight))
}

func toFlightResponse(f domain.Flight) flightResponse {
	return flightResponse{
		Number:       f.Number,
		Destination:  f.Destination,
		Category:     string(f.Category),
		Price:        f.Price,
		RefundPolicy: f.Category.RefundTiers(),
	}
}
