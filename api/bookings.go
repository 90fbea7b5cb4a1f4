package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/ticketoffice/internal/ledger"
	"github.com/Domenick1991/ticketoffice/internal/service/booking"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightNumber  string `json:"flight_number" binding:"required"`
	DepartureDate string `json:"departure_date" binding:"required"`
}

type bookingResponse struct {
	ID            string `json:"id"`
	FlightNumber  string `json:"flight_number"`
	Destination   string `json:"destination"`
	Category      string `json:"category"`
	DepartureDate string `json:"departure_date"`
	CreatedAt     string `json:"created_at"`
	Price         int64  `json:"price"`
}

type bookingViewResponse struct {
	bookingResponse
	Refund      int64  `json:"refund"`
	Eligibility string `json:"eligibility"`
}

type refundQuoteResponse struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	Price       int64  `json:"price"`
	Refund      int64  `json:"refund"`
	Eligibility string `json:"eligibility"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id/refund", h.refundPreview)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	departure, err := time.Parse(dateLayout, req.DepartureDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "departure_date must be YYYY-MM-DD"})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		FlightNumber:  req.FlightNumber,
		DepartureDate: departure,
	})
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, bookingResponse{
		ID:            created.ID,
		FlightNumber:  created.FlightNumber,
		Destination:   created.Destination,
		Category:      string(created.Category),
		DepartureDate: created.DepartureDate.Format(dateLayout),
		CreatedAt:     created.CreatedAt.Format(time.RFC3339),
		Price:         created.Price,
	})
}

func (h *BookingHandler) list(c *gin.Context) {
	views, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]bookingViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, bookingViewResponse{
			bookingResponse: bookingResponse{
				ID:            v.Booking.ID,
				FlightNumber:  v.Booking.FlightNumber,
				Destination:   v.Booking.Destination,
				Category:      string(v.Booking.Category),
				DepartureDate: v.Booking.DepartureDate.Format(dateLayout),
				CreatedAt:     v.Booking.CreatedAt.Format(time.RFC3339),
				Price:         v.Booking.Price,
			},
			Refund:      v.Refund,
			Eligibility: string(v.Eligibility),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) refundPreview(c *gin.Context) {
	quote, err := h.service.RefundPreview(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toRefundQuoteResponse(quote))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	quote, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toRefundQuoteResponse(quote))
}

func toRefundQuoteResponse(q *booking.RefundQuote) refundQuoteResponse {
	return refundQuoteResponse{
		ID:          q.Booking.ID,
		Destination: q.Booking.Destination,
		Price:       q.Booking.Price,
		Refund:      q.Amount,
		Eligibility: string(q.Eligibility),
	}
}

func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, ledger.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrDuplicateBooking):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrPastOrPresentDate), errors.Is(err, booking.ErrUnknownFlight):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
