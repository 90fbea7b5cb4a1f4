package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/ticketoffice/internal/domain"
	"github.com/Domenick1991/ticketoffice/internal/ledger"
	"github.com/Domenick1991/ticketoffice/internal/refund"
	"github.com/Domenick1991/ticketoffice/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListBookings(ctx context.Context) ([]booking.BookingView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]booking.BookingView), args.Error(1)
}

func (m *MockBookingUseCase) RefundPreview(ctx context.Context, id string) (*booking.RefundQuote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.RefundQuote), args.Error(1)
}

func (m *MockBookingUseCase) CancelBooking(ctx context.Context, id string) (*booking.RefundQuote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.RefundQuote), args.Error(1)
}

func sampleBooking() domain.Booking {
	return domain.Booking{
		ID:            "ab12cd34",
		FlightNumber:  "B101",
		Destination:   "Budapest",
		Category:      domain.CategoryDomestic,
		DepartureDate: time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		CreatedAt:     time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC),
		Price:         10000,
	}
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(createBookingRequest{
		FlightNumber:  "B101",
		DepartureDate: "2026-06-30",
	})
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	created := sampleBooking()
	mockService.On("CreateBooking", c.Request.Context(), booking.CreateBookingInput{
		FlightNumber:  "B101",
		DepartureDate: time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}).Return(&created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response bookingResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ab12cd34", response.ID)
	assert.Equal(t, "2026-06-30", response.DepartureDate)
	assert.Equal(t, int64(10000), response.Price)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_BadDate(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(createBookingRequest{
		FlightNumber:  "B101",
		DepartureDate: "30/06/2026",
	})
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateBooking")
}

func TestBookingHandler_create_Duplicate(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(createBookingRequest{
		FlightNumber:  "B101",
		DepartureDate: "2026-06-30",
	})
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("CreateBooking", c.Request.Context(), mock.Anything).
		Return(nil, ledger.ErrDuplicateBooking)

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_PastDate(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(createBookingRequest{
		FlightNumber:  "B101",
		DepartureDate: "2020-01-01",
	})
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("CreateBooking", c.Request.Context(), mock.Anything).
		Return(nil, ledger.ErrPastOrPresentDate)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_list(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/bookings", nil)

	views := []booking.BookingView{
		{Booking: sampleBooking(), Refund: 8000, Eligibility: refund.EligibilityPartial},
	}
	mockService.On("ListBookings", c.Request.Context()).Return(views, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []bookingViewResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, int64(8000), response[0].Refund)
	assert.Equal(t, "PARTIAL", response[0].Eligibility)
	assert.Equal(t, "Budapest", response[0].Destination)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_refundPreview(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "ab12cd34"}}
	c.Request = httptest.NewRequest("GET", "/bookings/ab12cd34/refund", nil)

	quote := &booking.RefundQuote{
		Booking:     sampleBooking(),
		Amount:      10000,
		Eligibility: refund.EligibilityFull,
	}
	mockService.On("RefundPreview", c.Request.Context(), "ab12cd34").Return(quote, nil)

	handler.refundPreview(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response refundQuoteResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, int64(10000), response.Refund)
	assert.Equal(t, "FULL", response.Eligibility)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "ab12cd34"}}
	c.Request = httptest.NewRequest("DELETE", "/bookings/ab12cd34", nil)

	quote := &booking.RefundQuote{
		Booking:     sampleBooking(),
		Amount:      0,
		Eligibility: refund.EligibilityNone,
	}
	mockService.On("CancelBooking", c.Request.Context(), "ab12cd34").Return(quote, nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response refundQuoteResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), response.Refund)
	assert.Equal(t, "NONE", response.Eligibility)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_cancel_NotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "deadbeef"}}
	c.Request = httptest.NewRequest("DELETE", "/bookings/deadbeef", nil)

	mockService.On("CancelBooking", c.Request.Context(), "deadbeef").
		Return(nil, ledger.ErrBookingNotFound)

	handler.cancel(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}
