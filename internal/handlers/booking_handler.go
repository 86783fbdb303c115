package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/CourtsideServices01/court-booking-api/internal/httperr"
	"github.com/CourtsideServices01/court-booking-api/internal/httpresp"
	"github.com/CourtsideServices01/court-booking-api/internal/middleware"
	ucBooking "github.com/CourtsideServices01/court-booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	listUC   *ucBooking.ListUserBookings
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListUserBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookSlotRequest struct {
	CourtID string `json:"court_id" binding:"required"`
	Slot    string `json:"slot" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

// ======================================================
// BOOK
// ======================================================

func (h *BookingHandler) Book(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Court ID, date and slot are required.")
		return
	}

	date, err := parseBookingDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be DD-MM-YYYY.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CourtID: req.CourtID,
		UserID:  userID,
		Slot:    req.Slot,
		Date:    date,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "court_not_found"):
			httperr.NotFound(c, "court_not_found", "Court not found.")
		case httperr.IsBusiness(err, "invalid_slot"):
			httperr.BadRequest(c, "invalid_slot", "Slot "+req.Slot+" is not available for this court.")
		case httperr.IsBusiness(err, "slot_already_booked"):
			httperr.BadRequest(c, "slot_already_booked", "This slot is already booked for the given date.")
		default:
			httperr.Internal(c, "failed_to_book_slot", "Failed to book slot.")
		}
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Booking successful",
		"booking": b,
	})
}

// ======================================================
// MY BOOKINGS
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	bookings, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_bookings", "Failed to fetch bookings.")
		return
	}

	httpresp.OK(c, gin.H{"bookings": bookings})
}
