package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CourtsideServices01/court-booking-api/internal/audit"
	"github.com/CourtsideServices01/court-booking-api/internal/httperr"
	"github.com/CourtsideServices01/court-booking-api/internal/httpresp"
	"github.com/CourtsideServices01/court-booking-api/internal/middleware"
	"github.com/CourtsideServices01/court-booking-api/internal/models"
	ucBooking "github.com/CourtsideServices01/court-booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ManagerHandler struct {
	db             *gorm.DB
	audit          *audit.Dispatcher
	availabilityUC *ucBooking.ListCourtAvailability
	sportBookingUC *ucBooking.ListSportBookings
}

func NewManagerHandler(
	db *gorm.DB,
	auditDispatcher *audit.Dispatcher,
	availabilityUC *ucBooking.ListCourtAvailability,
	sportBookingUC *ucBooking.ListSportBookings,
) *ManagerHandler {
	return &ManagerHandler{
		db:             db,
		audit:          auditDispatcher,
		availabilityUC: availabilityUC,
		sportBookingUC: sportBookingUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCenterRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}

type CreateSportRequest struct {
	Name     string `json:"name" binding:"required"`
	CenterID string `json:"center_id" binding:"required"`
}

type CreateCourtRequest struct {
	Name    string   `json:"name" binding:"required"`
	SportID string   `json:"sport_id" binding:"required"`
	Slots   []string `json:"slots" binding:"required,min=1"`
}

type UpdateSlotsRequest struct {
	Slots []string `json:"slots" binding:"required,min=1"`
}

// ======================================================
// CATALOG — CREATE
// ======================================================

func (h *ManagerHandler) CreateCenter(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and location are required.")
		return
	}

	center := models.Center{
		Name:     req.Name,
		Location: req.Location,
	}

	if err := h.db.Create(&center).Error; err != nil {
		httperr.Internal(c, "failed_to_create_center", "Failed to create center.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "center_created",
		Entity:   "center",
		EntityID: &center.ID,
	})

	httpresp.Created(c, gin.H{
		"message": "Center created successfully",
		"center":  center,
	})
}

func (h *ManagerHandler) CreateSport(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and center_id are required.")
		return
	}

	sport := models.Sport{
		Name:     req.Name,
		CenterID: req.CenterID,
	}

	if err := h.db.Create(&sport).Error; err != nil {
		httperr.Internal(c, "failed_to_create_sport", "Failed to create sport.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "sport_created",
		Entity:   "sport",
		EntityID: &sport.ID,
	})

	httpresp.Created(c, gin.H{
		"message": "Sport created successfully",
		"sport":   sport,
	})
}

func (h *ManagerHandler) CreateCourt(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, sport_id and slots are required.")
		return
	}

	court := models.Court{
		Name:    req.Name,
		SportID: req.SportID,
		Slots:   req.Slots,
	}

	if err := h.db.Create(&court).Error; err != nil {
		httperr.Internal(c, "failed_to_create_court", "Failed to create court.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "court_created",
		Entity:   "court",
		EntityID: &court.ID,
	})

	httpresp.Created(c, gin.H{
		"message": "Court created successfully",
		"court":   court,
	})
}

// ======================================================
// CATALOG — REPLACE SLOTS
// ======================================================

// UpdateSlots replaces a court's slot list wholesale. Existing bookings
// keep whatever label they were created with; only future booking
// attempts are validated against the new list.
func (h *ManagerHandler) UpdateSlots(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	courtID := c.Param("id")

	var req UpdateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Slots are required.")
		return
	}

	var court models.Court
	if err := h.db.Where("id = ?", courtID).First(&court).Error; err != nil {
		httperr.NotFound(c, "court_not_found", "Court not found.")
		return
	}

	court.Slots = req.Slots
	if err := h.db.Save(&court).Error; err != nil {
		httperr.Internal(c, "failed_to_update_slots", "Failed to update slots.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "court_slots_updated",
		Entity:   "court",
		EntityID: &court.ID,
		Metadata: map[string]any{"slots": req.Slots},
	})

	httpresp.OK(c, gin.H{
		"message": "Slots updated successfully",
		"court":   court,
	})
}

// ======================================================
// CATALOG — LISTINGS
// ======================================================

func (h *ManagerHandler) ListCenters(c *gin.Context) {
	var centers []models.Center
	if err := h.db.Order("name ASC").Find(&centers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_centers", "Failed to retrieve centers.")
		return
	}

	httpresp.OK(c, gin.H{"centers": centers})
}

func (h *ManagerHandler) ListSportsByCenter(c *gin.Context) {
	centerID := c.Param("id")

	var sports []models.Sport
	if err := h.db.Where("center_id = ?", centerID).Find(&sports).Error; err != nil {
		httperr.Internal(c, "failed_to_list_sports", "Failed to retrieve sports.")
		return
	}

	if len(sports) == 0 {
		httperr.NotFound(c, "no_sports_for_center", "No sports found for this center.")
		return
	}

	httpresp.OK(c, gin.H{"sports": sports})
}

func (h *ManagerHandler) ListCourtsBySport(c *gin.Context) {
	sportID := c.Param("id")

	var date *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		d, err := parseBookingDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be DD-MM-YYYY.")
			return
		}
		date = &d
	}

	courts, err := h.availabilityUC.Execute(c.Request.Context(), sportID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_courts", "Failed to retrieve courts.")
		return
	}

	if len(courts) == 0 {
		httperr.NotFound(c, "no_courts_for_sport", "No courts found for this sport.")
		return
	}

	httpresp.OK(c, gin.H{"courts": courts})
}

// ======================================================
// BOOKINGS BY SPORT (manager report)
// ======================================================

func (h *ManagerHandler) ListBookingsBySport(c *gin.Context) {
	sportID := strings.TrimSpace(c.Param("id"))

	if _, err := uuid.Parse(sportID); err != nil {
		httperr.BadRequest(c, "invalid_sport_id", "Invalid sport ID format.")
		return
	}

	bookings, err := h.sportBookingUC.Execute(c.Request.Context(), sportID)
	if err != nil {
		if httperr.IsBusiness(err, "no_courts_for_sport") {
			httperr.NotFound(c, "no_courts_for_sport", "No courts found for this sport.")
			return
		}
		httperr.Internal(c, "failed_to_list_bookings", "Error retrieving bookings.")
		return
	}

	if len(bookings) == 0 {
		httperr.NotFound(c, "no_bookings_for_sport", "No bookings found for this sport.")
		return
	}

	httpresp.OK(c, bookings)
}
