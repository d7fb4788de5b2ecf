package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/nearbiz/internal/domain/appointment"
	"github.com/BruksfildServices01/nearbiz/internal/dto"
	"github.com/BruksfildServices01/nearbiz/internal/httperr"
	"github.com/BruksfildServices01/nearbiz/internal/middleware"
	"github.com/BruksfildServices01/nearbiz/internal/usecase/account"
	ucappointment "github.com/BruksfildServices01/nearbiz/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *ucappointment.GetAvailability
	create       *ucappointment.CreateBooking
	accounts     *account.Service
	loc          *time.Location
	now          func() time.Time
}

func NewAppointmentHandler(
	availability *ucappointment.GetAvailability,
	create *ucappointment.CreateBooking,
	accounts *account.Service,
	loc *time.Location,
	now func() time.Time,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		create:       create,
		accounts:     accounts,
		loc:          loc,
		now:          now,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BusinessID   int64  `json:"business_id" binding:"required"`
	TechnicianID int64  `json:"technician_id" binding:"required"`
	ServiceID    int64  `json:"service_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
}

// ======================================================
// AVAILABILITY
// ======================================================

// Availability lists the day's slots for one technician.
// GET /api/businesses/:id/availability?date=&technician_id=&service_id=&format=
func (h *AppointmentHandler) Availability(c *gin.Context) {
	businessID, ok := pathID(c, "id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "El parámetro date es obligatorio.")
		return
	}

	techID, ok := queryID(c, "technician_id")
	if !ok {
		return
	}
	if techID == 0 {
		httperr.BadRequest(c, "missing_technician_id", "El parámetro technician_id es obligatorio.")
		return
	}

	serviceID, ok := queryID(c, "service_id")
	if !ok {
		return
	}

	format := domain.LabelFormat(c.DefaultQuery("format", string(domain.Label24)))
	if format != domain.Label24 && format != domain.Label12 {
		httperr.BadRequest(c, "invalid_format", "Formato inválido, usa 12h o 24h.")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), ucappointment.AvailabilityInput{
		BusinessID:   businessID,
		TechnicianID: techID,
		ServiceID:    serviceID,
		Date:         date,
		Format:       format,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// CALENDAR
// ======================================================

// Calendar returns the Sunday-first month grid used by the date picker.
func (h *AppointmentHandler) Calendar(c *gin.Context) {
	now := h.now().In(h.loc)

	year := now.Year()
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1 {
			httperr.BadRequest(c, "invalid_year", "Año inválido.")
			return
		}
		year = y
	}

	month := now.Month()
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			httperr.BadRequest(c, "invalid_month", "Mes inválido.")
			return
		}
		month = time.Month(m)
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": int(month),
		"days":  domain.Calendar(year, month, now),
	})
}

// ======================================================
// CREATE
// ======================================================

// Create books an appointment for the signed-in user.
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Sesión inválida.")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ctx := c.Request.Context()

	// --------------------------------------------------
	// 1️⃣ Upstream client of the user
	// --------------------------------------------------
	user, err := h.accounts.Me(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	clientID, err := h.accounts.ClientIDFor(ctx, user)
	if err != nil {
		respondError(c, err)
		return
	}

	// --------------------------------------------------
	// 2️⃣ Book
	// --------------------------------------------------
	booking, err := h.create.Execute(ctx, ucappointment.CreateBookingInput{
		UserID:       userID,
		ClientID:     clientID,
		BusinessID:   req.BusinessID,
		TechnicianID: req.TechnicianID,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromBooking(booking))
}
