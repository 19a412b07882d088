package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barber-book/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-book/internal/dto"
	"github.com/BruksfildServices01/barber-book/internal/httperr"
	"github.com/BruksfildServices01/barber-book/internal/httpresp"
	"github.com/BruksfildServices01/barber-book/internal/middleware"
	"github.com/BruksfildServices01/barber-book/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-book/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	updateUC       *ucAppointment.UpdateAppointment
	cancelUC       *ucAppointment.CancelAppointment
	confirmUC      *ucAppointment.ConfirmAppointment
	completeUC     *ucAppointment.CompleteAppointment
	deleteUC       *ucAppointment.DeleteAppointment
	availabilityUC *ucAppointment.GetAvailability
	queries        *ucAppointment.AppointmentQueries
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	confirmUC *ucAppointment.ConfirmAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	availabilityUC *ucAppointment.GetAvailability,
	queries *ucAppointment.AppointmentQueries,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		cancelUC:       cancelUC,
		confirmUC:      confirmUC,
		completeUC:     completeUC,
		deleteUC:       deleteUC,
		availabilityUC: availabilityUC,
		queries:        queries,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID string    `json:"service_id" binding:"required,uuid"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type UpdateAppointmentRequest struct {
	ServiceID *string          `json:"service_id" binding:"omitempty,uuid"`
	StartTime *time.Time       `json:"start_time"`
	EndTime   *time.Time       `json:"end_time"`
	Price     *decimal.Decimal `json:"price"`
	Status    *string          `json:"status" binding:"omitempty,oneof=SCHEDULED CONFIRMED COMPLETED CANCELLED"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	barberID, err := uuid.Parse(c.Param("barber_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber ID")
		return
	}
	barbershopID, err := uuid.Parse(c.Param("barbershop_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barbershop_id", "Invalid barbershop ID")
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	serviceID, _ := uuid.Parse(req.ServiceID)

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BarberID:     barberID,
		ClientID:     clientID,
		BarbershopID: barbershopID,
		ServiceID:    serviceID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AppointmentToResponse(ap))
}

// ======================================================
// LIST / QUERIES
// ======================================================

func (h *AppointmentHandler) FindAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = ucAppointment.DefaultPageLimit
	}

	items, total, err := h.queries.FindAll(c.Request.Context(), page, limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments")
		return
	}

	httpresp.OK(c, httpresp.NewPage(items, page, limit, total))
}

func (h *AppointmentHandler) FindByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment ID")
		return
	}

	ap, err := h.queries.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_appointment", "Failed to get appointment")
		return
	}
	if ap == nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) FindByBarber(c *gin.Context) {
	h.listBy(c, "barber_id", h.queries.FindByBarber)
}

func (h *AppointmentHandler) FindByClient(c *gin.Context) {
	h.listBy(c, "client_id", h.queries.FindByClient)
}

func (h *AppointmentHandler) FindByBarbershop(c *gin.Context) {
	h.listBy(c, "barbershop_id", h.queries.FindByBarbershop)
}

func (h *AppointmentHandler) listBy(
	c *gin.Context,
	param string,
	query func(ctx context.Context, id uuid.UUID) ([]dto.AppointmentResponse, error),
) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httperr.BadRequest(c, "invalid_"+param, "Invalid "+param)
		return
	}

	items, err := query(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments")
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment ID")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	in := ucAppointment.UpdateAppointmentInput{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Price:     req.Price,
	}
	if req.ServiceID != nil {
		svcID, _ := uuid.Parse(*req.ServiceID)
		in.ServiceID = &svcID
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		in.Status = &status
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), id, in)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}
	if ap == nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found")
		return
	}

	httpresp.OK(c, dto.AppointmentToResponse(ap))
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.lifecycle(c, h.cancelUC.Execute)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.lifecycle(c, h.confirmUC.Execute)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.lifecycle(c, h.completeUC.Execute)
}

func (h *AppointmentHandler) lifecycle(
	c *gin.Context,
	exec func(ctx context.Context, id uuid.UUID) (*models.Appointment, error),
) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment ID")
		return
	}

	ap, err := exec(c.Request.Context(), id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, dto.AppointmentToResponse(ap))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment ID")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// RANGE / AVAILABILITY
// ======================================================

func (h *AppointmentHandler) FindByDateRange(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		httperr.BadRequest(c, "invalid_from", "Invalid 'from' timestamp")
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		httperr.BadRequest(c, "invalid_to", "Invalid 'to' timestamp")
		return
	}

	items, err := h.queries.FindByDateRange(c.Request.Context(), from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments")
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	barberID, err := uuid.Parse(c.Query("barber_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber ID")
		return
	}
	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service ID")
		return
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, slots)
}
