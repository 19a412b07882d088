package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-book/internal/httperr"
	"github.com/BruksfildServices01/barber-book/internal/httpresp"
	"github.com/BruksfildServices01/barber-book/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingHoursEntry struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Active    bool   `json:"active"`
}

type PutWorkingHoursRequest struct {
	Entries []WorkingHoursEntry `json:"entries" binding:"required,dive"`
}

func (h *WorkingHoursHandler) FindByBarber(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("barber_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber ID")
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_list_working_hours", "Failed to list working hours")
		return
	}

	httpresp.List(c, hours)
}

// Put replaces the barber's full weekly schedule in one call.
func (h *WorkingHoursHandler) Put(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("barber_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber ID")
		return
	}

	var req PutWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	hours := make([]models.WorkingHours, 0, len(req.Entries))
	for _, e := range req.Entries {
		hours = append(hours, models.WorkingHours{
			BarberID:  barberID,
			Weekday:   e.Weekday,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Active:    e.Active,
		})
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", barberID).Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		if len(hours) == 0 {
			return nil
		}
		return tx.Create(&hours).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Failed to save working hours")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": hours})
}
