package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-book/internal/httperr"
	"github.com/BruksfildServices01/barber-book/internal/httpresp"
	"github.com/BruksfildServices01/barber-book/internal/models"
)

// CatalogInvalidator drops cached catalog entries after writes. A nil
// invalidator is allowed when the cache is not wired in.
type CatalogInvalidator interface {
	InvalidateService(ctx context.Context, id uuid.UUID)
	InvalidateBarbershop(ctx context.Context, id uuid.UUID)
}

type ServiceHandler struct {
	db    *gorm.DB
	cache CatalogInvalidator
}

func NewServiceHandler(db *gorm.DB, cache CatalogInvalidator) *ServiceHandler {
	return &ServiceHandler{db: db, cache: cache}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	DurationMinutes int             `json:"duration_minutes" binding:"required,min=1"`
}

type UpdateServiceRequest struct {
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	DurationMinutes *int             `json:"duration_minutes" binding:"omitempty,min=1"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("barbershop_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barbershop_id", "Invalid barbershop ID")
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var count int64
	h.db.Model(&models.Barbershop{}).Where("id = ?", shopID).Count(&count)
	if count == 0 {
		httperr.NotFound(c, "barbershop_not_found", "Barbershop not found")
		return
	}

	svc := models.Service{
		ID:              uuid.New(),
		BarbershopID:    shopID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) FindByBarbershop(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("barbershop_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barbershop_id", "Invalid barbershop ID")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ?", shopID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) FindByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service ID")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Failed to get service")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service ID")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.DurationMinutes != nil {
		updates["duration_minutes"] = *req.DurationMinutes
	}
	if len(updates) == 0 {
		httperr.BadRequest(c, "empty_update", "No fields to update")
		return
	}

	res := h.db.Model(&models.Service{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to update service")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found")
		return
	}

	if h.cache != nil {
		h.cache.InvalidateService(c.Request.Context(), id)
	}

	var svc models.Service
	if err := h.db.First(&svc, "id = ?", id).Error; err != nil {
		httperr.Internal(c, "failed_to_get_service", "Failed to get service")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service ID")
		return
	}

	res := h.db.Delete(&models.Service{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Failed to delete service")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found")
		return
	}

	if h.cache != nil {
		h.cache.InvalidateService(c.Request.Context(), id)
	}

	c.Status(http.StatusNoContent)
}
