package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-book/internal/httperr"
	"github.com/BruksfildServices01/barber-book/internal/httpresp"
	"github.com/BruksfildServices01/barber-book/internal/models"
)

type BarbershopHandler struct {
	db    *gorm.DB
	cache CatalogInvalidator
}

func NewBarbershopHandler(db *gorm.DB, cache CatalogInvalidator) *BarbershopHandler {
	return &BarbershopHandler{db: db, cache: cache}
}

type UpdateBarbershopRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (h *BarbershopHandler) FindByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("barbershop_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barbershop_id", "Invalid barbershop ID")
		return
	}

	shop, ok := h.load(c, id)
	if !ok {
		return
	}

	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) FindBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.First(&shop, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barbershop_not_found", "Barbershop not found")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Failed to get barbershop")
		return
	}

	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("barbershop_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barbershop_id", "Invalid barbershop ID")
		return
	}

	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if len(updates) == 0 {
		httperr.BadRequest(c, "empty_update", "No fields to update")
		return
	}

	res := h.db.Model(&models.Barbershop{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Failed to update barbershop")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barbershop_not_found", "Barbershop not found")
		return
	}

	if h.cache != nil {
		h.cache.InvalidateBarbershop(c.Request.Context(), id)
	}

	shop, ok := h.load(c, id)
	if !ok {
		return
	}

	httpresp.OK(c, shop)
}

// ListBarbers returns the staff of a barbershop that can take bookings.
func (h *BarbershopHandler) ListBarbers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("barbershop_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barbershop_id", "Invalid barbershop ID")
		return
	}

	var barbers []models.User
	if err := h.db.
		Where("barbershop_id = ? AND role IN ?", id, []string{models.RoleOwner, models.RoleBarber}).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Failed to list barbers")
		return
	}

	out := make([]gin.H, 0, len(barbers))
	for i := range barbers {
		out = append(out, userPayload(&barbers[i]))
	}

	httpresp.List(c, out)
}

func (h *BarbershopHandler) load(c *gin.Context, id uuid.UUID) (*models.Barbershop, bool) {
	var shop models.Barbershop
	if err := h.db.First(&shop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barbershop_not_found", "Barbershop not found")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Failed to get barbershop")
		return nil, false
	}
	return &shop, true
}
