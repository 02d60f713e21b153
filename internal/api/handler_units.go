package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"uniadmin-backend/internal/model"
	"uniadmin-backend/internal/records"
)

// UnitResponse is the wire form of a Unit.
type UnitResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"nome_unidade"`
	Group      string    `json:"grupo_unidade"`
	Technician string    `json:"tecnico_unidade"`
	ExternalID string    `json:"id_unidade"`
	Notes      string    `json:"observacoes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newUnitResponse(u *model.Unit) UnitResponse {
	return UnitResponse{
		ID:         u.ID,
		Name:       u.Name,
		Group:      u.Group,
		Technician: u.Technician,
		ExternalID: u.ExternalID,
		Notes:      u.Notes,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// ListUnits handles GET /api/units.
func (h *Handler) ListUnits(c *gin.Context) {
	units, err := h.records.ListUnits(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]UnitResponse, 0, len(units))
	for i := range units {
		responses = append(responses, newUnitResponse(&units[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// CreateUnit handles POST /api/units.
func (h *Handler) CreateUnit(c *gin.Context) {
	var in records.UnitInput
	if !bindJSON(c, &in) {
		return
	}
	unit, err := h.records.CreateUnit(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newUnitResponse(unit))
}

// GetUnit handles GET /api/units/:id.
func (h *Handler) GetUnit(c *gin.Context) {
	id, ok := pathID(c, "unit")
	if !ok {
		return
	}
	unit, err := h.records.GetUnit(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUnitResponse(unit))
}

// UpdateUnit handles PUT /api/units/:id.
func (h *Handler) UpdateUnit(c *gin.Context) {
	id, ok := pathID(c, "unit")
	if !ok {
		return
	}
	var in records.UnitInput
	if !bindJSON(c, &in) {
		return
	}
	unit, err := h.records.UpdateUnit(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUnitResponse(unit))
}

// DeleteUnit handles DELETE /api/units/:id.
func (h *Handler) DeleteUnit(c *gin.Context) {
	id, ok := pathID(c, "unit")
	if !ok {
		return
	}
	if err := h.records.DeleteUnit(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
