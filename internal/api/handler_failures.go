package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"uniadmin-backend/internal/apperr"
	"uniadmin-backend/internal/model"
	"uniadmin-backend/internal/parse"
	"uniadmin-backend/internal/records"
	"uniadmin-backend/internal/store"
)

// FailureResponse is the wire form of a Failure, annotated with its unit name.
type FailureResponse struct {
	ID          int64     `json:"id"`
	UnitID      int64     `json:"unidade"`
	UnitName    string    `json:"unidade_nome"`
	Description string    `json:"falha_ocorrida"`
	FailureDate string    `json:"data_falha"`
	Note        string    `json:"observacao"`
	Active      bool      `json:"ativa"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newFailureResponse(f *model.Failure) FailureResponse {
	return FailureResponse{
		ID:          f.ID,
		UnitID:      f.UnitID,
		UnitName:    f.Unit.Name,
		Description: f.Description,
		FailureDate: f.FailureDate.Format(parse.DateLayout),
		Note:        f.Note,
		Active:      f.Active,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// failureFilter builds a store filter from the unit, active, year and month
// query parameters.
func failureFilter(c *gin.Context) (store.FailureFilter, error) {
	var filter store.FailureFilter
	verr := apperr.NewValidationError()

	if raw := c.Query("unit"); raw != "" {
		id, err := parse.ID(raw)
		if err != nil {
			verr.Add("unit", "A valid integer is required.")
		}
		filter.UnitID = id
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			verr.Add("active", "Must be a valid boolean.")
		}
		filter.Active = &active
	}

	rawYear, rawMonth := c.Query("year"), c.Query("month")
	switch {
	case rawYear == "" && rawMonth != "":
		verr.Add("year", "This field is required when month is given.")
	case rawYear != "":
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			verr.Add("year", "A valid integer is required.")
			break
		}
		if rawMonth == "" {
			from, _, err := parse.MonthRange(year, 1)
			if err != nil {
				verr.Add("year", err.Error())
				break
			}
			filter.From, filter.To = from, from.AddDate(1, 0, 0)
			break
		}
		month, err := strconv.Atoi(rawMonth)
		if err != nil {
			verr.Add("month", "A valid integer is required.")
			break
		}
		from, to, err := parse.MonthRange(year, month)
		if err != nil {
			verr.Add("month", err.Error())
			break
		}
		filter.From, filter.To = from, to
	}

	return filter, verr.OrNil()
}

// ListFailures handles GET /api/failures.
func (h *Handler) ListFailures(c *gin.Context) {
	filter, err := failureFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	failures, err := h.records.ListFailures(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]FailureResponse, 0, len(failures))
	for i := range failures {
		responses = append(responses, newFailureResponse(&failures[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// FailureStats handles GET /api/failures/stats.
func (h *Handler) FailureStats(c *gin.Context) {
	filter, err := failureFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	counts, err := h.records.FailureStats(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// CreateFailure handles POST /api/failures.
func (h *Handler) CreateFailure(c *gin.Context) {
	var in records.FailureInput
	if !bindJSON(c, &in) {
		return
	}
	failure, err := h.records.CreateFailure(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newFailureResponse(failure))
}

// GetFailure handles GET /api/failures/:id.
func (h *Handler) GetFailure(c *gin.Context) {
	id, ok := pathID(c, "failure")
	if !ok {
		return
	}
	failure, err := h.records.GetFailure(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFailureResponse(failure))
}

// UpdateFailure handles PUT /api/failures/:id.
func (h *Handler) UpdateFailure(c *gin.Context) {
	id, ok := pathID(c, "failure")
	if !ok {
		return
	}
	var in records.FailureInput
	if !bindJSON(c, &in) {
		return
	}
	failure, err := h.records.UpdateFailure(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFailureResponse(failure))
}

// DeleteFailure handles DELETE /api/failures/:id.
func (h *Handler) DeleteFailure(c *gin.Context) {
	id, ok := pathID(c, "failure")
	if !ok {
		return
	}
	if err := h.records.DeleteFailure(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
