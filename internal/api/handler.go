package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"uniadmin-backend/internal/apperr"
	"uniadmin-backend/internal/catalog"
	"uniadmin-backend/internal/mw"
	"uniadmin-backend/internal/parse"
	"uniadmin-backend/internal/records"
	"uniadmin-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	catalog *catalog.Service
	records *records.Service
	store   store.Store
}

// NewHandler creates a new API handler.
func NewHandler(catalogSvc *catalog.Service, s store.Store) *Handler {
	return &Handler{
		catalog: catalogSvc,
		records: records.NewService(s),
		store:   s,
	}
}

// respondError maps service errors onto HTTP responses.
func respondError(c *gin.Context, err error) {
	var nf *apperr.NotFoundError
	var verr *apperr.ValidationError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, verr.Fields)
	default:
		log.WithFields(log.Fields{
			"request_id": mw.GetRequestID(c),
			"path":       c.Request.URL.Path,
		}).WithError(err).Error("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pathID reads the :id parameter. A malformed id cannot match any record, so it
// is reported as entity not found.
func pathID(c *gin.Context, entity string) (int64, bool) {
	id, err := parse.ID(c.Param("id"))
	if err != nil {
		respondError(c, apperr.NotFound(entity))
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body. A value of the wrong type is reported
// against its field; anything else that is not valid JSON is a non-field error.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" && typeErr.Type != nil {
		verr := apperr.NewValidationError()
		verr.Add(typeErr.Field, records.TypeMessage(typeErr.Type.Kind()))
		respondError(c, verr)
		return false
	}

	msg := "Invalid JSON body."
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		msg = fmt.Sprintf("JSON parse error at offset %d.", syntaxErr.Offset)
	}
	c.JSON(http.StatusBadRequest, gin.H{"non_field_errors": []string{msg}})
	return false
}
