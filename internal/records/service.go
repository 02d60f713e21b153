// Package records implements validated CRUD over units and their failures.
package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"uniadmin-backend/internal/apperr"
	"uniadmin-backend/internal/metrics"
	"uniadmin-backend/internal/model"
	"uniadmin-backend/internal/parse"
	"uniadmin-backend/internal/store"
)

// Service validates payloads and persists units and failures.
type Service struct {
	store    store.Store
	validate *validator.Validate
}

// NewService creates a records service over s.
func NewService(s store.Store) *Service {
	return &Service{store: s, validate: newValidator()}
}

// structErrors runs the struct-tag constraints of in into verr.
func (svc *Service) structErrors(in any, verr *apperr.ValidationError) error {
	err := svc.validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate payload: %w", err)
	}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), fieldMessage(fe))
	}
	return nil
}

func notFound(entity string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound(entity)
	}
	return err
}

func recordMutation(entity, op string) {
	metrics.RecordMutations.WithLabelValues(entity, op).Inc()
}

// --- Units ---

// ListUnits returns every unit.
func (svc *Service) ListUnits(ctx context.Context) ([]model.Unit, error) {
	return svc.store.ListUnits(ctx)
}

// GetUnit returns the unit or a NotFoundError.
func (svc *Service) GetUnit(ctx context.Context, id int64) (*model.Unit, error) {
	unit, err := svc.store.GetUnit(ctx, id)
	if err != nil {
		return nil, notFound("unit", err)
	}
	return unit, nil
}

// validateUnit checks in and pre-checks external id uniqueness against every
// unit except excludeID.
func (svc *Service) validateUnit(ctx context.Context, in *UnitInput, excludeID int64) error {
	in.normalize()
	verr := apperr.NewValidationError()
	if err := svc.structErrors(in, verr); err != nil {
		return err
	}

	if !verr.Has("id_unidade") {
		taken, err := svc.store.ExternalIDTaken(ctx, in.ExternalID, excludeID)
		if err != nil {
			return err
		}
		if taken {
			verr.Add("id_unidade", msgUnitUnique)
		}
	}
	return verr.OrNil()
}

// unitConflict converts a late uniqueness violation into a ValidationError.
func unitConflict(err error) error {
	if errors.Is(err, store.ErrConflict) {
		verr := apperr.NewValidationError()
		verr.Add("id_unidade", msgUnitUnique)
		return verr
	}
	return err
}

func (in UnitInput) apply(unit *model.Unit) {
	unit.Name = in.Name
	unit.Group = in.Group
	unit.Technician = in.Technician
	unit.ExternalID = in.ExternalID
	unit.Notes = in.Notes
}

// CreateUnit validates in and stores a new unit.
func (svc *Service) CreateUnit(ctx context.Context, in UnitInput) (*model.Unit, error) {
	if err := svc.validateUnit(ctx, &in, 0); err != nil {
		return nil, err
	}

	var unit model.Unit
	in.apply(&unit)
	if err := svc.store.CreateUnit(ctx, &unit); err != nil {
		return nil, unitConflict(err)
	}

	recordMutation("unit", "create")
	log.WithFields(log.Fields{"unit_id": unit.ID, "id_unidade": unit.ExternalID}).Info("unit created")
	return &unit, nil
}

// UpdateUnit replaces every field of the unit with in.
func (svc *Service) UpdateUnit(ctx context.Context, id int64, in UnitInput) (*model.Unit, error) {
	unit, err := svc.GetUnit(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := svc.validateUnit(ctx, &in, id); err != nil {
		return nil, err
	}

	in.apply(unit)
	if err := svc.store.UpdateUnit(ctx, unit); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("unit")
		}
		return nil, unitConflict(err)
	}

	recordMutation("unit", "update")
	return unit, nil
}

// DeleteUnit removes the unit and every failure recorded against it.
func (svc *Service) DeleteUnit(ctx context.Context, id int64) error {
	if _, err := svc.store.DeleteUnit(ctx, id); err != nil {
		return notFound("unit", err)
	}
	recordMutation("unit", "delete")
	return nil
}

// --- Failures ---

// ListFailures returns failures matching filter with their units loaded.
func (svc *Service) ListFailures(ctx context.Context, filter store.FailureFilter) ([]model.Failure, error) {
	return svc.store.ListFailures(ctx, filter)
}

// FailureStats counts active and closed failures matching filter.
func (svc *Service) FailureStats(ctx context.Context, filter store.FailureFilter) (store.FailureCounts, error) {
	return svc.store.CountFailures(ctx, filter)
}

// GetFailure returns the failure or a NotFoundError.
func (svc *Service) GetFailure(ctx context.Context, id int64) (*model.Failure, error) {
	failure, err := svc.store.GetFailure(ctx, id)
	if err != nil {
		return nil, notFound("failure", err)
	}
	return failure, nil
}

// validateFailure checks in and resolves it into the writable failure fields.
func (svc *Service) validateFailure(ctx context.Context, in *FailureInput) (model.Failure, error) {
	in.normalize()
	verr := apperr.NewValidationError()
	if err := svc.structErrors(in, verr); err != nil {
		return model.Failure{}, err
	}

	var out model.Failure
	if in.UnitID != nil {
		unitID := int64(*in.UnitID)
		exists, err := svc.store.UnitExists(ctx, unitID)
		if err != nil {
			return model.Failure{}, err
		}
		if !exists {
			verr.Add("unidade", fmt.Sprintf(msgUnitNotFound, unitID))
		}
		out.UnitID = unitID
	}

	if !verr.Has("data_falha") {
		date, err := parse.Date(in.Date)
		if err != nil {
			verr.Add("data_falha", msgDateFormat)
		}
		out.FailureDate = date
	}

	if err := verr.OrNil(); err != nil {
		return model.Failure{}, err
	}

	out.Description = in.Description
	out.Note = in.Note
	out.Active = true
	if in.Active != nil {
		out.Active = *in.Active
	}
	return out, nil
}

// failureConflict converts a late foreign key violation into a ValidationError.
func failureConflict(err error, unitID int64) error {
	if errors.Is(err, store.ErrConflict) {
		verr := apperr.NewValidationError()
		verr.Add("unidade", fmt.Sprintf(msgUnitNotFound, unitID))
		return verr
	}
	return err
}

// CreateFailure validates in and stores a new failure.
func (svc *Service) CreateFailure(ctx context.Context, in FailureInput) (*model.Failure, error) {
	failure, err := svc.validateFailure(ctx, &in)
	if err != nil {
		return nil, err
	}
	if err := svc.store.CreateFailure(ctx, &failure); err != nil {
		return nil, failureConflict(err, failure.UnitID)
	}

	recordMutation("failure", "create")
	log.WithFields(log.Fields{"failure_id": failure.ID, "unit_id": failure.UnitID}).Info("failure recorded")
	return svc.GetFailure(ctx, failure.ID)
}

// UpdateFailure replaces every field of the failure with in.
func (svc *Service) UpdateFailure(ctx context.Context, id int64, in FailureInput) (*model.Failure, error) {
	existing, err := svc.GetFailure(ctx, id)
	if err != nil {
		return nil, err
	}
	failure, err := svc.validateFailure(ctx, &in)
	if err != nil {
		return nil, err
	}

	failure.ID = existing.ID
	failure.CreatedAt = existing.CreatedAt
	if err := svc.store.UpdateFailure(ctx, &failure); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("failure")
		}
		return nil, failureConflict(err, failure.UnitID)
	}

	recordMutation("failure", "update")
	return svc.GetFailure(ctx, id)
}

// DeleteFailure removes the failure.
func (svc *Service) DeleteFailure(ctx context.Context, id int64) error {
	if err := svc.store.DeleteFailure(ctx, id); err != nil {
		return notFound("failure", err)
	}
	recordMutation("failure", "delete")
	return nil
}
