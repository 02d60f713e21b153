package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"uniadmin-backend/internal/db/dbtest"
	"uniadmin-backend/internal/model"
)

// A helper function to create a mock database connection.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return gormDB, mock
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func boolPtr(b bool) *bool { return &b }

func TestGormStore_DeleteUnit_SQL(t *testing.T) {
	testCases := []struct {
		name             string
		mockExpectations func(mock sqlmock.Sqlmock)
		expectedRemoved  int64
		expectedErr      error
	}{
		{
			name: "Unit with failures is removed together with them",
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "units" WHERE "units"."id" = $1`)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "failures" WHERE unit_id = $1`)).
					WithArgs(7).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "units" WHERE "units"."id" = $1`)).
					WithArgs(7).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedRemoved: 2,
		},
		{
			name: "Missing unit rolls back without deleting",
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "units"`)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gormDB, mock := newMockDB(t)
			s := NewGormStore(gormDB)

			tc.mockExpectations(mock)

			removed, err := s.DeleteUnit(context.Background(), 7)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedRemoved, removed)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGormStore_Units(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(dbtest.NewSQLite(t))

	lab := &model.Unit{Name: "Lab B", Group: "IT", ExternalID: "U-002"}
	require.NoError(t, s.CreateUnit(ctx, lab))
	assert.NotZero(t, lab.ID)
	assert.False(t, lab.CreatedAt.IsZero())
	assert.False(t, lab.UpdatedAt.IsZero())

	annex := &model.Unit{Name: "Annex", Group: "Ops", ExternalID: "U-001", Technician: "Rui"}
	require.NoError(t, s.CreateUnit(ctx, annex))

	units, err := s.ListUnits(ctx)
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "Annex", units[0].Name, "units are ordered by name")

	t.Run("Duplicate external id is a conflict", func(t *testing.T) {
		err := s.CreateUnit(ctx, &model.Unit{Name: "Copy", Group: "IT", ExternalID: "U-002"})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("ExternalIDTaken excludes the unit itself", func(t *testing.T) {
		taken, err := s.ExternalIDTaken(ctx, "U-002", 0)
		require.NoError(t, err)
		assert.True(t, taken)

		taken, err = s.ExternalIDTaken(ctx, "U-002", lab.ID)
		require.NoError(t, err)
		assert.False(t, taken)

		taken, err = s.ExternalIDTaken(ctx, "U-999", 0)
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("Update replaces every column and keeps created_at", func(t *testing.T) {
		before, err := s.GetUnit(ctx, annex.ID)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		replaced := &model.Unit{ID: annex.ID, Name: "Annex 2", Group: "Ops", ExternalID: "U-001", CreatedAt: before.CreatedAt}
		require.NoError(t, s.UpdateUnit(ctx, replaced))

		after, err := s.GetUnit(ctx, annex.ID)
		require.NoError(t, err)
		assert.Equal(t, "Annex 2", after.Name)
		assert.Equal(t, "", after.Technician, "omitted fields are cleared on full replace")
		assert.Equal(t, before.CreatedAt.Unix(), after.CreatedAt.Unix())
		assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
	})

	t.Run("Missing unit", func(t *testing.T) {
		_, err := s.GetUnit(ctx, 999)
		assert.ErrorIs(t, err, ErrNotFound)

		exists, err := s.UnitExists(ctx, 999)
		require.NoError(t, err)
		assert.False(t, exists)

		_, err = s.DeleteUnit(ctx, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGormStore_Failures(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(dbtest.NewSQLite(t))

	unitA := &model.Unit{Name: "Lab A", Group: "IT", ExternalID: "U-A"}
	unitB := &model.Unit{Name: "Lab B", Group: "IT", ExternalID: "U-B"}
	require.NoError(t, s.CreateUnit(ctx, unitA))
	require.NoError(t, s.CreateUnit(ctx, unitB))

	failures := []*model.Failure{
		{UnitID: unitA.ID, Description: "Power supply", FailureDate: day(2025, 3, 2), Active: true},
		{UnitID: unitA.ID, Description: "Network down", FailureDate: day(2025, 3, 20), Active: false},
		{UnitID: unitB.ID, Description: "Disk full", FailureDate: day(2025, 4, 1), Active: true},
	}
	for _, f := range failures {
		require.NoError(t, s.CreateFailure(ctx, f))
	}

	t.Run("List is newest first with units preloaded", func(t *testing.T) {
		list, err := s.ListFailures(ctx, FailureFilter{})
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "Disk full", list[0].Description)
		assert.Equal(t, "Lab B", list[0].Unit.Name)
		assert.Equal(t, "Power supply", list[2].Description)
		assert.Equal(t, day(2025, 3, 2), list[2].FailureDate.UTC())
	})

	t.Run("Filters", func(t *testing.T) {
		list, err := s.ListFailures(ctx, FailureFilter{UnitID: unitA.ID})
		require.NoError(t, err)
		assert.Len(t, list, 2)

		list, err = s.ListFailures(ctx, FailureFilter{Active: boolPtr(false)})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Network down", list[0].Description)

		list, err = s.ListFailures(ctx, FailureFilter{From: day(2025, 3, 1), To: day(2025, 4, 1)})
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("Counts", func(t *testing.T) {
		counts, err := s.CountFailures(ctx, FailureFilter{})
		require.NoError(t, err)
		assert.Equal(t, FailureCounts{Active: 2, Closed: 1, Total: 3}, counts)

		counts, err = s.CountFailures(ctx, FailureFilter{From: day(2025, 3, 1), To: day(2025, 4, 1)})
		require.NoError(t, err)
		assert.Equal(t, FailureCounts{Active: 1, Closed: 1, Total: 2}, counts)
	})

	t.Run("Unknown unit is a conflict", func(t *testing.T) {
		err := s.CreateFailure(ctx, &model.Failure{UnitID: 999, Description: "x", FailureDate: day(2025, 1, 1)})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("Update keeps inactive flag", func(t *testing.T) {
		f := *failures[0]
		f.Unit = model.Unit{}
		f.Active = false
		f.Note = "replaced PSU"
		require.NoError(t, s.UpdateFailure(ctx, &f))

		got, err := s.GetFailure(ctx, f.ID)
		require.NoError(t, err)
		assert.False(t, got.Active)
		assert.Equal(t, "replaced PSU", got.Note)
	})

	t.Run("Deleting a unit removes its failures", func(t *testing.T) {
		removed, err := s.DeleteUnit(ctx, unitA.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed)

		for _, f := range failures[:2] {
			_, err := s.GetFailure(ctx, f.ID)
			assert.ErrorIs(t, err, ErrNotFound)
		}
		remaining, err := s.ListFailures(ctx, FailureFilter{})
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})

	t.Run("Delete failure", func(t *testing.T) {
		require.NoError(t, s.DeleteFailure(ctx, failures[2].ID))
		assert.ErrorIs(t, s.DeleteFailure(ctx, failures[2].ID), ErrNotFound)
	})
}
