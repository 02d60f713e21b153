package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniadmin-backend/internal/model"
)

func TestNewMemoryRepository_Rejects(t *testing.T) {
	testCases := []struct {
		name         string
		universities []model.University
		courses      []model.Course
		students     []model.Student
	}{
		{
			name:         "Duplicate university id",
			universities: []model.University{{ID: 1}, {ID: 1}},
		},
		{
			name:    "Duplicate course id",
			courses: []model.Course{{ID: 2}, {ID: 2}},
		},
		{
			name:     "Duplicate student id",
			students: []model.Student{{ID: 3, Email: "a@x"}, {ID: 3, Email: "b@x"}},
		},
		{
			name:     "Duplicate email",
			students: []model.Student{{ID: 3, Email: "a@x"}, {ID: 4, Email: "a@x"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMemoryRepository(tc.universities, tc.courses, tc.students)
			assert.Error(t, err)
		})
	}
}

func TestMemoryRepository_Lookups(t *testing.T) {
	repo := SeedRepository()

	u, ok := repo.FindUniversity(1)
	require.True(t, ok)
	assert.Equal(t, 1096, u.EstablishedYear)

	_, ok = repo.FindUniversity(6)
	assert.False(t, ok)

	oxford := repo.CoursesWhere(func(c model.Course) bool { return c.UniversityID == 1 })
	assert.Len(t, oxford, 2)

	none := repo.StudentsWhere(func(model.Student) bool { return false })
	assert.NotNil(t, none)
	assert.Empty(t, none)

	assert.Empty(t, DanglingReferences(repo))
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := SeedRepository()

	list := repo.Universities()
	list[0].Name = "changed"

	u, _ := repo.FindUniversity(list[0].ID)
	assert.NotEqual(t, "changed", u.Name)
}

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
universities:
  - id: 1
    name: Oxford
    country: UK
    established_year: 1096
    created_at: 2024-01-01T00:00:00Z
courses:
  - id: 1
    name: CS
    language: English
    university_id: 1
  - id: 2
    name: Dangling
    university_id: 7
students:
  - id: 1
    first_name: Ana
    last_name: Silva
    email: ana@example.com
    birth_date: 1998-05-15
    course_id: 1
`), 0o600))

	repo, err := LoadFixture(path)
	require.NoError(t, err)

	s, ok := repo.FindStudent(1)
	require.True(t, ok)
	assert.Equal(t, model.NewDate(1998, time.May, 15), s.BirthDate)

	u, ok := repo.FindUniversity(1)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), u.CreatedAt.UTC())

	assert.Equal(t, []string{"course 2 references missing university 7"}, DanglingReferences(repo))
}

func TestLoadFixture_UnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("universities:\n  - id: 1\n    motto: Dominus\n"), 0o600))

	_, err := LoadFixture(path)
	assert.Error(t, err)
}
