package catalog

import (
	"fmt"

	"uniadmin-backend/internal/model"
)

// Repository is read-only access to the catalog records.
type Repository interface {
	Universities() []model.University
	Courses() []model.Course
	Students() []model.Student

	FindUniversity(id int64) (model.University, bool)
	FindCourse(id int64) (model.Course, bool)
	FindStudent(id int64) (model.Student, bool)

	CoursesWhere(match func(model.Course) bool) []model.Course
	StudentsWhere(match func(model.Student) bool) []model.Student
}

// memoryRepository holds fixed catalog data. It is never mutated after
// construction, so concurrent reads need no locking.
type memoryRepository struct {
	universities []model.University
	courses      []model.Course
	students     []model.Student

	universityIdx map[int64]int
	courseIdx     map[int64]int
	studentIdx    map[int64]int
}

// NewMemoryRepository indexes the given records. Identifiers must be unique per
// kind and student emails must be unique. Dangling foreign keys are accepted.
func NewMemoryRepository(universities []model.University, courses []model.Course, students []model.Student) (Repository, error) {
	r := &memoryRepository{
		universities:  append([]model.University(nil), universities...),
		courses:       append([]model.Course(nil), courses...),
		students:      append([]model.Student(nil), students...),
		universityIdx: make(map[int64]int, len(universities)),
		courseIdx:     make(map[int64]int, len(courses)),
		studentIdx:    make(map[int64]int, len(students)),
	}

	for i, u := range r.universities {
		if _, dup := r.universityIdx[u.ID]; dup {
			return nil, fmt.Errorf("duplicate university id %d", u.ID)
		}
		r.universityIdx[u.ID] = i
	}
	for i, c := range r.courses {
		if _, dup := r.courseIdx[c.ID]; dup {
			return nil, fmt.Errorf("duplicate course id %d", c.ID)
		}
		r.courseIdx[c.ID] = i
	}
	emails := make(map[string]int64, len(r.students))
	for i, s := range r.students {
		if _, dup := r.studentIdx[s.ID]; dup {
			return nil, fmt.Errorf("duplicate student id %d", s.ID)
		}
		if other, dup := emails[s.Email]; dup {
			return nil, fmt.Errorf("students %d and %d share email %q", other, s.ID, s.Email)
		}
		emails[s.Email] = s.ID
		r.studentIdx[s.ID] = i
	}
	return r, nil
}

func (r *memoryRepository) Universities() []model.University {
	return append([]model.University(nil), r.universities...)
}

func (r *memoryRepository) Courses() []model.Course {
	return append([]model.Course(nil), r.courses...)
}

func (r *memoryRepository) Students() []model.Student {
	return append([]model.Student(nil), r.students...)
}

func (r *memoryRepository) FindUniversity(id int64) (model.University, bool) {
	i, ok := r.universityIdx[id]
	if !ok {
		return model.University{}, false
	}
	return r.universities[i], true
}

func (r *memoryRepository) FindCourse(id int64) (model.Course, bool) {
	i, ok := r.courseIdx[id]
	if !ok {
		return model.Course{}, false
	}
	return r.courses[i], true
}

func (r *memoryRepository) FindStudent(id int64) (model.Student, bool) {
	i, ok := r.studentIdx[id]
	if !ok {
		return model.Student{}, false
	}
	return r.students[i], true
}

func (r *memoryRepository) CoursesWhere(match func(model.Course) bool) []model.Course {
	out := make([]model.Course, 0)
	for _, c := range r.courses {
		if match(c) {
			out = append(out, c)
		}
	}
	return out
}

func (r *memoryRepository) StudentsWhere(match func(model.Student) bool) []model.Student {
	out := make([]model.Student, 0)
	for _, s := range r.students {
		if match(s) {
			out = append(out, s)
		}
	}
	return out
}

// DanglingReferences lists foreign keys that do not resolve, for startup warnings.
func DanglingReferences(repo Repository) []string {
	var out []string
	for _, c := range repo.Courses() {
		if _, ok := repo.FindUniversity(c.UniversityID); !ok {
			out = append(out, fmt.Sprintf("course %d references missing university %d", c.ID, c.UniversityID))
		}
	}
	for _, s := range repo.Students() {
		if _, ok := repo.FindCourse(s.CourseID); !ok {
			out = append(out, fmt.Sprintf("student %d references missing course %d", s.ID, s.CourseID))
		}
	}
	return out
}
