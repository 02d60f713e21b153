package catalog

import (
	"uniadmin-backend/internal/apperr"
	"uniadmin-backend/internal/model"
)

// Service answers catalog queries, joining records across foreign keys.
type Service struct {
	repo Repository
}

// NewService creates a catalog service over repo.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) coursesOf(universityID int64) []model.Course {
	return svc.repo.CoursesWhere(func(c model.Course) bool { return c.UniversityID == universityID })
}

func (svc *Service) studentsOf(courseID int64) []model.Student {
	return svc.repo.StudentsWhere(func(s model.Student) bool { return s.CourseID == courseID })
}

// ListUniversities returns every university with its course count.
func (svc *Service) ListUniversities() []UniversityView {
	universities := svc.repo.Universities()
	out := make([]UniversityView, 0, len(universities))
	for _, u := range universities {
		out = append(out, newUniversityView(u, svc.coursesOf(u.ID)))
	}
	return out
}

// GetUniversity returns one university with its courses.
func (svc *Service) GetUniversity(id int64) (UniversityDetail, error) {
	u, ok := svc.repo.FindUniversity(id)
	if !ok {
		return UniversityDetail{}, apperr.NotFound("university")
	}
	courses := svc.coursesOf(id)
	return UniversityDetail{
		UniversityView: newUniversityView(u, courses),
		Courses:        courses,
	}, nil
}

// ListCourses returns every course with its university name and student count.
func (svc *Service) ListCourses() []CourseView {
	courses := svc.repo.Courses()
	out := make([]CourseView, 0, len(courses))
	for _, c := range courses {
		u, found := svc.repo.FindUniversity(c.UniversityID)
		out = append(out, newCourseView(c, u, found, svc.studentsOf(c.ID)))
	}
	return out
}

// GetCourse returns one course with its students.
func (svc *Service) GetCourse(id int64) (CourseDetail, error) {
	c, ok := svc.repo.FindCourse(id)
	if !ok {
		return CourseDetail{}, apperr.NotFound("course")
	}
	u, found := svc.repo.FindUniversity(c.UniversityID)
	students := svc.studentsOf(id)
	return CourseDetail{
		CourseView: newCourseView(c, u, found, students),
		Students:   students,
	}, nil
}

// ListStudents returns every student with resolved course and university names.
func (svc *Service) ListStudents() []StudentView {
	students := svc.repo.Students()
	out := make([]StudentView, 0, len(students))
	for _, s := range students {
		out = append(out, svc.newStudentView(s))
	}
	return out
}

// GetStudent returns one student with resolved course and university names.
func (svc *Service) GetStudent(id int64) (StudentView, error) {
	s, ok := svc.repo.FindStudent(id)
	if !ok {
		return StudentView{}, apperr.NotFound("student")
	}
	return svc.newStudentView(s), nil
}

// DashboardStats counts every catalog kind and collects the distinct
// university countries and non-empty course languages in first-seen order.
func (svc *Service) DashboardStats() DashboardStats {
	universities := svc.repo.Universities()
	courses := svc.repo.Courses()

	countries := distinct(len(universities))
	for _, u := range universities {
		countries.add(u.Country)
	}
	languages := distinct(len(courses))
	for _, c := range courses {
		if c.Language != "" {
			languages.add(c.Language)
		}
	}

	return DashboardStats{
		TotalUniversities: len(universities),
		TotalCourses:      len(courses),
		TotalStudents:     len(svc.repo.Students()),
		Countries:         countries.values,
		Languages:         languages.values,
	}
}

type distinctSet struct {
	seen   map[string]struct{}
	values []string
}

func distinct(capacity int) *distinctSet {
	return &distinctSet{seen: make(map[string]struct{}, capacity), values: make([]string, 0, capacity)}
}

func (d *distinctSet) add(v string) {
	if _, ok := d.seen[v]; ok {
		return
	}
	d.seen[v] = struct{}{}
	d.values = append(d.values, v)
}
