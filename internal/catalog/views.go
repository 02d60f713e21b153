package catalog

import "uniadmin-backend/internal/model"

// Unresolved is shown in place of a name whose foreign key does not resolve.
const Unresolved = "N/A"

// UniversityView is a University annotated with its course count.
type UniversityView struct {
	model.University
	CoursesCount int `json:"courses_count"`
}

// UniversityDetail adds the university's courses to UniversityView.
type UniversityDetail struct {
	UniversityView
	Courses []model.Course `json:"courses"`
}

// CourseView is a Course annotated with its university name and student count.
type CourseView struct {
	model.Course
	UniversityName string `json:"university_name"`
	StudentsCount  int    `json:"students_count"`
}

// CourseDetail adds the course's students to CourseView.
type CourseDetail struct {
	CourseView
	Students []model.Student `json:"students"`
}

// StudentView is a Student annotated with names resolved through its course.
type StudentView struct {
	model.Student
	FullName       string `json:"full_name"`
	CourseName     string `json:"course_name"`
	UniversityName string `json:"university_name"`
}

// DashboardStats aggregates the whole catalog.
type DashboardStats struct {
	TotalUniversities int      `json:"total_universities"`
	TotalCourses      int      `json:"total_courses"`
	TotalStudents     int      `json:"total_students"`
	Countries         []string `json:"countries"`
	Languages         []string `json:"languages"`
}

func newUniversityView(u model.University, courses []model.Course) UniversityView {
	return UniversityView{University: u, CoursesCount: len(courses)}
}

func newCourseView(c model.Course, university model.University, found bool, students []model.Student) CourseView {
	name := Unresolved
	if found {
		name = university.Name
	}
	return CourseView{Course: c, UniversityName: name, StudentsCount: len(students)}
}

// FullName joins first and last name with a single space.
func FullName(s model.Student) string {
	return s.FirstName + " " + s.LastName
}

func (svc *Service) newStudentView(s model.Student) StudentView {
	v := StudentView{
		Student:        s,
		FullName:       FullName(s),
		CourseName:     Unresolved,
		UniversityName: Unresolved,
	}
	course, ok := svc.repo.FindCourse(s.CourseID)
	if !ok {
		return v
	}
	v.CourseName = course.Name
	if u, ok := svc.repo.FindUniversity(course.UniversityID); ok {
		v.UniversityName = u.Name
	}
	return v
}
