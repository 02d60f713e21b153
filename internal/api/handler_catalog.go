package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListUniversities handles GET /api/universities.
func (h *Handler) ListUniversities(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListUniversities())
}

// GetUniversity handles GET /api/universities/:id.
func (h *Handler) GetUniversity(c *gin.Context) {
	id, ok := pathID(c, "university")
	if !ok {
		return
	}
	detail, err := h.catalog.GetUniversity(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListCourses handles GET /api/courses.
func (h *Handler) ListCourses(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListCourses())
}

// GetCourse handles GET /api/courses/:id.
func (h *Handler) GetCourse(c *gin.Context) {
	id, ok := pathID(c, "course")
	if !ok {
		return
	}
	detail, err := h.catalog.GetCourse(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListStudents handles GET /api/students.
func (h *Handler) ListStudents(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListStudents())
}

// GetStudent handles GET /api/students/:id.
func (h *Handler) GetStudent(c *gin.Context) {
	id, ok := pathID(c, "student")
	if !ok {
		return
	}
	view, err := h.catalog.GetStudent(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DashboardStats handles GET /api/dashboard/stats.
func (h *Handler) DashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.DashboardStats())
}
