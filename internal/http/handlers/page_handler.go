package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler отдаёт статические страницы сайта.
type PageHandler struct{}

// NewPageHandler создаёт экземпляр.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Home обрабатывает GET /.
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// Courses обрабатывает GET /courses.
func (h *PageHandler) Courses(c *gin.Context) {
	c.HTML(http.StatusOK, "courses.html", nil)
}

// Portfolio обрабатывает GET /portifolio.
func (h *PageHandler) Portfolio(c *gin.Context) {
	c.HTML(http.StatusOK, "portifolio.html", nil)
}

// AddProject обрабатывает GET /add-project.
func (h *PageHandler) AddProject(c *gin.Context) {
	c.HTML(http.StatusOK, "add-project.html", nil)
}

// Login обрабатывает GET /login.
func (h *PageHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}
