package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sample-hr/employee-admin/internal/response"
	"github.com/sample-hr/employee-admin/internal/service"
	"github.com/sample-hr/employee-admin/internal/validator"
)

// AdministratorHandler handles administrator registration.
type AdministratorHandler struct {
	adminService *service.AdministratorService
}

// NewAdministratorHandler creates a new AdministratorHandler.
func NewAdministratorHandler(adminService *service.AdministratorService) *AdministratorHandler {
	return &AdministratorHandler{adminService: adminService}
}

// New godoc
// GET /administrators/new
// Returns the empty registration form.
func (h *AdministratorHandler) New(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"form": validator.BlankRegistration()})
}

// Create godoc
// POST /administrators
// Registers an administrator and points the client at the login page.
func (h *AdministratorHandler) Create(c *gin.Context) {
	raw, err := readForm(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	admin, err := h.adminService.Register(c.Request.Context(), raw)
	if err != nil {
		fail(c, err, raw)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"administrator": admin,
		"redirect":      LocationLogin,
	})
}
