package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sample-hr/employee-admin/internal/response"
	"github.com/sample-hr/employee-admin/internal/service"
)

// EmployeeHandler handles the employee directory and edits.
type EmployeeHandler struct {
	directory       *service.DirectoryService
	employeeService *service.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(directory *service.DirectoryService, employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{directory: directory, employeeService: employeeService}
}

// List godoc
// GET /employees
// Returns every employee ordered by hire date.
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.directory.List(c.Request.Context())
	if err != nil {
		fail(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"employees": employees})
}

// Detail godoc
// GET /employees/:id
func (h *EmployeeHandler) Detail(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		return
	}

	e, err := h.directory.Detail(c.Request.Context(), id)
	if err != nil {
		fail(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"employee": e})
}

// Edit godoc
// GET /employees/:id/edit
// Returns the edit form pre-populated with the stored values.
func (h *EmployeeHandler) Edit(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		return
	}

	form, err := h.employeeService.EditForm(c.Request.Context(), id)
	if err != nil {
		fail(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "form": form})
}

// Update godoc
// POST|PUT /employees/:id
// Applies the submitted fields and returns the updated employee.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		return
	}

	raw, err := readForm(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	e, err := h.employeeService.Update(c.Request.Context(), id, raw)
	if err != nil {
		fail(c, err, raw)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"employee": e})
}

func employeeID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}
