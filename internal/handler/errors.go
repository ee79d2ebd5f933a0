package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sample-hr/employee-admin/internal/repository"
	"github.com/sample-hr/employee-admin/internal/response"
	"github.com/sample-hr/employee-admin/internal/service"
	"github.com/sample-hr/employee-admin/internal/validator"
)

// fail maps a service error onto the response envelope. raw is the
// submission that produced err, echoed back without secrets on validation
// failures; it may be nil.
func fail(c *gin.Context, err error, raw map[string]string) {
	if fields := validator.Fields(err); fields != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.FailWithForm(c, http.StatusUnauthorized, response.ErrInvalidCredentials, fields, validator.Echo(raw))
			return
		}
		response.FailWithForm(c, http.StatusUnprocessableEntity, response.ErrValidation, fields, validator.Echo(raw))
		return
	}

	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		response.Fail(c, http.StatusUnauthorized, response.ErrSessionRequired)
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
