package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/senshi-dojo/dojo-backend/internal/repository"
	"github.com/senshi-dojo/dojo-backend/internal/response"
	"github.com/senshi-dojo/dojo-backend/internal/service"
)

// failWith translates a service or repository error into an API error.
// Unrecognised errors are attached to the context for the access log and
// reported as 500 without detail.
func failWith(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, repository.ErrReferenceMissing):
		response.Fail(c, http.StatusNotFound, response.ErrReferenceNotFound)
	case errors.Is(err, service.ErrEmailTaken):
		response.Fail(c, http.StatusConflict, response.ErrEmailTaken)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
	case errors.Is(err, service.ErrWrongPassword):
		response.Fail(c, http.StatusUnauthorized, response.ErrWrongPassword)
	case errors.Is(err, service.ErrNoSession):
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
	case errors.Is(err, service.ErrPasswordTooShort), errors.Is(err, service.ErrPasswordTooLong):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"password": err.Error()})
	default:
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
