package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/empmgmt/employee-backend/internal/model"
	"github.com/empmgmt/employee-backend/internal/repository"
	"github.com/empmgmt/employee-backend/internal/response"
)

// failFromErr maps the typed service conditions to HTTP status codes.
// Validation failures are 400, missing rows 404, duplicates and write
// conflicts 409 (restricted deletes with a dependency code), everything
// else 500.
func failFromErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidValue):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"detail": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, repository.ErrForeignKey):
		response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
	case errors.Is(err, repository.ErrDuplicate), errors.Is(err, repository.ErrWriteConflict):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
