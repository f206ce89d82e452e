package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nntexpressinc/blackhawks.tms-sub001/pkg/resp"
	"github.com/nntexpressinc/blackhawks.tms-sub001/services"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	var missing *services.MissingFieldsError
	var fields services.FieldErrors

	switch {
	case errors.As(err, &missing):
		resp.MissingFields(c, missing.Fields)
	case errors.As(err, &fields):
		resp.FieldErrors(c, fields)
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrStaleWrite):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrWorkflowComplete):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
