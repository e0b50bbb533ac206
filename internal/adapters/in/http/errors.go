package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"comanda/internal/pkg/errs"
)

// writeError maps application errors onto HTTP statuses and renders the JSON
// error body. Validation failures are 400, missing objects 404, rejected
// transitions and stale versions 409, everything else 500.
func (s *Server) writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal error"

	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrVersionConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid):
		// transition rejections carry state that moved on under the caller;
		// they are conflicts, plain bad input is not
		if isTransitionRejection(err) {
			status = http.StatusConflict
		} else {
			status = http.StatusBadRequest
		}
		message = err.Error()
	default:
		s.logger.Error("request failed", "error", err, "path", ctx.Path())
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

// isTransitionRejection distinguishes a state-machine refusal from plain bad
// input: the former names the aggregate's items or status as the offending
// parameter.
func isTransitionRejection(err error) bool {
	var invalid *errs.ValueIsInvalidError
	if !errors.As(err, &invalid) {
		return false
	}
	return invalid.ParamName == "items" || invalid.ParamName == "status"
}
