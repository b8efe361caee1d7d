package http

import (
	"errors"
	"net/http"

	"purchasing/internal/adapters/out/notify"
	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/domain/model/catalog"
	"purchasing/internal/generated/servers"
	"purchasing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// problem writes the response for a failed use case.
//
//	*commands.PersistenceError  500, logged; its cause is never shown
//	*commands.ValidationErrors  422 with per-field messages
//	catalog.FieldErrors         422 with per-field messages
//	errs.ErrObjectNotFound      404
//	errs.ErrAccessDenied        403
//	errs.ErrVersionIsInvalid    409
//	other errs value errors     422
//	anything else               500, logged
func (s *Server) problem(ctx echo.Context, err error) error {
	var (
		persistenceErr *commands.PersistenceError
		validationErrs *commands.ValidationErrors
		fieldErrs      catalog.FieldErrors
	)

	switch {
	case errors.As(err, &persistenceErr):
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(),
			"stage", persistenceErr.Stage, "error", persistenceErr.Cause)
		return errorJSON(ctx, http.StatusInternalServerError, "The change could not be saved. Nothing was kept.")
	case errors.As(err, &validationErrs):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.ValidationProblem{
			Code:    http.StatusUnprocessableEntity,
			Message: "The order has errors. Nothing was saved.",
			Errors: servers.ValidationErrors{
				Header:   validationErrs.Header,
				Items:    validationErrs.Items,
				NonField: validationErrs.NonField,
			},
		})
	case errors.As(err, &fieldErrs):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.FieldProblem{
			Code:    http.StatusUnprocessableEntity,
			Message: "The entry has errors. Nothing was saved.",
			Errors:  fieldErrs,
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, "Not found")
	case errors.Is(err, errs.ErrAccessDenied):
		return errorJSON(ctx, http.StatusForbidden, "Forbidden")
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return errorJSON(ctx, http.StatusConflict, "Conflict")
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	body := servers.Error{Code: code, Message: message}
	if notes := drainNotifications(ctx); len(notes) > 0 {
		body.Notifications = &notes
	}
	return ctx.JSON(code, body)
}

func badRequest(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusBadRequest, message)
}

func unauthorized(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusUnauthorized, message)
}

// drainNotifications returns what the workflow reported for this request.
func drainNotifications(ctx echo.Context) []servers.Notification {
	collector := notify.CollectorFrom(ctx.Request().Context())
	if collector == nil {
		return []servers.Notification{}
	}

	items := collector.Drain()
	out := make([]servers.Notification, len(items))
	for i, n := range items {
		out[i] = servers.Notification{Level: servers.NotificationLevel(n.Level), Message: n.Message}
	}
	return out
}

// errorHandler renders echo errors (routing, binding, validation middleware)
// in the API error shape.
func errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code, message := http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = errorJSON(ctx, code, message)
}
