package handler

import (
	"log/slog"

	"alzassist/internal/delivery/api/response"
	"alzassist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler serves the calling caretaker's geofence alerts
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// ListAlerts lists the caller's alerts, newest first.
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	alerts, err := h.alertUC.ListForCaretaker(c.Request().Context(), caller.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, nonNil(alerts))
}

// CountUnresolved returns {"count": n} for the caller's unresolved alerts.
func (h *AlertHandler) CountUnresolved(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	count, err := h.alertUC.CountUnresolved(c.Request().Context(), caller.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]int64{"count": count})
}

// ResolveAlert marks one of the caller's alerts resolved.
func (h *AlertHandler) ResolveAlert(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}
	alertID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	alert, err := h.alertUC.Resolve(c.Request().Context(), alertID, caller.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, alert)
}
