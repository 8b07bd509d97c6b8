package handler

import (
	"log/slog"
	"net/http"

	"agrosikkim/internal/delivery/http/response"
	"agrosikkim/internal/domain/entity"
	"agrosikkim/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler serves the simulated monitoring dashboard.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// Snapshot returns the current dashboard state.
func (h *DashboardHandler) Snapshot(c echo.Context) error {
	output, err := h.uc.Snapshot(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toDashboardResponse(output.State))
}

// Simulate advances the sensor simulation by one tick.
func (h *DashboardHandler) Simulate(c echo.Context) error {
	output, err := h.uc.SimulateTick(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toDashboardResponse(output.State))
}

// ToggleIrrigation flips the irrigation switch.
func (h *DashboardHandler) ToggleIrrigation(c echo.Context) error {
	output, err := h.uc.ToggleIrrigation(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toDashboardResponse(output.State))
}

func toDashboardResponse(state entity.DashboardState) response.DashboardResponse {
	sensors := make([]response.SensorResponse, 0, len(state.Sensors))
	for _, sensor := range state.Sensors {
		sensors = append(sensors, response.SensorResponse{
			ID:     sensor.ID,
			Name:   sensor.Name,
			Value:  sensor.Value,
			Unit:   sensor.Unit,
			Status: string(sensor.Status),
		})
	}

	return response.DashboardResponse{
		Sensors:      sensors,
		IrrigationOn: state.IrrigationOn,
		Alerts:       state.Alerts,
	}
}
