package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrosikkim/config"
	"agrosikkim/internal/delivery/http/response"
	"agrosikkim/internal/infra/simulate"
	"agrosikkim/internal/usecase/impl"
)

func newTestDashboardHandler(t *testing.T) *DashboardHandler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := impl.NewDashboardService(impl.DashboardServiceParams{
		Simulator: simulate.NewSensorSimulator(),
		Config:    &config.Config{Dashboard: &config.DashboardConfig{SimulationSeed: 1}},
		Logger:    logger,
	})

	return NewDashboardHandler(uc, logger)
}

func decodeDashboard(t *testing.T, body []byte) response.DashboardResponse {
	t.Helper()

	var out response.DashboardResponse
	require.NoError(t, json.Unmarshal(body, &out))

	return out
}

func TestDashboardHandler_Snapshot(t *testing.T) {
	h := newTestDashboardHandler(t)

	rec := do(t, h.Snapshot, http.MethodGet, "/dashboard", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	state := decodeDashboard(t, rec.Body.Bytes())
	require.Len(t, state.Sensors, 3)
	assert.Equal(t, "Soil Moisture (Field A)", state.Sensors[0].Name)
	assert.False(t, state.IrrigationOn)
	assert.Len(t, state.Alerts, 2)
}

func TestDashboardHandler_Simulate(t *testing.T) {
	h := newTestDashboardHandler(t)

	rec := do(t, h.Simulate, http.MethodPost, "/dashboard/simulate", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	state := decodeDashboard(t, rec.Body.Bytes())
	require.Len(t, state.Sensors, 3)
	assert.GreaterOrEqual(t, state.Sensors[0].Value, 10.0)
	assert.LessOrEqual(t, state.Sensors[0].Value, 90.0)
}

func TestDashboardHandler_ToggleIrrigation(t *testing.T) {
	h := newTestDashboardHandler(t)

	rec := do(t, h.ToggleIrrigation, http.MethodPost, "/dashboard/irrigation", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	state := decodeDashboard(t, rec.Body.Bytes())
	assert.True(t, state.IrrigationOn)
	assert.Equal(t, "Irrigation started manually", state.Alerts[0])
}
