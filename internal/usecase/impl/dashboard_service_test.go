package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrosikkim/config"
	"agrosikkim/internal/domain/entity"
	"agrosikkim/internal/infra/simulate"
	"agrosikkim/internal/usecase"
)

func createTestDashboardService(t *testing.T, seed uint64) usecase.DashboardUsecase {
	t.Helper()

	return NewDashboardService(DashboardServiceParams{
		Simulator: simulate.NewSensorSimulator(),
		Config:    &config.Config{Dashboard: &config.DashboardConfig{SimulationSeed: seed}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestDashboardService_Snapshot(t *testing.T) {
	svc := createTestDashboardService(t, 1)
	ctx := context.Background()

	output, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, output.State.Sensors, 3)
	assert.False(t, output.State.IrrigationOn)

	// The snapshot is a copy; mutating it must not leak back.
	output.State.Sensors[0].Value = -1
	again, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, -1.0, again.State.Sensors[0].Value)
}

func TestDashboardService_SimulateTick_Deterministic(t *testing.T) {
	ctx := context.Background()

	first := createTestDashboardService(t, 7)
	second := createTestDashboardService(t, 7)

	for i := 0; i < 10; i++ {
		a, err := first.SimulateTick(ctx)
		require.NoError(t, err)
		b, err := second.SimulateTick(ctx)
		require.NoError(t, err)

		assert.Equal(t, a.State, b.State)
	}
}

func TestDashboardService_SimulateTick_AdvancesSeed(t *testing.T) {
	svc := createTestDashboardService(t, 7)
	ctx := context.Background()

	// Consecutive ticks draw from different seeds, so two ticks from the
	// same state are allowed to differ while the sequence stays reproducible.
	seen := map[float64]bool{}
	for i := 0; i < 20; i++ {
		output, err := svc.SimulateTick(ctx)
		require.NoError(t, err)
		seen[output.State.Sensors[0].Value] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestDashboardService_ToggleIrrigation(t *testing.T) {
	svc := createTestDashboardService(t, 1)
	ctx := context.Background()

	output, err := svc.ToggleIrrigation(ctx)
	require.NoError(t, err)
	assert.True(t, output.State.IrrigationOn)
	assert.Equal(t, "Irrigation started manually", output.State.Alerts[0])

	output, err = svc.ToggleIrrigation(ctx)
	require.NoError(t, err)
	assert.False(t, output.State.IrrigationOn)
	assert.Equal(t, "Irrigation stopped manually", output.State.Alerts[0])
}

func TestDashboardService_AlertFeedIsBounded(t *testing.T) {
	svc := createTestDashboardService(t, 1)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := svc.ToggleIrrigation(ctx)
		require.NoError(t, err)
	}

	output, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, output.State.Alerts, entity.MaxDashboardAlerts)
}
