package usecase

import (
	"context"

	"agrosikkim/internal/domain/entity"
)

// DashboardOutput is a point-in-time copy of the simulated dashboard.
type DashboardOutput struct {
	State entity.DashboardState
}

// DashboardUsecase exposes the mocked monitoring dashboard. All state is
// process-local and simulated; nothing here touches the store.
type DashboardUsecase interface {
	// Snapshot returns a copy of the current dashboard state.
	Snapshot(ctx context.Context) (*DashboardOutput, error)

	// SimulateTick advances the sensor simulation by one step and
	// returns the resulting state.
	SimulateTick(ctx context.Context) (*DashboardOutput, error)

	// ToggleIrrigation flips the irrigation switch, records the manual
	// action in the alert feed, and returns the resulting state.
	ToggleIrrigation(ctx context.Context) (*DashboardOutput, error)
}
