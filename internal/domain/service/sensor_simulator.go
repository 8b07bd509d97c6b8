package service

import "agrosikkim/internal/domain/entity"

// SensorSimulator advances the mocked dashboard sensors by one step.
// The step is a pure function of (state, seed) so behavior is
// reproducible under test; the caller owns the seed sequence.
type SensorSimulator interface {
	// Seed returns the initial dashboard state.
	Seed() entity.DashboardState

	// Step returns the next state derived from the given one. The input
	// state is not mutated.
	Step(state entity.DashboardState, seed uint64) entity.DashboardState
}
