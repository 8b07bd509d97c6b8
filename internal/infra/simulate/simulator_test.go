package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrosikkim/internal/domain/entity"
)

func TestSeedState(t *testing.T) {
	sim := NewSensorSimulator()

	state := sim.Seed()

	require.Len(t, state.Sensors, 3)
	assert.Equal(t, SoilMoistureSensorID, state.Sensors[0].ID)
	assert.Equal(t, entity.SensorStatusWarning, state.Sensors[0].Status)
	assert.False(t, state.IrrigationOn)
	assert.Len(t, state.Alerts, 2)
}

func TestStepIsDeterministic(t *testing.T) {
	sim := NewSensorSimulator()
	seedState := sim.Seed()

	first := sim.Step(seedState, 42)
	second := sim.Step(seedState, 42)

	assert.Equal(t, first, second)
}

func TestStepOnlyTouchesSoilMoisture(t *testing.T) {
	sim := NewSensorSimulator()
	seedState := sim.Seed()

	next := sim.Step(seedState, 7)

	assert.Equal(t, seedState.Sensors[1], next.Sensors[1])
	assert.Equal(t, seedState.Sensors[2], next.Sensors[2])
	assert.Equal(t, seedState.Alerts, next.Alerts)
	assert.Equal(t, seedState.IrrigationOn, next.IrrigationOn)
}

func TestStepStaysWithinBounds(t *testing.T) {
	sim := NewSensorSimulator()
	state := sim.Seed()

	for seed := uint64(0); seed < 500; seed++ {
		state = sim.Step(state, seed)

		value := state.Sensors[0].Value
		require.GreaterOrEqual(t, value, 10.0)
		require.LessOrEqual(t, value, 90.0)
		require.Equal(t, value, float64(int64(value)), "value should be rounded to a whole number")
	}
}

func TestStepStatusThreshold(t *testing.T) {
	sim := NewSensorSimulator()
	state := sim.Seed()
	state.Sensors[0].Value = 11

	// Any jitter in [-5, +5) keeps the value under 30.
	next := sim.Step(state, 3)
	assert.Equal(t, entity.SensorStatusWarning, next.Sensors[0].Status)

	state.Sensors[0].Value = 80
	next = sim.Step(state, 3)
	assert.Equal(t, entity.SensorStatusOK, next.Sensors[0].Status)
}

func TestStepDoesNotMutateInput(t *testing.T) {
	sim := NewSensorSimulator()
	state := sim.Seed()
	before := state.Clone()

	_ = sim.Step(state, 99)

	assert.Equal(t, before, state)
}
