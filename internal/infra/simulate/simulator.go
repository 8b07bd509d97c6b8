// Package simulate implements the mocked sensor feed behind the
// monitoring dashboard. There is no real sensor integration; readings
// are jittered copies of a fixed seed state.
package simulate

import (
	"math"
	"math/rand/v2"

	"agrosikkim/internal/domain/entity"
	"agrosikkim/internal/domain/service"
)

const (
	// SoilMoistureSensorID is the one reading the simulation jitters.
	SoilMoistureSensorID = "s1"

	soilMoistureMin           = 10.0
	soilMoistureMax           = 90.0
	soilMoistureJitterRange   = 10.0 // uniform in [-5, +5)
	soilMoistureWarnThreshold = 30.0
)

type sensorSimulator struct{}

// NewSensorSimulator returns the dashboard's sensor simulator.
func NewSensorSimulator() service.SensorSimulator {
	return &sensorSimulator{}
}

// Seed returns the initial dashboard state: three mock sensors, two
// standing alerts, irrigation off.
func (s *sensorSimulator) Seed() entity.DashboardState {
	return entity.DashboardState{
		Sensors: []entity.Sensor{
			{ID: SoilMoistureSensorID, Name: "Soil Moisture (Field A)", Value: 32, Unit: "%", Status: entity.SensorStatusWarning},
			{ID: "s2", Name: "Soil Temp (Field A)", Value: 24, Unit: "°C", Status: entity.SensorStatusOK},
			{ID: "s3", Name: "Tank Level", Value: 75, Unit: "%", Status: entity.SensorStatusOK},
		},
		IrrigationOn: false,
		Alerts: []string{
			"Low moisture in Field A",
			"Tank scheduled refill at 18:00",
		},
	}
}

// Step jitters the soil-moisture reading by a uniform offset in
// [-5, +5), clamps it to [10, 90], rounds to a whole percent, and
// re-derives the status. Every other sensor passes through unchanged.
// The same (state, seed) pair always yields the same result.
func (s *sensorSimulator) Step(state entity.DashboardState, seed uint64) entity.DashboardState {
	rng := rand.New(rand.NewPCG(seed, 0))

	next := state.Clone()
	for i := range next.Sensors {
		if next.Sensors[i].ID != SoilMoistureSensorID {
			continue
		}

		jitter := rng.Float64()*soilMoistureJitterRange - soilMoistureJitterRange/2
		value := next.Sensors[i].Value + jitter
		value = math.Max(soilMoistureMin, math.Min(soilMoistureMax, value))
		value = math.Round(value)

		status := entity.SensorStatusOK
		if value < soilMoistureWarnThreshold {
			status = entity.SensorStatusWarning
		}

		next.Sensors[i].Value = value
		next.Sensors[i].Status = status
	}

	return next
}
