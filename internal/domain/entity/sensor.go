package entity

// SensorStatus is the health classification shown on the dashboard.
type SensorStatus string

const (
	SensorStatusOK       SensorStatus = "ok"
	SensorStatusWarning  SensorStatus = "warning"
	SensorStatusCritical SensorStatus = "critical"
)

// Sensor is one simulated reading on the monitoring dashboard.
type Sensor struct {
	ID     string
	Name   string
	Value  float64
	Unit   string
	Status SensorStatus
}

// MaxDashboardAlerts caps the alert feed; newer alerts push older ones out.
const MaxDashboardAlerts = 6

// DashboardState is the whole simulated dashboard: sensor readings, the
// irrigation switch, and a bounded alert feed. It has no backing store.
type DashboardState struct {
	Sensors      []Sensor
	IrrigationOn bool
	Alerts       []string
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the live state to mutation.
func (s DashboardState) Clone() DashboardState {
	out := DashboardState{
		IrrigationOn: s.IrrigationOn,
		Sensors:      make([]Sensor, len(s.Sensors)),
		Alerts:       make([]string, len(s.Alerts)),
	}
	copy(out.Sensors, s.Sensors)
	copy(out.Alerts, s.Alerts)

	return out
}

// PushAlert prepends an alert and trims the feed to MaxDashboardAlerts.
func (s *DashboardState) PushAlert(alert string) {
	alerts := make([]string, 0, len(s.Alerts)+1)
	alerts = append(alerts, alert)
	alerts = append(alerts, s.Alerts...)
	if len(alerts) > MaxDashboardAlerts {
		alerts = alerts[:MaxDashboardAlerts]
	}
	s.Alerts = alerts
}
