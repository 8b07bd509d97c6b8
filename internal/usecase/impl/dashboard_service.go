package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"agrosikkim/config"
	deliverycontext "agrosikkim/internal/delivery/context"
	"agrosikkim/internal/domain/entity"
	"agrosikkim/internal/domain/service"
	"agrosikkim/internal/usecase"

	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface. The state
// it guards is simulated and process-local; it is never persisted.
type dashboardService struct {
	mu        sync.Mutex
	state     entity.DashboardState
	nextSeed  uint64
	simulator service.SensorSimulator
	logger    *slog.Logger
}

// DashboardServiceParams holds dependencies for dashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	Simulator service.SensorSimulator
	Config    *config.Config
	Logger    *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	var seed uint64
	if params.Config != nil && params.Config.Dashboard != nil {
		seed = params.Config.Dashboard.SimulationSeed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &dashboardService{
		state:     params.Simulator.Seed(),
		nextSeed:  seed,
		simulator: params.Simulator,
		logger:    params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Snapshot returns a copy of the current dashboard state.
func (srv *dashboardService) Snapshot(_ context.Context) (*usecase.DashboardOutput, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return &usecase.DashboardOutput{State: srv.state.Clone()}, nil
}

// SimulateTick advances the sensor simulation by one step. Each tick
// consumes one seed from a deterministic sequence, so a fixed starting
// seed reproduces the whole run.
func (srv *dashboardService) SimulateTick(ctx context.Context) (*usecase.DashboardOutput, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	seed := srv.nextSeed
	srv.nextSeed++

	srv.state = srv.simulator.Step(srv.state, seed)
	srv.log(ctx).Debug("Advanced sensor simulation", slog.Uint64("seed", seed))

	return &usecase.DashboardOutput{State: srv.state.Clone()}, nil
}

// ToggleIrrigation flips the irrigation switch and records the manual
// action at the head of the alert feed.
func (srv *dashboardService) ToggleIrrigation(ctx context.Context) (*usecase.DashboardOutput, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.state.IrrigationOn = !srv.state.IrrigationOn

	note := "Irrigation stopped manually"
	if srv.state.IrrigationOn {
		note = "Irrigation started manually"
	}
	srv.state.PushAlert(note)

	srv.log(ctx).Info("Toggled irrigation", slog.Bool("irrigationOn", srv.state.IrrigationOn))

	return &usecase.DashboardOutput{State: srv.state.Clone()}, nil
}
