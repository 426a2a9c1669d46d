package services

import (
	"context"
	"errors"
	"fleet-cargo-service/internal/domain"
	"fleet-cargo-service/internal/platform/obs"
	"fleet-cargo-service/internal/ports"
	"fmt"

	"github.com/google/uuid"
)

var ErrNegativePath = errors.New("path must not be negative")

type CheckRouteRequest struct {
	Path  int
	Cargo []*domain.Cargo
}

// Per-vehicle state observed right after the check, before unloading.
type VehicleLoad struct {
	Vehicle       string
	CurrentLoad   int
	TrailerLoad   int
	TotalCapacity int
	MaxDistance   int
}

type RouteVerdict struct {
	CheckID  uuid.UUID
	Path     int
	Feasible bool
	Loads    []VehicleLoad
	Events   []domain.Event
}

type trailerLoader interface {
	TrailerCurrentLoad() int
}

// CheckRoute answers whether the stored fleet can carry req.Cargo over req.Path.
//
// Each call builds its own fleet from the repository, so concurrent checks never
// share load counters. The fleet is unloaded after the verdict is recorded.
func CheckRoute(
	ctx context.Context,
	req CheckRouteRequest,
	repo ports.VehicleRepository,
	sink domain.EventSink,
) (_ *RouteVerdict, err error) {
	defer obs.Time(ctx, "fleet.CheckRoute")(&err)

	if req.Path < 0 {
		return nil, fmt.Errorf("check route: path=%d: %w", req.Path, ErrNegativePath)
	}

	records, err := repo.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("check route: list vehicles: %w", err)
	}

	recorded := make([]domain.Event, 0, 2*len(req.Cargo)+4)
	recording := false
	tee := domain.EventSinkFunc(func(e domain.Event) {
		if recording {
			recorded = append(recorded, e)
		}
		if sink != nil {
			sink.Emit(e)
		}
	})

	fleet, err := BuildFleet(records, tee)
	if err != nil {
		return nil, fmt.Errorf("check route: %w", err)
	}

	recording = true
	feasible := fleet.CanGo(req.Cargo, req.Path)
	recording = false

	verdict := &RouteVerdict{
		CheckID:  uuid.New(),
		Path:     req.Path,
		Feasible: feasible,
		Loads:    snapshotLoads(fleet),
		Events:   recorded,
	}

	fleet.UnloadAll()
	return verdict, nil
}

func snapshotLoads(fleet *domain.Fleet) []VehicleLoad {
	vehicles := fleet.Vehicles()
	loads := make([]VehicleLoad, 0, len(vehicles))
	for _, v := range vehicles {
		l := VehicleLoad{
			Vehicle:       v.Name(),
			CurrentLoad:   v.CurrentLoad(),
			TotalCapacity: v.TotalCapacity(),
			MaxDistance:   v.MaxDistance(),
		}
		if t, ok := v.(trailerLoader); ok {
			l.TrailerLoad = t.TrailerCurrentLoad()
		}
		loads = append(loads, l)
	}
	return loads
}
