package services

import (
	"context"
	"fleet-cargo-service/internal/domain"
	"fleet-cargo-service/internal/ports"
	"fmt"
)

type VehicleSummary struct {
	Vehicle     domain.VehicleAdded
	MaxDistance int
}

type FleetSummary struct {
	Info     domain.FleetInfo
	Vehicles []VehicleSummary
}

// DescribeFleet reports fleet composition and main-compartment totals.
func DescribeFleet(ctx context.Context, repo ports.VehicleRepository) (*FleetSummary, error) {
	records, err := repo.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("describe fleet: list vehicles: %w", err)
	}

	fleet, err := BuildFleet(records, domain.Discard)
	if err != nil {
		return nil, fmt.Errorf("describe fleet: %w", err)
	}

	vehicles := fleet.Vehicles()
	summary := &FleetSummary{
		Info:     fleet.Info(),
		Vehicles: make([]VehicleSummary, 0, len(vehicles)),
	}
	for _, v := range vehicles {
		summary.Vehicles = append(summary.Vehicles, VehicleSummary{
			Vehicle:     v.Describe(),
			MaxDistance: v.MaxDistance(),
		})
	}
	return summary, nil
}
