package repository

import (
	"context"

	"github.com/travel-time-gateway/internal/domain"
)

// RoutingRepository is the public transit route search provider
type RoutingRepository interface {
	// SearchBusOnlyPath performs a single bus-only path search and returns
	// the total time of the first path found.
	SearchBusOnlyPath(ctx context.Context, query domain.RouteQuery) (*domain.TravelTimeResult, error)
}
