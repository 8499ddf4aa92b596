package usecase

import (
	"context"
	"math"

	"github.com/travel-time-gateway/internal/domain"
	"github.com/travel-time-gateway/internal/domain/repository"
	"github.com/travel-time-gateway/internal/pkg/errors"
	"github.com/travel-time-gateway/internal/usecase/dto"
	"go.uber.org/zap"
)

type TravelTimeUseCase struct {
	routingRepo repository.RoutingRepository
	scope       domain.SearchScope
	logger      *zap.Logger
}

func NewTravelTimeUseCase(
	routingRepo repository.RoutingRepository,
	scope domain.SearchScope,
	logger *zap.Logger,
) *TravelTimeUseCase {
	return &TravelTimeUseCase{
		routingRepo: routingRepo,
		scope:       scope,
		logger:      logger,
	}
}

// Scope returns the search scope this gateway instance is deployed for.
func (uc *TravelTimeUseCase) Scope() domain.SearchScope {
	return uc.scope
}

// ComputeBusOnlyTravelTime returns the total time of the first bus-only path.
// Coordinates are not range checked; the provider decides what is a valid location.
func (uc *TravelTimeUseCase) ComputeBusOnlyTravelTime(
	ctx context.Context,
	req dto.TravelTimeRequest,
) (*dto.TravelTimeResponse, error) {
	query, err := uc.buildQuery(req)
	if err != nil {
		return nil, err
	}

	result, err := uc.routingRepo.SearchBusOnlyPath(ctx, query)
	if err != nil {
		uc.logger.Error("Failed to compute bus-only travel time",
			zap.Stringer("scope", uc.scope),
			zap.Float64("start_lat", query.Start.Lat),
			zap.Float64("start_lon", query.Start.Lon),
			zap.Float64("end_lat", query.End.Lat),
			zap.Float64("end_lon", query.End.Lon),
			zap.Error(err))
		return nil, err
	}

	return &dto.TravelTimeResponse{
		TotalTime: result.TotalMinutes,
	}, nil
}

func (uc *TravelTimeUseCase) buildQuery(req dto.TravelTimeRequest) (domain.RouteQuery, error) {
	coords := []struct {
		name  string
		value *float64
	}{
		{"start_lat", req.StartLat},
		{"start_lon", req.StartLon},
		{"end_lat", req.EndLat},
		{"end_lon", req.EndLon},
	}
	for _, c := range coords {
		if c.value == nil {
			return domain.RouteQuery{}, errors.InvalidRequest(c.name+": field required", nil)
		}
		if math.IsNaN(*c.value) || math.IsInf(*c.value, 0) {
			return domain.RouteQuery{}, errors.InvalidRequest(c.name+": value is not a valid number", nil)
		}
	}

	lang := domain.DefaultLanguageCode
	if req.Lang != nil {
		lang = *req.Lang
	}

	return domain.RouteQuery{
		Start:        domain.Coordinate{Lat: *req.StartLat, Lon: *req.StartLon},
		End:          domain.Coordinate{Lat: *req.EndLat, Lon: *req.EndLon},
		LanguageCode: lang,
		Scope:        uc.scope,
	}, nil
}
