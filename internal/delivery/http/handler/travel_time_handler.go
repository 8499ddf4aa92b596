package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travel-time-gateway/internal/delivery/http/middleware"
	"github.com/travel-time-gateway/internal/pkg/errors"
	"github.com/travel-time-gateway/internal/pkg/utils"
	"github.com/travel-time-gateway/internal/pkg/validator"
	"github.com/travel-time-gateway/internal/usecase"
	"github.com/travel-time-gateway/internal/usecase/dto"
	"go.uber.org/zap"
)

// coordinateParams must carry a value; the query decoder turns "start_lat=" into 0.
var coordinateParams = []string{"start_lat", "start_lon", "end_lat", "end_lon"}

// TravelTimeHandler - handles travel time requests
type TravelTimeHandler struct {
	travelTimeUC *usecase.TravelTimeUseCase
	logger       *zap.Logger
}

// NewTravelTimeHandler - creates a TravelTimeHandler
func NewTravelTimeHandler(travelTimeUC *usecase.TravelTimeUseCase, logger *zap.Logger) *TravelTimeHandler {
	return &TravelTimeHandler{
		travelTimeUC: travelTimeUC,
		logger:       logger,
	}
}

// GetTravelTimeByBody godoc
// @Summary Bus-only travel time (intercity)
// @Description Returns the total travel time in minutes of the first bus-only path between two points.
// @Tags Travel Time
// @Accept json
// @Produce json
// @Param request body dto.TravelTimeRequest true "Start and end coordinates"
// @Success 200 {object} dto.TravelTimeResponse
// @Failure 422 {object} utils.ErrorResponse "Malformed input"
// @Failure 500 {object} utils.ErrorResponse "Upstream failure"
// @Router /travel-time [post]
func (h *TravelTimeHandler) GetTravelTimeByBody(c *fiber.Ctx) error {
	var req dto.TravelTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.InvalidRequest("Invalid request body: "+err.Error(), err))
	}

	return h.compute(c, req)
}

// GetTravelTimeByQuery godoc
// @Summary Bus-only travel time (intracity)
// @Description Returns the total travel time in minutes of the first bus-only path between two points.
// @Tags Travel Time
// @Produce json
// @Param start_lat query number true "Start latitude"
// @Param start_lon query number true "Start longitude"
// @Param end_lat query number true "End latitude"
// @Param end_lon query number true "End longitude"
// @Param lang query int false "Language code (0 = native)"
// @Success 200 {object} dto.TravelTimeResponse
// @Failure 422 {object} utils.ErrorResponse "Malformed input"
// @Failure 500 {object} utils.ErrorResponse "Upstream failure"
// @Router /travel-time [get]
func (h *TravelTimeHandler) GetTravelTimeByQuery(c *fiber.Ctx) error {
	for _, name := range coordinateParams {
		if c.Query(name) == "" {
			return utils.SendError(c, errors.InvalidRequest(name+": field required", nil))
		}
	}

	var req dto.TravelTimeRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.InvalidRequest("Invalid query parameters: "+err.Error(), err))
	}

	return h.compute(c, req)
}

func (h *TravelTimeHandler) compute(c *fiber.Ctx, req dto.TravelTimeRequest) error {
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.InvalidRequest(validator.Describe(err), err))
	}

	result, err := h.travelTimeUC.ComputeBusOnlyTravelTime(c.UserContext(), req)
	if err != nil {
		h.logger.Warn("Travel time request failed",
			zap.String("request_id", middleware.RequestID(c)),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result)
}

// Health godoc
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}
