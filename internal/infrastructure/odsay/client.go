package odsay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/travel-time-gateway/internal/config"
	"github.com/travel-time-gateway/internal/domain"
	"github.com/travel-time-gateway/internal/domain/repository"
	apperrors "github.com/travel-time-gateway/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewODsayClient creates a client for the ODsay path search API
func NewODsayClient(cfg *config.ODsayConfig, logger *zap.Logger) repository.RoutingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// SearchBusOnlyPath issues exactly one GET to the path search endpoint.
func (c *client) SearchBusOnlyPath(
	ctx context.Context,
	query domain.RouteQuery,
) (*domain.TravelTimeResult, error) {
	sep := "?"
	if strings.Contains(c.baseURL, "?") {
		sep = "&"
	}
	reqURL := c.baseURL + sep + BuildQuery(c.apiKey, query)

	c.logger.Debug("Calling ODsay path search API",
		zap.String("url", redactQuery(reqURL)),
		zap.Stringer("scope", query.Scope),
		zap.Int("lang", query.LanguageCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		err = redactURLError(err)
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, apperrors.UpstreamCall(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = redactURLError(err)
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, apperrors.UpstreamCall(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read response body", zap.Error(err))
		return nil, apperrors.UpstreamCall(fmt.Errorf("read response body: %w", err))
	}

	c.logger.Debug("ODsay path search API responded",
		zap.Int("status_code", resp.StatusCode),
		zap.ByteString("body", body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("ODsay API returned error status",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", body))
		return nil, apperrors.UpstreamCall(fmt.Errorf("unexpected status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
	}

	result, err := parsePathSearch(body)
	if err != nil {
		c.logger.Warn("ODsay path search produced no usable route", zap.Error(err))
		return nil, err
	}

	c.logger.Debug("ODsay path search successful", zap.Int("total_time", result.TotalMinutes))

	return result, nil
}

// parsePathSearch extracts result.path[0].info.totalTime.
func parsePathSearch(body []byte) (*domain.TravelTimeResult, error) {
	var payload domain.PathSearchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperrors.ResponseShapeWrap("invalid JSON body", err)
	}

	if payload.HasError() {
		return nil, apperrors.UpstreamLogic(payload.ErrorMessage())
	}

	if payload.Result == nil {
		return nil, apperrors.ResponseShape("missing 'result' field")
	}
	if len(payload.Result.Path) == 0 {
		return nil, apperrors.ResponseShape("no path data found")
	}

	first := payload.Result.Path[0]
	if first.Info == nil {
		return nil, apperrors.ResponseShape("missing 'info' in first path")
	}
	if first.Info.TotalTime == nil {
		return nil, apperrors.ResponseShape("missing 'totalTime' in path info")
	}

	minutes, err := first.Info.TotalMinutes()
	if err != nil {
		return nil, apperrors.ResponseShapeWrap("invalid 'totalTime'", err)
	}

	return &domain.TravelTimeResult{TotalMinutes: minutes}, nil
}

// redactURLError strips the API key from *url.Error, which embeds the full request URL.
func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = redactQuery(urlErr.URL)
	}
	return err
}
