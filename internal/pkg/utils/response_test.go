package utils_test

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-time-gateway/internal/pkg/errors"
	"github.com/travel-time-gateway/internal/pkg/utils"
)

func sendErrorResponse(t *testing.T, err error) (int, utils.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return utils.SendError(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, testErr)
	defer resp.Body.Close()

	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestSendError(t *testing.T) {
	t.Run("app error keeps its status and code", func(t *testing.T) {
		status, body := sendErrorResponse(t, errors.InvalidRequest("end_lon: field required", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "end_lon: field required", body.Detail)
		assert.Equal(t, "INVALID_REQUEST", body.Code)
	})

	t.Run("unknown error falls back to internal server error", func(t *testing.T) {
		status, body := sendErrorResponse(t, stderrors.New("boom"))

		assert.Equal(t, errors.ErrInternalServer.StatusCode, status)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "boom", body.Detail)
		assert.Equal(t, errors.ErrInternalServer.Code, body.Code)
	})
}
