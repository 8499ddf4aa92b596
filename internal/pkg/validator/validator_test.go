package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Lat  *float64 `json:"start_lat" validate:"required"`
	Name string   `query:"name" validate:"omitempty,min=3"`
}

func TestValidate(t *testing.T) {
	zero := 0.0
	assert.NoError(t, Validate(&sample{Lat: &zero}))

	err := Validate(&sample{Name: "ab"})
	require.Error(t, err)

	msg := Describe(err)
	assert.Contains(t, msg, "start_lat: field required")
	assert.Contains(t, msg, "name: failed on 'min'")
}

func TestDescribe_NonValidationError(t *testing.T) {
	assert.Equal(t, "plain", Describe(errors.New("plain")))
}
