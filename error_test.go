package weatherstock_test

import (
	"errors"
	"fmt"
	"testing"

	// Packages
	weatherstock "github.com/mutablelogic/go-weatherstock"
	assert "github.com/stretchr/testify/assert"
)

func Test_error_001(t *testing.T) {
	assert := assert.New(t)

	err := weatherstock.ErrBadParameter.With("days must be a number")
	assert.True(errors.Is(err, weatherstock.ErrBadParameter))
	assert.False(errors.Is(err, weatherstock.ErrUpstream))
	assert.Equal("bad parameter: days must be a number", err.Error())
}

func Test_error_002(t *testing.T) {
	assert := assert.New(t)

	err := weatherstock.ErrNotFound.Withf("tool %q", "get_tides")
	assert.True(errors.Is(err, weatherstock.ErrNotFound))
	assert.Equal(`not found: tool "get_tides"`, err.Error())
	assert.Equal("error code 99", weatherstock.Err(99).Error())
}

func Test_error_003(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(weatherstock.ErrSuccess, weatherstock.Code(nil))
	assert.Equal(weatherstock.ErrInternalServerError, weatherstock.Code(errors.New("boom")))
	assert.Equal(weatherstock.ErrUpstream, weatherstock.Code(fmt.Errorf("wrapped: %w", weatherstock.ErrUpstream.With("timeout"))))

	assert.Equal("Invalid period: 1w", weatherstock.Message(weatherstock.ErrBadParameter.With("Invalid period: 1w")))
	assert.Equal("boom", weatherstock.Message(errors.New("boom")))
}
