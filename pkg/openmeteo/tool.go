package openmeteo

import (
	"context"
	"encoding/json"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	client "github.com/mutablelogic/go-client"
	weatherstock "github.com/mutablelogic/go-weatherstock"
	tool "github.com/mutablelogic/go-weatherstock/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type currentWeather struct {
	client *Client
}

type forecastWeather struct {
	client *Client
}

type locationCoordinates struct {
	client *Client
}

var _ tool.Tool = (*currentWeather)(nil)
var _ tool.Tool = (*forecastWeather)(nil)
var _ tool.Tool = (*locationCoordinates)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the weather and geocoding tools, backed by a new client
func NewTools(forecastEndpoint, geocodingEndpoint string, opts ...client.ClientOpt) ([]tool.Tool, error) {
	client, err := New(forecastEndpoint, geocodingEndpoint, opts...)
	if err != nil {
		return nil, err
	}
	return client.Tools(), nil
}

// Tools returns the weather and geocoding tools for this client
func (c *Client) Tools() []tool.Tool {
	return []tool.Tool{
		&currentWeather{client: c},
		&forecastWeather{client: c},
		&locationCoordinates{client: c},
	}
}

///////////////////////////////////////////////////////////////////////////////
// CURRENT WEATHER

func (*currentWeather) Name() string {
	return "get_weather"
}

func (*currentWeather) Description() string {
	return "Get current weather information for a specific location using latitude and longitude."
}

// Return the JSON schema for the tool input
func (*currentWeather) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[CurrentRequest](nil)
}

// Run the tool with the given input
func (c *currentWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req CurrentRequest
	if err := unmarshal(input, &req); err != nil {
		return nil, err
	}
	response, err := c.client.Current(ctx, &req)
	if err != nil {
		return nil, tool.Fail("fetching weather data", req.Coordinates().String(), err)
	}
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// FORECAST WEATHER

func (*forecastWeather) Name() string {
	return "get_weather_forecast"
}

func (*forecastWeather) Description() string {
	return "Get weather forecast for a specific location using latitude and longitude. Returns up to 16 days of daily forecasts."
}

// Return the JSON schema for the tool input
func (*forecastWeather) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[ForecastRequest](nil)
	if err != nil {
		return nil, err
	}

	// Days is an optional integer, larger values are clamped rather than rejected
	if daysField, ok := schema.Properties["days"]; ok && daysField != nil {
		daysField.Type = "integer"
		daysField.Types = nil
		daysField.Default = json.RawMessage("7")
	}

	return schema, nil
}

// Run the tool with the given input
func (f *forecastWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req ForecastRequest
	if err := unmarshal(input, &req); err != nil {
		return nil, err
	}
	response, err := f.client.Forecast(ctx, &req)
	if err != nil {
		return nil, tool.Fail("fetching weather forecast", req.Coordinates().String(), err)
	}
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// LOCATION COORDINATES

func (*locationCoordinates) Name() string {
	return "get_location_coordinates"
}

func (*locationCoordinates) Description() string {
	return "Get latitude and longitude for a location name using the Open-Meteo geocoding API. Returns up to 10 matching locations."
}

// Return the JSON schema for the tool input
func (*locationCoordinates) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[GeocodeRequest](nil)
}

// Run the tool with the given input
func (l *locationCoordinates) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req GeocodeRequest
	if err := unmarshal(input, &req); err != nil {
		return nil, err
	}
	if req.Name = strings.TrimSpace(req.Name); req.Name == "" {
		return nil, weatherstock.ErrBadParameter.With("location_name is required")
	}
	response, err := l.client.Geocode(ctx, &req)
	if err != nil {
		return nil, tool.Fail("fetching location data", req.Name, err)
	}
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// unmarshal decodes JSON input if provided
func unmarshal(input json.RawMessage, v any) error {
	if len(input) == 0 {
		return nil
	}
	if err := json.Unmarshal(input, v); err != nil {
		return weatherstock.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
	}
	return nil
}
