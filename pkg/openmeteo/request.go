package openmeteo

import (
	"net/url"
	"strconv"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultForecastDays = 7
	MaxForecastDays     = 16
	GeocodeCount        = 10
	GeocodeLanguage     = "en"
)

var (
	currentFields = []string{
		"temperature_2m", "relative_humidity_2m", "apparent_temperature", "precipitation",
		"weather_code", "wind_speed_10m", "wind_direction_10m",
	}
	dailyFields = []string{
		"weather_code", "temperature_2m_max", "temperature_2m_min", "precipitation_sum",
		"precipitation_hours", "wind_speed_10m_max",
	}
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// CurrentRequest defines the input for a current conditions query
type CurrentRequest struct {
	Latitude  float64 `json:"latitude" jsonschema:"The latitude of the location"`
	Longitude float64 `json:"longitude" jsonschema:"The longitude of the location"`
}

// ForecastRequest defines the input for a daily forecast query
type ForecastRequest struct {
	Latitude  float64 `json:"latitude" jsonschema:"The latitude of the location"`
	Longitude float64 `json:"longitude" jsonschema:"The longitude of the location"`
	Days      *int    `json:"days,omitempty" jsonschema:"Number of days for the forecast (default 7, max 16)"`
}

// GeocodeRequest defines the input for a place name search
type GeocodeRequest struct {
	Name string `json:"location_name" jsonschema:"The name of the location to get coordinates for. Only city name should be provided."`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Coordinates returns the position of the request
func (r *CurrentRequest) Coordinates() schema.Coordinates {
	return schema.Coordinates{Latitude: r.Latitude, Longitude: r.Longitude}
}

// Values converts CurrentRequest to URL query parameters
func (r *CurrentRequest) Values() url.Values {
	result := coordinateValues(r.Latitude, r.Longitude)
	result.Set("current", strings.Join(currentFields, ","))
	result.Set("timezone", "auto")
	return result
}

// Coordinates returns the position of the request
func (r *ForecastRequest) Coordinates() schema.Coordinates {
	return schema.Coordinates{Latitude: r.Latitude, Longitude: r.Longitude}
}

// ForecastDays returns the number of days to request: DefaultForecastDays
// when omitted, and at most MaxForecastDays. Values below one are passed
// through unchanged.
func (r *ForecastRequest) ForecastDays() int {
	switch {
	case r.Days == nil:
		return DefaultForecastDays
	case *r.Days > MaxForecastDays:
		return MaxForecastDays
	default:
		return *r.Days
	}
}

// Values converts ForecastRequest to URL query parameters
func (r *ForecastRequest) Values() url.Values {
	result := coordinateValues(r.Latitude, r.Longitude)
	result.Set("daily", strings.Join(dailyFields, ","))
	result.Set("timezone", "auto")
	result.Set("forecast_days", strconv.Itoa(r.ForecastDays()))
	return result
}

// Values converts GeocodeRequest to URL query parameters
func (r *GeocodeRequest) Values() url.Values {
	result := url.Values{}
	result.Set("name", r.Name)
	result.Set("count", strconv.Itoa(GeocodeCount))
	result.Set("language", GeocodeLanguage)
	result.Set("format", "json")
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func coordinateValues(lat, lon float64) url.Values {
	result := url.Values{}
	result.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	result.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	return result
}
