package openmeteo_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	openmeteo "github.com/mutablelogic/go-weatherstock/pkg/openmeteo"
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
	tool "github.com/mutablelogic/go-weatherstock/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

// upstream is a fake Open-Meteo service which records each query
type upstream struct {
	sync.Mutex
	status  int
	body    string
	queries []url.Values
	paths   []string

	// Requests to slowPath are answered after delay
	slowPath string
	delay    time.Duration
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if u.delay > 0 && r.URL.Path == u.slowPath {
		select {
		case <-time.After(u.delay):
		case <-r.Context().Done():
			return
		}
	}
	u.Lock()
	defer u.Unlock()
	u.queries = append(u.queries, r.URL.Query())
	u.paths = append(u.paths, r.URL.Path)
	w.Header().Set("Content-Type", "application/json")
	if u.status != 0 {
		w.WriteHeader(u.status)
	}
	fmt.Fprint(w, u.body)
}

func (u *upstream) last() (string, url.Values) {
	u.Lock()
	defer u.Unlock()
	if len(u.queries) == 0 {
		return "", nil
	}
	return u.paths[len(u.paths)-1], u.queries[len(u.queries)-1]
}

func newToolkit(t *testing.T, u *upstream, opts ...client.ClientOpt) *tool.Toolkit {
	t.Helper()
	srv := httptest.NewServer(u)
	t.Cleanup(srv.Close)

	tools, err := openmeteo.NewTools(srv.URL+"/v1", srv.URL+"/v1", opts...)
	if err != nil {
		t.Fatal(err)
	}
	toolkit, err := tool.NewToolkit(tools...)
	if err != nil {
		t.Fatal(err)
	}
	return toolkit
}

///////////////////////////////////////////////////////////////////////////////
// TOOLS

func Test_tools_001(t *testing.T) {
	assert := assert.New(t)

	tools, err := openmeteo.NewTools("", "")
	if !assert.NoError(err) {
		t.FailNow()
	}
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name())
		assert.NotEmpty(tool.Description())
		schema, err := tool.Schema()
		assert.NoError(err)
		assert.Equal("object", schema.Type)
	}
	assert.Equal([]string{"get_weather", "get_weather_forecast", "get_location_coordinates"}, names)
}

func Test_tools_002(t *testing.T) {
	assert := assert.New(t)

	tools, _ := openmeteo.NewTools("", "")
	def := tool.Definition(tools[1])
	if assert.Len(def.Parameters, 3) {
		assert.Equal("latitude", def.Parameters[0].Name)
		assert.Equal("number", def.Parameters[0].Type)
		assert.True(def.Parameters[0].Required)
		assert.Equal("days", def.Parameters[2].Name)
		assert.Equal("integer", def.Parameters[2].Type)
		assert.False(def.Parameters[2].Required)
		assert.JSONEq(`7`, string(def.Parameters[2].Default))
	}
}

///////////////////////////////////////////////////////////////////////////////
// CURRENT WEATHER

func Test_weather_001(t *testing.T) {
	assert := assert.New(t)
	u := &upstream{body: `{"latitude":48.86,"longitude":2.34,"current":{"temperature_2m":18.2}}`}
	toolkit := newToolkit(t, u)

	result := toolkit.Invoke(t.Context(), "get_weather", map[string]any{"latitude": 48.8566, "longitude": 2.3522})
	if !assert.True(result.OK(), result.Message) {
		t.FailNow()
	}
	assert.JSONEq(u.body, string(result.Payload))

	path, query := u.last()
	assert.Equal("/v1/forecast", path)
	assert.Equal("48.8566", query.Get("latitude"))
	assert.Equal("2.3522", query.Get("longitude"))
	assert.Equal("auto", query.Get("timezone"))
	assert.Equal("temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,wind_speed_10m,wind_direction_10m", query.Get("current"))
	assert.Empty(query.Get("daily"))
}

func Test_weather_002(t *testing.T) {
	assert := assert.New(t)
	u := &upstream{status: http.StatusInternalServerError, body: `{"error":true,"reason":"server down"}`}
	toolkit := newToolkit(t, u)

	result := toolkit.Invoke(t.Context(), "get_weather", map[string]any{"latitude": 1.5, "longitude": -2})
	assert.Equal(schema.ResultUpstream, result.Kind)
	assert.True(strings.HasPrefix(result.Message, "Error fetching weather data for 1.5,-2: "), result.Message)
}

func Test_weather_003(t *testing.T) {
	assert := assert.New(t)
	u := &upstream{body: `not json`}
	toolkit := newToolkit(t, u)

	result := toolkit.Invoke(t.Context(), "get_weather", map[string]any{"latitude": 1, "longitude": 2})
	assert.Equal(schema.ResultUpstream, result.Kind)
	assert.Contains(result.Message, "Error fetching weather data for 1,2: ")
}

func Test_weather_004(t *testing.T) {
	assert := assert.New(t)
	u := &upstream{body: `{"error":true,"reason":"Latitude must be in range of -90 to 90°."}`}
	toolkit := newToolkit(t, u)

	result := toolkit.Invoke(t.Context(), "get_weather", map[string]any{"latitude": 100, "longitude": 2})
	assert.Equal(schema.ResultUpstream, result.Kind)
	assert.True(strings.HasPrefix(result.Message, "Error fetching weather data for 100,2: "), result.Message)
	assert.Contains(result.Message, "Latitude must be in range")
}

func Test_weather_005(t *testing.T) {
	assert := assert.New(t)
	u := &upstream{body: `{}`}
	toolkit := newToolkit(t, u)

	// Missing longitude is rejected before any upstream call
	result := toolkit.Invoke(t.Context(), "get_weather", map[string]any{"latitude": 1})
	assert.Equal(schema.ResultValidation, result.Kind)
	path, _ := u.last()
	assert.Empty(path)
}

///////////////////////////////////////////////////////////////////////////////
// FORECAST

func Test_forecast_001(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		days string
	}{
		{"default", map[string]any{}, "7"},
		{"within range", map[string]any{"days": 5}, "5"},
		{"upper bound", map[string]any{"days": 16}, "16"},
		{"clamped", map[string]any{"days": 30}, "16"},
		{"one", map[string]any{"days": 1}, "1"},
		{"zero passes through", map[string]any{"days": 0}, "0"},
		{"negative passes through", map[string]any{"days": -3}, "-3"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)
			u := &upstream{body: `{"daily":{"time":["2026-10-18"]}}`}
			toolkit := newToolkit(t, u)

			args := map[string]any{"latitude": 51.5, "longitude": -0.12}
			for k, v := range test.args {
				args[k] = v
			}
			result := toolkit.Invoke(t.Context(), "get_weather_forecast", args)
			if !assert.True(result.OK(), result.Message) {
				t.FailNow()
			}
			_, query := u.last()
			assert.Equal(test.days, query.Get("forecast_days"))
			assert.Equal("weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum,precipitation_hours,wind_speed_10m_max", query.Get("daily"))
			assert.Equal("auto", query.Get("timezone"))
		})
	}
}

func Test_forecast_002(t *testing.T) {
	assert := assert.New(t)
	u := &upstream{status: http.StatusBadGateway, body: `bad gateway`}
	toolkit := newToolkit(t, u)

	result := toolkit.Invoke(t.Context(), "get_weather_forecast", map[string]any{"latitude": 51.5, "longitude": -0.12, "days": 3})
	assert.Equal(schema.ResultUpstream, result.Kind)
	assert.True(strings.HasPrefix(result.Message, "Error fetching weather forecast for 51.5,-0.12: "), result.Message)
}

func Test_forecast_003(t *testing.T) {
	assert := assert.New(t)

	days := 40
	req := openmeteo.ForecastRequest{Latitude: 1, Longitude: 2, Days: &days}
	assert.Equal(16, req.ForecastDays())
	req.Days = nil
	assert.Equal(7, req.ForecastDays())
	assert.Equal("7", req.Values().Get("forecast_days"))
}

///////////////////////////////////////////////////////////////////////////////
// GEOCODING

func Test_geocode_001(t *testing.T) {
	assert := assert.New(t)
	u := &upstream{body: `{"results":[{"name":"Paris","latitude":48.85341,"longitude":2.3488,"country":"France"}],"generationtime_ms":0.6}`}
	toolkit := newToolkit(t, u)

	result := toolkit.Invoke(t.Context(), "get_location_coordinates", map[string]any{"location_name": "Paris"})
	if !assert.True(result.OK(), result.Message) {
		t.FailNow()
	}

	var doc struct {
		Results []struct {
			Name      string  `json:"name"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}
	assert.NoError(json.Unmarshal(result.Payload, &doc))
	if assert.Len(doc.Results, 1) {
		assert.Equal("Paris", doc.Results[0].Name)
		assert.Equal(48.85341, doc.Results[0].Latitude)
	}

	path, query := u.last()
	assert.Equal("/v1/search", path)
	assert.Equal("Paris", query.Get("name"))
	assert.Equal("10", query.Get("count"))
	assert.Equal("en", query.Get("language"))
	assert.Equal("json", query.Get("format"))
}

func Test_geocode_002(t *testing.T) {
	assert := assert.New(t)
	u := &upstream{body: `{"generationtime_ms":0.3}`}
	toolkit := newToolkit(t, u)

	// No matches is still a success
	result := toolkit.Invoke(t.Context(), "get_location_coordinates", map[string]any{"location_name": "Xyzzyville"})
	assert.True(result.OK(), result.Message)
	assert.JSONEq(`{"generationtime_ms":0.3}`, string(result.Payload))
}

func Test_geocode_003(t *testing.T) {
	assert := assert.New(t)
	u := &upstream{status: http.StatusServiceUnavailable, body: `{}`}
	toolkit := newToolkit(t, u)

	result := toolkit.Invoke(t.Context(), "get_location_coordinates", map[string]any{"location_name": "Paris"})
	assert.Equal(schema.ResultUpstream, result.Kind)
	assert.True(strings.HasPrefix(result.Message, "Error fetching location data for Paris: "), result.Message)

	// Empty names are rejected locally
	result = toolkit.Invoke(t.Context(), "get_location_coordinates", map[string]any{"location_name": ""})
	assert.Equal(schema.ResultValidation, result.Kind)
}

func Test_geocode_004(t *testing.T) {
	assert := assert.New(t)
	u := &upstream{body: `{"generationtime_ms":0.3}`}
	toolkit := newToolkit(t, u)

	// Blank names are rejected without an upstream call
	result := toolkit.Invoke(t.Context(), "get_location_coordinates", map[string]any{"location_name": "   "})
	assert.Equal(schema.ResultValidation, result.Kind)
	path, _ := u.last()
	assert.Empty(path)

	// Names are trimmed before they are sent
	result = toolkit.Invoke(t.Context(), "get_location_coordinates", map[string]any{"location_name": "  Paris "})
	assert.True(result.OK(), result.Message)
	_, query := u.last()
	assert.Equal("Paris", query.Get("name"))
}

func Test_geocode_005(t *testing.T) {
	assert := assert.New(t)
	u := &upstream{status: http.StatusServiceUnavailable, body: `{}`}
	toolkit := newToolkit(t, u)

	// The failure names the trimmed location
	result := toolkit.Invoke(t.Context(), "get_location_coordinates", map[string]any{"location_name": " Paris  "})
	assert.True(strings.HasPrefix(result.Message, "Error fetching location data for Paris: "), result.Message)
}

func Test_timeout_001(t *testing.T) {
	assert := assert.New(t)
	u := &upstream{body: `{"current":{"temperature_2m":12.5}}`, slowPath: "/v1/search", delay: 500 * time.Millisecond}
	toolkit := newToolkit(t, u, client.OptTimeout(100*time.Millisecond))

	// A slow upstream is reported with the subject and the original error
	result := toolkit.Invoke(t.Context(), "get_location_coordinates", map[string]any{"location_name": "Paris"})
	assert.Equal(schema.ResultUpstream, result.Kind)
	assert.True(strings.HasPrefix(result.Message, "Error fetching location data for Paris: "), result.Message)
	assert.Contains(result.Message, "Client.Timeout exceeded")

	// Other tools are still usable
	result = toolkit.Invoke(t.Context(), "get_weather", map[string]any{"latitude": 48.85, "longitude": 2.35})
	assert.True(result.OK(), result.Message)
}
