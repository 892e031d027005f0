package schema_test

import (
	"encoding/json"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	weatherstock "github.com/mutablelogic/go-weatherstock"
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
	uitable "github.com/mutablelogic/go-weatherstock/pkg/ui/table"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// PERIOD

func Test_period_001(t *testing.T) {
	assert := assert.New(t)

	for _, p := range schema.Periods {
		period, err := schema.ParsePeriod(string(p))
		assert.NoError(err)
		assert.Equal(p, period)
	}

	assert.Equal(schema.Period1Month, schema.DefaultPeriod)
}

func Test_period_002(t *testing.T) {
	assert := assert.New(t)

	_, err := schema.ParsePeriod("1w")
	assert.ErrorIs(err, weatherstock.ErrBadParameter)
	assert.EqualError(err, "bad parameter: Invalid period: 1w. Valid options are: 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, max")

	_, err = schema.ParsePeriod("1MO")
	assert.ErrorIs(err, weatherstock.ErrBadParameter)

	_, err = schema.ParsePeriod("")
	assert.ErrorIs(err, weatherstock.ErrBadParameter)
	assert.EqualError(err, "bad parameter: Invalid period: . Valid options are: 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, max")
}

///////////////////////////////////////////////////////////////////////////////
// RESULT

func Test_result_001(t *testing.T) {
	assert := assert.New(t)

	result, err := schema.NewSuccess("search_stocks", []schema.StockMatch{})
	assert.NoError(err)
	assert.True(result.OK())
	assert.Equal("[]", result.Text())

	failure := schema.NewFailure("search_stocks", schema.ResultUpstream, "Error searching for stocks for x: timeout")
	assert.False(failure.OK())
	assert.Equal("Error searching for stocks for x: timeout", failure.Text())
}

func Test_result_002(t *testing.T) {
	assert := assert.New(t)

	for _, kind := range []schema.ResultKind{schema.ResultSuccess, schema.ResultValidation, schema.ResultUpstream, schema.ResultUnknownTool} {
		data, err := json.Marshal(kind)
		assert.NoError(err)
		var other schema.ResultKind
		assert.NoError(json.Unmarshal(data, &other))
		assert.Equal(kind, other)
	}

	var kind schema.ResultKind
	assert.Error(json.Unmarshal([]byte(`"exploded"`), &kind))
	assert.Equal("unknown_tool", schema.ResultUnknownTool.String())
}

func Test_result_003(t *testing.T) {
	assert := assert.New(t)

	result, err := schema.NewSuccess("get_stock_price", schema.StockQuote{Symbol: "AAPL", Name: schema.NotAvailable, Currency: "USD"})
	if !assert.NoError(err) {
		t.FailNow()
	}

	data, err := json.Marshal(result)
	assert.NoError(err)

	var decoded map[string]any
	assert.NoError(json.Unmarshal(data, &decoded))
	assert.Equal("get_stock_price", decoded["tool"])
	assert.Equal("success", decoded["kind"])
	assert.NotContains(decoded, "message")
	if payload, ok := decoded["payload"].(map[string]any); assert.True(ok) {
		assert.Equal("N/A", payload["name"])
		assert.Contains(payload, "52_week_high")
	}
}

///////////////////////////////////////////////////////////////////////////////
// TOOL DEFINITION

type request struct {
	Latitude  float64 `json:"latitude" jsonschema:"Latitude"`
	Longitude float64 `json:"longitude" jsonschema:"Longitude"`
	Days      *int    `json:"days,omitempty" jsonschema:"Number of days"`
}

func Test_tooldef_001(t *testing.T) {
	assert := assert.New(t)

	s, err := jsonschema.For[request](nil)
	if !assert.NoError(err) {
		t.FailNow()
	}
	s.Properties["days"].Default = json.RawMessage(`7`)

	def := schema.NewToolDefinition("get_weather_forecast", "Forecast", s)
	assert.Equal("get_weather_forecast", def.Name)
	if assert.Len(def.Parameters, 3) {
		assert.Equal(schema.Parameter{Name: "latitude", Type: "number", Description: "Latitude", Required: true}, def.Parameters[0])
		assert.Equal("longitude", def.Parameters[1].Name)
		assert.Equal("days", def.Parameters[2].Name)
		assert.Equal("integer", def.Parameters[2].Type)
		assert.False(def.Parameters[2].Required)
		assert.JSONEq(`7`, string(def.Parameters[2].Default))
	}
}

func Test_tooldef_002(t *testing.T) {
	assert := assert.New(t)

	def := schema.NewToolDefinition("noop", "", nil)
	assert.NotNil(def.Parameters)
	assert.Empty(def.Parameters)

	// Sorted when there is no property order
	def = schema.NewToolDefinition("noop", "", &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"b": {Type: "string"},
			"a": {},
		},
	})
	if assert.Len(def.Parameters, 2) {
		assert.Equal("a", def.Parameters[0].Name)
		assert.Equal("any", def.Parameters[0].Type)
		assert.Equal("b", def.Parameters[1].Name)
	}
}

///////////////////////////////////////////////////////////////////////////////
// TABLES

func Test_table_001(t *testing.T) {
	assert := assert.New(t)

	quote := schema.QuoteTable(schema.StockQuote{Symbol: "AAPL", Price: 231.6, Currency: "USD", Volume: schema.NotAvailable})
	assert.Equal(13, quote.Len())
	assert.Equal([]any{"price", 231.6}, quote.Row(2))
	assert.Nil(quote.Row(13))

	md := uitable.RenderMarkdown(quote)
	assert.Contains(md, "| symbol | **AAPL** |")
	assert.Contains(md, "| price | 231.6 |")
	assert.Contains(md, "| volume | N/A |")
	assert.Contains(md, "| name | - |")
}

func Test_table_002(t *testing.T) {
	assert := assert.New(t)

	history := schema.HistoryTable{{Date: "2026-10-12", Open: 10, High: 10.5, Low: 9.5, Close: 10.2, Volume: 1000}}
	assert.Equal("| DATE | OPEN | HIGH | LOW | CLOSE | VOLUME |\n|---|---|---|---|---|---|\n| 2026-10-12 | 10 | 10.5 | 9.5 | **10.2** | 1000 |", uitable.RenderMarkdown(history))

	matches := schema.MatchTable{{Symbol: "APLE", Name: "Apple Hospitality REIT, Inc."}}
	assert.Equal([]string{"SYMBOL", "NAME", "EXCHANGE", "TYPE"}, matches.Header())
	assert.Contains(uitable.RenderMarkdown(matches), "| **APLE** | Apple Hospitality REIT, Inc. | - | - |")
}

func Test_table_003(t *testing.T) {
	assert := assert.New(t)

	tools := schema.ToolTable{{
		Name:        "get_stock_history",
		Description: "History",
		Parameters: []schema.Parameter{
			{Name: "symbol", Required: true},
			{Name: "period"},
		},
	}}
	assert.Equal([]any{uitable.Bold{Value: "get_stock_history"}, "symbol [period]", "History"}, tools.Row(0))

	prompts := schema.PromptTable{{Name: "weather-report", Arguments: []schema.PromptArgument{{Name: "location", Required: true}}}}
	assert.Equal([]any{uitable.Bold{Value: "weather-report"}, "location", ""}, prompts.Row(0))
}

func Test_coordinates_001(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("48.85341,2.3488", schema.Coordinates{Latitude: 48.85341, Longitude: 2.3488}.String())
	assert.Equal("-33.5,0", schema.Coordinates{Latitude: -33.5}.String())
}
