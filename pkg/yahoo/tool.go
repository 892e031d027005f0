package yahoo

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	client "github.com/mutablelogic/go-client"
	weatherstock "github.com/mutablelogic/go-weatherstock"
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
	tool "github.com/mutablelogic/go-weatherstock/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type stockPrice struct {
	client *Client
}

type stockHistory struct {
	client *Client
}

type searchStocks struct {
	client *Client
}

var _ tool.Tool = (*stockPrice)(nil)
var _ tool.Tool = (*stockHistory)(nil)
var _ tool.Tool = (*searchStocks)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the stock tools, backed by a new client
func NewTools(endpoint, cookieEndpoint string, opts ...client.ClientOpt) ([]tool.Tool, error) {
	client, err := New(endpoint, cookieEndpoint, opts...)
	if err != nil {
		return nil, err
	}
	return client.Tools(), nil
}

// Tools returns the stock tools for this client
func (c *Client) Tools() []tool.Tool {
	return []tool.Tool{
		&stockPrice{client: c},
		&stockHistory{client: c},
		&searchStocks{client: c},
	}
}

///////////////////////////////////////////////////////////////////////////////
// STOCK PRICE

func (*stockPrice) Name() string {
	return "get_stock_price"
}

func (*stockPrice) Description() string {
	return "Get the latest stock price information for a given ticker symbol, including daily range, 52-week range, market cap, volume, P/E ratio and dividend yield."
}

// Return the JSON schema for the tool input
func (*stockPrice) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[QuoteRequest](nil)
}

// Run the tool with the given input
func (s *stockPrice) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req QuoteRequest
	if err := unmarshal(input, &req); err != nil {
		return nil, err
	}
	symbol, err := ticker(req.Symbol)
	if err != nil {
		return nil, err
	}
	quote, err := s.client.Quote(ctx, symbol)
	if err != nil {
		return nil, tool.Fail("fetching stock data", symbol, err)
	}
	return quote, nil
}

///////////////////////////////////////////////////////////////////////////////
// STOCK HISTORY

func (*stockHistory) Name() string {
	return "get_stock_history"
}

func (*stockHistory) Description() string {
	return "Get historical daily stock price data (open, high, low, close, volume) for a given ticker symbol over a period."
}

// Return the JSON schema for the tool input
func (*stockHistory) Schema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[HistoryRequest](nil)
	if err != nil {
		return nil, err
	}

	// The period is checked when the tool runs, so that an unknown
	// value is reported with the list of valid options
	if period, ok := s.Properties["period"]; ok && period != nil {
		period.Default = json.RawMessage(strconv.Quote(string(schema.DefaultPeriod)))
	}

	return s, nil
}

// Run the tool with the given input
func (s *stockHistory) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req HistoryRequest
	if err := unmarshal(input, &req); err != nil {
		return nil, err
	}
	symbol, err := ticker(req.Symbol)
	if err != nil {
		return nil, err
	}
	period, err := schema.ParsePeriod(req.Period)
	if err != nil {
		return nil, err
	}
	history, err := s.client.History(ctx, symbol, period)
	if err != nil {
		return nil, tool.Fail("fetching historical stock data", symbol, err)
	}
	return history, nil
}

///////////////////////////////////////////////////////////////////////////////
// SEARCH STOCKS

func (*searchStocks) Name() string {
	return "search_stocks"
}

func (*searchStocks) Description() string {
	return "Search for stocks that match a query string. Returns up to 10 matches with symbol, name, exchange and type."
}

// Return the JSON schema for the tool input
func (*searchStocks) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[SearchRequest](nil)
}

// Run the tool with the given input
func (s *searchStocks) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req SearchRequest
	if err := unmarshal(input, &req); err != nil {
		return nil, err
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, weatherstock.ErrBadParameter.With("query is required")
	}
	matches, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, tool.Fail("searching for stocks", query, err)
	}
	return matches, nil
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

// ticker returns the trimmed symbol, which must not be empty
func ticker(symbol string) (string, error) {
	if symbol = strings.TrimSpace(symbol); symbol == "" {
		return "", weatherstock.ErrBadParameter.With("symbol is required")
	}
	return symbol, nil
}
