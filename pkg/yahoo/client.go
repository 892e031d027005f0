/*
yahoo implements a client for the unofficial Yahoo Finance endpoints used
for quotes, daily price history and symbol search
*/
package yahoo

import (
	"context"
	"net/url"
	"slices"

	// Packages
	client "github.com/mutablelogic/go-client"
	weatherstock "github.com/mutablelogic/go-weatherstock"
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	cookieEndpoint string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Endpoint       = "https://query2.finance.yahoo.com"
	CookieEndpoint = "https://fc.yahoo.com"

	// UserAgent is sent with every request, the endpoints reject unknown agents
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// Number of quotes returned by a search
	SearchCount = 10
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client. Empty endpoints are replaced by the public services.
// The cookie endpoint is used to obtain the session cookie which the quote
// endpoint requires.
func New(endpoint, cookieEndpoint string, opts ...client.ClientOpt) (*Client, error) {
	if endpoint == "" {
		endpoint = Endpoint
	}
	if cookieEndpoint == "" {
		cookieEndpoint = CookieEndpoint
	} else if _, err := url.Parse(cookieEndpoint); err != nil {
		return nil, weatherstock.ErrBadParameter.Withf("cookie endpoint: %v", err)
	}

	// Create client
	opts = append(slices.Clone(opts), client.OptEndpoint(endpoint), client.OptUserAgent(UserAgent))
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client:         client,
		cookieEndpoint: cookieEndpoint,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Info returns the provider's key/value summary for a symbol. Values
// reported as {"raw":...} are unwrapped and missing values are omitted.
func (c *Client) Info(ctx context.Context, symbol string) (map[string]any, error) {
	var response quoteSummaryResponse

	// Obtain a session, continuing without one if the handshake fails
	s := c.session(ctx)

	// Request -> Response
	req := QuoteRequest{Symbol: symbol}
	if err := c.DoWithContext(ctx, nil, &response, s.opts(client.OptPath("v10", "finance", "quoteSummary", symbol), client.OptQuery(req.Values(s.crumb)))...); err != nil {
		return nil, err
	}

	// Return the info
	return response.info(symbol)
}

// Quote returns a normalized quote for a symbol
func (c *Client) Quote(ctx context.Context, symbol string) (schema.StockQuote, error) {
	info, err := c.Info(ctx, symbol)
	if err != nil {
		return schema.StockQuote{}, err
	}
	return NewStockQuote(symbol, info), nil
}

// History returns the daily price series for a symbol over a period,
// in ascending date order with one point per trading day
func (c *Client) History(ctx context.Context, symbol string, period schema.Period) ([]schema.HistoryPoint, error) {
	var response chartResponse

	// Request -> Response
	req := HistoryRequest{Symbol: symbol, Period: string(period)}
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("v8", "finance", "chart", symbol), client.OptQuery(req.Values())); err != nil {
		return nil, err
	}

	// Return the series
	return response.points()
}

// Search returns securities matching a company name or partial symbol.
// Quotes without a symbol are omitted.
func (c *Client) Search(ctx context.Context, query string) ([]schema.StockMatch, error) {
	var response searchResponse

	// Request -> Response
	req := SearchRequest{Query: query}
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("v1", "finance", "search"), client.OptQuery(req.Values())); err != nil {
		return nil, err
	}

	// Return the matches
	return response.matches(), nil
}
