package yahoo

import (
	"net/url"
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// QuoteRequest defines the input for a quote
type QuoteRequest struct {
	Symbol string `json:"symbol" jsonschema:"The stock ticker symbol (e.g. AAPL for Apple Inc.)"`
}

// HistoryRequest defines the input for a price history
type HistoryRequest struct {
	Symbol string `json:"symbol" jsonschema:"The stock ticker symbol (e.g. AAPL for Apple Inc.)"`
	Period string `json:"period,omitempty" jsonschema:"The time period for historical data. Options: 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, max"`
}

// SearchRequest defines the input for a symbol search
type SearchRequest struct {
	Query string `json:"query" jsonschema:"The search query (company name or partial symbol)"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values converts QuoteRequest to URL query parameters
func (r *QuoteRequest) Values(crumb string) url.Values {
	result := url.Values{}
	result.Set("modules", strings.Join(summaryModules, ","))
	if crumb != "" {
		result.Set("crumb", crumb)
	}
	return result
}

// Values converts HistoryRequest to URL query parameters
func (r *HistoryRequest) Values() url.Values {
	result := url.Values{}
	result.Set("range", r.Period)
	result.Set("interval", "1d")
	result.Set("includePrePost", "false")
	return result
}

// Values converts SearchRequest to URL query parameters
func (r *SearchRequest) Values() url.Values {
	result := url.Values{}
	result.Set("q", r.Query)
	result.Set("quotesCount", strconv.Itoa(SearchCount))
	result.Set("newsCount", "0")
	return result
}
