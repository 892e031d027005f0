package yahoo

import (
	"errors"
	"slices"
	"strings"
	"time"
	_ "time/tzdata"

	// Packages
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// apiError is the error object embedded in quoteSummary and chart responses
type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []map[string]any `json:"result"`
		Error  *apiError        `json:"error"`
	} `json:"quoteSummary"`
}

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		Timezone  string `json:"exchangeTimezoneName"`
		GMTOffset int    `json:"gmtoffset"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*float64 `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}

type searchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		Longname  string `json:"longname"`
		Shortname string `json:"shortname"`
		Exchange  string `json:"exchange"`
		QuoteType string `json:"quoteType"`
	} `json:"quotes"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Summary modules merged into the info map, earlier modules take precedence
var summaryModules = []string{"price", "summaryDetail", "financialData", "defaultKeyStatistics"}

///////////////////////////////////////////////////////////////////////////////
// ERRORS

func (e *apiError) Error() string {
	if e.Description != "" {
		return e.Description
	}
	if e.Code != "" {
		return e.Code
	}
	return "unknown error"
}

///////////////////////////////////////////////////////////////////////////////
// QUOTE SUMMARY

// info flattens the summary modules into a single key/value map
func (r *quoteSummaryResponse) info(symbol string) (map[string]any, error) {
	if r.QuoteSummary.Error != nil {
		return nil, r.QuoteSummary.Error
	}
	if len(r.QuoteSummary.Result) == 0 {
		return nil, errors.New("no data for symbol " + symbol)
	}

	result := make(map[string]any)
	for _, name := range summaryModules {
		module, ok := r.QuoteSummary.Result[0][name].(map[string]any)
		if !ok {
			continue
		}
		for key, value := range module {
			if _, exists := result[key]; exists {
				continue
			}
			if value, ok := unwrap(value); ok {
				result[key] = value
			}
		}
	}
	return result, nil
}

// unwrap returns the raw value of a field. Formatted values are reported
// as {"raw":1.5,"fmt":"1.50"} and missing values as {} or null.
func unwrap(v any) (any, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		raw, exists := v["raw"]
		if !exists || raw == nil {
			return nil, false
		}
		return raw, true
	default:
		return v, true
	}
}

///////////////////////////////////////////////////////////////////////////////
// CHART

// points converts the chart into daily points. Rows with a missing price
// are dropped, and where two rows fall on the same date the later one wins.
func (r *chartResponse) points() ([]schema.HistoryPoint, error) {
	if r.Chart.Error != nil {
		return nil, r.Chart.Error
	}
	result := []schema.HistoryPoint{}
	if len(r.Chart.Result) == 0 || len(r.Chart.Result[0].Indicators.Quote) == 0 {
		return result, nil
	}

	chart := r.Chart.Result[0]
	quote := chart.Indicators.Quote[0]
	loc := chart.location()
	index := make(map[string]int, len(chart.Timestamp))
	for i, ts := range chart.Timestamp {
		o, h, l, c := at(quote.Open, i), at(quote.High, i), at(quote.Low, i), at(quote.Close, i)
		if o == nil || h == nil || l == nil || c == nil {
			continue
		}
		point := schema.HistoryPoint{
			Date:  time.Unix(ts, 0).In(loc).Format(time.DateOnly),
			Open:  *o,
			High:  *h,
			Low:   *l,
			Close: *c,
		}
		if volume := at(quote.Volume, i); volume != nil {
			point.Volume = int64(*volume)
		}
		if j, exists := index[point.Date]; exists {
			result[j] = point
		} else {
			index[point.Date] = len(result)
			result = append(result, point)
		}
	}

	// Sort by date
	slices.SortFunc(result, func(a, b schema.HistoryPoint) int {
		return strings.Compare(a.Date, b.Date)
	})
	return result, nil
}

// location returns the exchange timezone, falling back to its fixed offset
func (r *chartResult) location() *time.Location {
	if r.Meta.Timezone != "" {
		if loc, err := time.LoadLocation(r.Meta.Timezone); err == nil {
			return loc
		}
	}
	return time.FixedZone("", r.Meta.GMTOffset)
}

func at(values []*float64, i int) *float64 {
	if i < len(values) {
		return values[i]
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// SEARCH

func (r *searchResponse) matches() []schema.StockMatch {
	result := make([]schema.StockMatch, 0, len(r.Quotes))
	for _, quote := range r.Quotes {
		if quote.Symbol == "" {
			continue
		}
		name := quote.Longname
		if name == "" {
			name = quote.Shortname
		}
		result = append(result, schema.StockMatch{
			Symbol:   quote.Symbol,
			Name:     name,
			Exchange: quote.Exchange,
			Type:     quote.QuoteType,
		})
	}
	return result
}
