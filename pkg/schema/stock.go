package schema

import (
	"strings"

	// Packages
	weatherstock "github.com/mutablelogic/go-weatherstock"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// StockQuote is a normalized snapshot of a single security. Every field
// except Symbol and Currency is NotAvailable when the provider omits it.
type StockQuote struct {
	Symbol        string `json:"symbol"`
	Name          any    `json:"name"`
	Price         any    `json:"price"`
	Currency      string `json:"currency"`
	DayHigh       any    `json:"day_high"`
	DayLow        any    `json:"day_low"`
	YearHigh      any    `json:"52_week_high"`
	YearLow       any    `json:"52_week_low"`
	MarketCap     any    `json:"market_cap"`
	Volume        any    `json:"volume"`
	AverageVolume any    `json:"average_volume"`
	PERatio       any    `json:"pe_ratio"`
	DividendYield any    `json:"dividend_yield"`
}

// HistoryPoint is one trading day of a price series
type HistoryPoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// StockMatch is a single search hit. Exchange and Type are empty when the
// provider does not report them.
type StockMatch struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Type     string `json:"type"`
}

// Period is a history lookback window
type Period string

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// NotAvailable is substituted for any quote field the provider omits
	NotAvailable = "N/A"

	// DefaultCurrency is used when the provider omits the quote currency
	DefaultCurrency = "USD"
)

const (
	Period1Day    Period = "1d"
	Period5Days   Period = "5d"
	Period1Month  Period = "1mo"
	Period3Months Period = "3mo"
	Period6Months Period = "6mo"
	Period1Year   Period = "1y"
	Period2Years  Period = "2y"
	Period5Years  Period = "5y"
	PeriodMax     Period = "max"

	DefaultPeriod = Period1Month
)

// Periods lists every accepted history window, shortest first
var Periods = []Period{
	Period1Day, Period5Days, Period1Month, Period3Months, Period6Months,
	Period1Year, Period2Years, Period5Years, PeriodMax,
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ParsePeriod returns the period for v. Matching is exact, so "1MO" and
// the empty string are rejected.
func ParsePeriod(v string) (Period, error) {
	for _, p := range Periods {
		if string(p) == v {
			return p, nil
		}
	}
	options := make([]string, 0, len(Periods))
	for _, p := range Periods {
		options = append(options, string(p))
	}
	return "", weatherstock.ErrBadParameter.Withf("Invalid period: %s. Valid options are: %s", v, strings.Join(options, ", "))
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (q StockQuote) String() string {
	return Stringify(q)
}

func (p HistoryPoint) String() string {
	return Stringify(p)
}

func (m StockMatch) String() string {
	return Stringify(m)
}
