package yahoo

import (
	// Packages
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// NewStockQuote selects the quote fields from a provider info map. The
// price is the current price, falling back to the regular market price.
// Missing fields are schema.NotAvailable and a missing currency is
// schema.DefaultCurrency.
func NewStockQuote(symbol string, info map[string]any) schema.StockQuote {
	return schema.StockQuote{
		Symbol:        symbol,
		Name:          field(info, "shortName"),
		Price:         field(info, "currentPrice", "regularMarketPrice"),
		Currency:      currency(info),
		DayHigh:       field(info, "dayHigh"),
		DayLow:        field(info, "dayLow"),
		YearHigh:      field(info, "fiftyTwoWeekHigh"),
		YearLow:       field(info, "fiftyTwoWeekLow"),
		MarketCap:     field(info, "marketCap"),
		Volume:        field(info, "volume"),
		AverageVolume: field(info, "averageVolume"),
		PERatio:       field(info, "trailingPE"),
		DividendYield: field(info, "dividendYield"),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// field returns the first present, non-null value for the keys
func field(info map[string]any, keys ...string) any {
	for _, key := range keys {
		if value, exists := info[key]; exists && value != nil {
			return value
		}
	}
	return schema.NotAvailable
}

func currency(info map[string]any) string {
	if value, ok := info["currency"].(string); ok && value != "" {
		return value
	}
	return schema.DefaultCurrency
}
