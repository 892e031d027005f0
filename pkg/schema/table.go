package schema

import (
	"strings"

	// Packages
	uitable "github.com/mutablelogic/go-weatherstock/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ToolTable implements table.TableData for a list of tools.
type ToolTable []ToolDefinition

// PromptTable implements table.TableData for a list of prompts.
type PromptTable []PromptDefinition

// QuoteTable implements table.TableData for a single quote, one field per row.
type QuoteTable StockQuote

// HistoryTable implements table.TableData for a price series.
type HistoryTable []HistoryPoint

// MatchTable implements table.TableData for search results.
type MatchTable []StockMatch

///////////////////////////////////////////////////////////////////////////////
// TOOL TABLE

func (t ToolTable) Header() []string {
	return []string{"NAME", "PARAMETERS", "DESCRIPTION"}
}

func (t ToolTable) Len() int {
	return len(t)
}

func (t ToolTable) Row(i int) []any {
	params := make([]string, 0, len(t[i].Parameters))
	for _, p := range t[i].Parameters {
		if p.Required {
			params = append(params, p.Name)
		} else {
			params = append(params, "["+p.Name+"]")
		}
	}
	return []any{uitable.Bold{Value: t[i].Name}, strings.Join(params, " "), uitable.Truncate(t[i].Description, 80)}
}

///////////////////////////////////////////////////////////////////////////////
// PROMPT TABLE

func (t PromptTable) Header() []string {
	return []string{"NAME", "ARGUMENTS", "DESCRIPTION"}
}

func (t PromptTable) Len() int {
	return len(t)
}

func (t PromptTable) Row(i int) []any {
	args := make([]string, 0, len(t[i].Arguments))
	for _, a := range t[i].Arguments {
		args = append(args, a.Name)
	}
	return []any{uitable.Bold{Value: t[i].Name}, strings.Join(args, " "), t[i].Description}
}

///////////////////////////////////////////////////////////////////////////////
// QUOTE TABLE

func (t QuoteTable) Header() []string {
	return []string{"FIELD", "VALUE"}
}

func (t QuoteTable) Len() int {
	return 13
}

func (t QuoteTable) Row(i int) []any {
	switch i {
	case 0:
		return []any{"symbol", uitable.Bold{Value: t.Symbol}}
	case 1:
		return []any{"name", t.Name}
	case 2:
		return []any{"price", t.Price}
	case 3:
		return []any{"currency", t.Currency}
	case 4:
		return []any{"day_high", t.DayHigh}
	case 5:
		return []any{"day_low", t.DayLow}
	case 6:
		return []any{"52_week_high", t.YearHigh}
	case 7:
		return []any{"52_week_low", t.YearLow}
	case 8:
		return []any{"market_cap", t.MarketCap}
	case 9:
		return []any{"volume", t.Volume}
	case 10:
		return []any{"average_volume", t.AverageVolume}
	case 11:
		return []any{"pe_ratio", t.PERatio}
	case 12:
		return []any{"dividend_yield", t.DividendYield}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// HISTORY TABLE

func (t HistoryTable) Header() []string {
	return []string{"DATE", "OPEN", "HIGH", "LOW", "CLOSE", "VOLUME"}
}

func (t HistoryTable) Len() int {
	return len(t)
}

func (t HistoryTable) Row(i int) []any {
	p := t[i]
	return []any{p.Date, p.Open, p.High, p.Low, uitable.Bold{Value: p.Close}, p.Volume}
}

///////////////////////////////////////////////////////////////////////////////
// MATCH TABLE

func (t MatchTable) Header() []string {
	return []string{"SYMBOL", "NAME", "EXCHANGE", "TYPE"}
}

func (t MatchTable) Len() int {
	return len(t)
}

func (t MatchTable) Row(i int) []any {
	m := t[i]
	return []any{uitable.Bold{Value: m.Symbol}, m.Name, m.Exchange, m.Type}
}
