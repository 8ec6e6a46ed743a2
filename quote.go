package wealthpilot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/PaesslerAG/jsonpath"
)

// CashTicker is the cash-equivalent position pinned to $1. It is never sent
// to the quote provider and its price is never overwritten.
const CashTicker = "CASH"

// DefaultQuoteURL is the FMP batch-quote endpoint.
const DefaultQuoteURL = "https://financialmodelingprep.com/api/v3/quote/"

// RefreshResult reports the outcome of one price refresh. A failed refresh
// never mutates holdings.
type RefreshResult struct {
	Success bool
	Error   string
	Updated int
	Prices  map[string]float64
}

// QuoteClient fetches current prices from the quote provider. The zero
// value is usable; BaseURL and HTTP default to the FMP endpoint and
// http.DefaultClient.
type QuoteClient struct {
	BaseURL  string
	HTTP     *http.Client
	inFlight atomic.Bool
}

// Refresh fetches a quote for every distinct non-cash ticker and returns a
// copy of holdings with current prices updated. Any failure (missing API
// key, transport error, non-2xx status, error-shaped body, malformed body)
// leaves the input untouched and is reported in the result. A refresh
// already in flight rejects a second trigger.
func (c *QuoteClient) Refresh(ctx context.Context, apiKey string, holdings []Holding) ([]Holding, RefreshResult) {
	if apiKey == "" {
		return holdings, RefreshResult{Error: "no API key configured"}
	}
	if !c.inFlight.CompareAndSwap(false, true) {
		return holdings, RefreshResult{Error: "refresh already in progress"}
	}
	defer c.inFlight.Store(false)

	tickers := distinctTickers(holdings)
	if len(tickers) == 0 {
		return holdings, RefreshResult{Success: true, Prices: map[string]float64{}}
	}

	prices, err := c.fetch(ctx, apiKey, tickers)
	if err != nil {
		return holdings, RefreshResult{Error: err.Error()}
	}

	updated := make([]Holding, len(holdings))
	copy(updated, holdings)
	count := 0
	for i := range updated {
		if price, ok := prices[updated[i].Ticker]; ok && updated[i].Ticker != CashTicker {
			updated[i].CurrentPrice = price
			count++
		}
	}
	return updated, RefreshResult{Success: true, Updated: count, Prices: prices}
}

func (c *QuoteClient) fetch(ctx context.Context, apiKey string, tickers []string) (map[string]float64, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultQuoteURL
	}
	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	addr := base + strings.Join(tickers, ",") + "?apikey=" + url.QueryEscape(apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quote request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read quote response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote provider returned %s", resp.Status)
	}

	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse quote response: %w", err)
	}

	// An error payload is an object with a message field instead of the
	// usual array of quotes.
	if obj, ok := jobj.(map[string]any); ok {
		for _, field := range []string{"Error Message", "error", "message"} {
			if msg, ok := obj[field].(string); ok && msg != "" {
				return nil, fmt.Errorf("quote provider error: %s", msg)
			}
		}
		return nil, fmt.Errorf("unexpected quote response shape")
	}

	symbols, err := jsonpath.Get("$[*].symbol", jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot extract symbols: %w", err)
	}
	values, err := jsonpath.Get("$[*].price", jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot extract prices: %w", err)
	}
	symList, ok1 := symbols.([]any)
	valList, ok2 := values.([]any)
	if !ok1 || !ok2 || len(symList) != len(valList) {
		return nil, fmt.Errorf("unexpected quote response shape")
	}

	prices := make(map[string]float64, len(symList))
	for i := range symList {
		sym, ok := symList[i].(string)
		if !ok {
			continue
		}
		price, ok := valList[i].(float64)
		if !ok {
			continue
		}
		prices[sym] = price
	}
	return prices, nil
}

// distinctTickers returns each ticker once, sorted, without the cash
// equivalent.
func distinctTickers(holdings []Holding) []string {
	seen := make(map[string]bool)
	var tickers []string
	for _, h := range holdings {
		if h.Ticker == CashTicker || h.Ticker == "" || seen[h.Ticker] {
			continue
		}
		seen[h.Ticker] = true
		tickers = append(tickers, h.Ticker)
	}
	sort.Strings(tickers)
	return tickers
}
