package wealthpilot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func quoteServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apikey") == "" {
			t.Error("request sent without apikey")
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestQuoteClientRefresh(t *testing.T) {
	srv := quoteServer(t, http.StatusOK, `[
		{"symbol":"VTI","price":289.99},
		{"symbol":"BTC","price":64250.5}
	]`)
	client := QuoteClient{BaseURL: srv.URL + "/", HTTP: srv.Client()}

	holdings := []Holding{
		{Ticker: "VTI", Account: Taxable, Shares: 10, AvgCost: 200, CurrentPrice: 250},
		{Ticker: "VTI", Account: RothIRA, Shares: 5, AvgCost: 220, CurrentPrice: 250},
		{Ticker: CashTicker, Account: Taxable, Shares: 500, AvgCost: 1, CurrentPrice: 1},
		{Ticker: "BTC", Account: CryptoExchange, Shares: 0.05, AvgCost: 60000, CurrentPrice: 60000},
	}

	updated, result := client.Refresh(context.Background(), "key", holdings)

	if !result.Success {
		t.Fatalf("Refresh failed: %s", result.Error)
	}
	if result.Updated != 3 {
		t.Errorf("Updated = %d, want 3", result.Updated)
	}
	approx(t, "VTI taxable", updated[0].CurrentPrice, 289.99)
	approx(t, "VTI roth", updated[1].CurrentPrice, 289.99)
	approx(t, "CASH", updated[2].CurrentPrice, 1)
	approx(t, "BTC", updated[3].CurrentPrice, 64250.5)

	// Shares and cost basis are untouched by a price refresh.
	approx(t, "VTI shares", updated[0].Shares, 10)
	approx(t, "VTI avgCost", updated[0].AvgCost, 200)
	// Input slice is untouched.
	approx(t, "input VTI price", holdings[0].CurrentPrice, 250)
}

func TestQuoteClientRefresh_MissingKey(t *testing.T) {
	var client QuoteClient

	updated, result := client.Refresh(context.Background(), "", []Holding{{Ticker: "VTI", CurrentPrice: 250}})

	if result.Success {
		t.Error("Refresh succeeded without an API key")
	}
	approx(t, "price", updated[0].CurrentPrice, 250)
}

func TestQuoteClientRefresh_HTTPError(t *testing.T) {
	srv := quoteServer(t, http.StatusForbidden, `{"Error Message":"invalid key"}`)
	client := QuoteClient{BaseURL: srv.URL + "/", HTTP: srv.Client()}

	holdings := []Holding{{Ticker: "VTI", CurrentPrice: 250}}
	updated, result := client.Refresh(context.Background(), "bad", holdings)

	if result.Success {
		t.Error("Refresh succeeded on a 403")
	}
	approx(t, "price", updated[0].CurrentPrice, 250)
}

func TestQuoteClientRefresh_ErrorBody(t *testing.T) {
	// FMP reports some failures inside a 200 response.
	srv := quoteServer(t, http.StatusOK, `{"Error Message":"Limit Reach"}`)
	client := QuoteClient{BaseURL: srv.URL + "/", HTTP: srv.Client()}

	_, result := client.Refresh(context.Background(), "key", []Holding{{Ticker: "VTI", CurrentPrice: 250}})

	if result.Success {
		t.Error("Refresh succeeded on an error-shaped body")
	}
}

func TestQuoteClientRefresh_MalformedBody(t *testing.T) {
	srv := quoteServer(t, http.StatusOK, `not json at all`)
	client := QuoteClient{BaseURL: srv.URL + "/", HTTP: srv.Client()}

	_, result := client.Refresh(context.Background(), "key", []Holding{{Ticker: "VTI", CurrentPrice: 250}})

	if result.Success {
		t.Error("Refresh succeeded on a malformed body")
	}
}

func TestQuoteClientRefresh_CashOnly(t *testing.T) {
	// No tickers to fetch: trivially successful, no request made.
	srv := quoteServer(t, http.StatusOK, `[]`)
	client := QuoteClient{BaseURL: srv.URL + "/", HTTP: srv.Client()}

	_, result := client.Refresh(context.Background(), "key", []Holding{{Ticker: CashTicker, CurrentPrice: 1}})

	if !result.Success {
		t.Errorf("Refresh failed: %s", result.Error)
	}
	if result.Updated != 0 {
		t.Errorf("Updated = %d, want 0", result.Updated)
	}
}

func TestQuoteClientRefresh_SingleFlight(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`[{"symbol":"VTI","price":300}]`))
	}))
	t.Cleanup(srv.Close)
	client := QuoteClient{BaseURL: srv.URL + "/", HTTP: srv.Client()}

	holdings := []Holding{{Ticker: "VTI", CurrentPrice: 250}}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, result := client.Refresh(context.Background(), "key", holdings)
		if !result.Success {
			t.Errorf("first refresh failed: %s", result.Error)
		}
	}()

	// Second trigger while the first is blocked on the server.
	for !client.inFlight.Load() {
		time.Sleep(time.Millisecond)
	}
	_, second := client.Refresh(context.Background(), "key", holdings)
	if second.Success {
		t.Error("second refresh succeeded while one was in flight")
	}

	close(release)
	wg.Wait()
}

func TestDistinctTickers(t *testing.T) {
	holdings := []Holding{
		{Ticker: "VTI"}, {Ticker: "BTC"}, {Ticker: "VTI"}, {Ticker: CashTicker}, {Ticker: "AVUV"},
	}

	got := distinctTickers(holdings)

	want := []string{"AVUV", "BTC", "VTI"}
	if len(got) != len(want) {
		t.Fatalf("distinctTickers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("distinctTickers[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
