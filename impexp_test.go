package wealthpilot

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/wealthpilot/wealthpilot/store"
)

func TestBackupRoundTrip(t *testing.T) {
	src := store.NewMemStore()
	if err := store.Write(src, KeyProfile, Profile{Name: "Alex", AnnualSalary: 85000, RiskTolerance: Aggressive}); err != nil {
		t.Fatal(err)
	}
	if err := store.Write(src, KeyPortfolio, []Holding{{ID: "h1", Ticker: "VTI", Shares: 10.5, AvgCost: 200}}); err != nil {
		t.Fatal(err)
	}
	if err := store.Write(src, KeyAPIKey, "secret"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ExportBackup(src, &buf, time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("ExportBackup() error = %v", err)
	}

	// The envelope identifies the app and carries the export time.
	var envelope map[string]any
	if err := json.Unmarshal(buf.Bytes(), &envelope); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if envelope["app"] != "wealthpilot" {
		t.Errorf("app = %v, want wealthpilot", envelope["app"])
	}
	if envelope["exportedAt"] != "2026-08-29T12:00:00Z" {
		t.Errorf("exportedAt = %v", envelope["exportedAt"])
	}

	dst := store.NewMemStore()
	if err := ImportBackup(dst, &buf); err != nil {
		t.Fatalf("ImportBackup() error = %v", err)
	}

	// Every record comes back byte for byte.
	for _, key := range []string{KeyProfile, KeyPortfolio, KeyAPIKey} {
		want, _, _ := src.Get(key)
		got, ok, err := dst.Get(key)
		if err != nil || !ok {
			t.Fatalf("record %q missing after import (err = %v)", key, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("record %q = %s, want %s", key, got, want)
		}
	}
}

func TestExportBackup_OnlyPresentKeys(t *testing.T) {
	s := store.NewMemStore()
	if err := store.Write(s, KeyProfile, DefaultProfile()); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ExportBackup(s, &buf, time.Now()); err != nil {
		t.Fatal(err)
	}

	var b Backup
	if err := json.Unmarshal(buf.Bytes(), &b); err != nil {
		t.Fatal(err)
	}
	if len(b.Data) != 1 {
		t.Errorf("len(Data) = %d, want 1: %v", len(b.Data), b.Data)
	}
	if _, ok := b.Data[KeyProfile]; !ok {
		t.Error("profile record missing from export")
	}
}

func TestImportBackup_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "definitely not json"},
		{"wrong app", `{"version":1,"app":"other","exportedAt":"2026-01-01T00:00:00Z","data":{}}`},
		{"no data", `{"version":1,"app":"wealthpilot","exportedAt":"2026-01-01T00:00:00Z"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := store.NewMemStore()
			if err := store.Write(s, KeyProfile, DefaultProfile()); err != nil {
				t.Fatal(err)
			}
			before, _, _ := s.Get(KeyProfile)

			if err := ImportBackup(s, strings.NewReader(tc.payload)); err == nil {
				t.Fatal("ImportBackup() error = nil, want rejection")
			}

			after, _, _ := s.Get(KeyProfile)
			if !bytes.Equal(before, after) {
				t.Error("store mutated by rejected import")
			}
		})
	}
}

func TestImportBackup_IgnoresUnknownKeys(t *testing.T) {
	s := store.NewMemStore()
	payload := `{"version":1,"app":"wealthpilot","exportedAt":"2026-01-01T00:00:00Z","data":{"wp_profile":{"name":"Alex"},"evil_key":"x"}}`

	if err := ImportBackup(s, strings.NewReader(payload)); err != nil {
		t.Fatalf("ImportBackup() error = %v", err)
	}
	if _, ok, _ := s.Get("evil_key"); ok {
		t.Error("unknown key imported")
	}
	if _, ok, _ := s.Get(KeyProfile); !ok {
		t.Error("known key not imported")
	}
}

func TestExportHoldingsCSV(t *testing.T) {
	holdings := []Holding{
		{Ticker: "BTC", Name: "Bitcoin", Type: Crypto, Account: CryptoExchange, Shares: 0.5, AvgCost: 40000, CurrentPrice: 60000},
		{Ticker: "VTI", Name: "Total Market", Type: ETF, Account: Taxable, Shares: 10, AvgCost: 200, CurrentPrice: 250},
		{Ticker: "QQQ", Name: "Nasdaq 100", Type: ETF, Account: Taxable, Shares: 4, AvgCost: 400, CurrentPrice: 500},
	}

	var buf bytes.Buffer
	if err := ExportHoldingsCSV(&buf, holdings); err != nil {
		t.Fatalf("ExportHoldingsCSV() error = %v", err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if !strings.HasPrefix(lines[0], "account,ticker,name,type,") {
		t.Errorf("header = %q", lines[0])
	}
	// Rows sorted by account then ticker: crypto_exchange before taxable,
	// QQQ before VTI.
	if !strings.HasPrefix(lines[1], "crypto_exchange,BTC,") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "taxable,QQQ,") {
		t.Errorf("line 2 = %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "taxable,VTI,") {
		t.Errorf("line 3 = %q", lines[3])
	}
	// A blank line separates the rows from the subtotals.
	if lines[4] != "" {
		t.Errorf("line 4 = %q, want blank", lines[4])
	}
	if !strings.Contains(out, "TOTAL crypto_exchange") || !strings.Contains(out, "TOTAL taxable") {
		t.Errorf("missing per-account totals:\n%s", out)
	}
	// Grand total: cost 20000+2000+1600, value 30000+2500+2000.
	if !strings.Contains(out, "23600.00") || !strings.Contains(out, "34500.00") {
		t.Errorf("missing grand totals:\n%s", out)
	}
}

func TestExportHoldingsCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportHoldingsCSV(&buf, nil); err != nil {
		t.Fatalf("ExportHoldingsCSV() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "account,ticker,") {
		t.Errorf("missing header: %q", buf.String())
	}
}
