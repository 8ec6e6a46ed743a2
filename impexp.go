package wealthpilot

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/wealthpilot/wealthpilot/store"
)

// this file handles the backup envelope and the holdings CSV export.
// The backup should remain a single human-readable file that round-trips
// every persisted record byte for byte.

// backupApp identifies an envelope as ours; import rejects anything else.
const backupApp = "wealthpilot"

// backupVersion is the envelope format version.
const backupVersion = 1

// Backup is the export envelope. Data holds the raw persisted value of each
// present record, keyed by storage key.
type Backup struct {
	Version    int                        `json:"version"`
	App        string                     `json:"app"`
	ExportedAt string                     `json:"exportedAt"`
	Data       map[string]json.RawMessage `json:"data"`
}

// ExportBackup writes an envelope containing every persisted record present
// in the store.
func ExportBackup(s store.Store, w io.Writer, now time.Time) error {
	b := Backup{
		Version:    backupVersion,
		App:        backupApp,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Data:       make(map[string]json.RawMessage),
	}
	for _, key := range StorageKeys {
		raw, ok, err := s.Get(key)
		if err != nil {
			return fmt.Errorf("cannot export record %q: %w", key, err)
		}
		if ok {
			b.Data[key] = json.RawMessage(raw)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

// ImportBackup replaces each record present in the envelope wholesale. A
// payload that is not valid JSON, has no data object, or belongs to another
// app is rejected with no state mutated. Keys outside the known record set
// are ignored.
func ImportBackup(s store.Store, r io.Reader) error {
	var b Backup
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return fmt.Errorf("not a valid backup file: %w", err)
	}
	if b.App != backupApp || b.Data == nil {
		return fmt.Errorf("not a %s backup file", backupApp)
	}

	for _, key := range StorageKeys {
		raw, ok := b.Data[key]
		if !ok {
			continue
		}
		// Records are stored compact; strip the envelope's indentation so a
		// round trip reproduces them byte for byte.
		var compact bytes.Buffer
		if err := json.Compact(&compact, raw); err != nil {
			return fmt.Errorf("invalid record %q in backup: %w", key, err)
		}
		if err := s.Set(key, compact.Bytes()); err != nil {
			return fmt.Errorf("cannot import record %q: %w", key, err)
		}
	}
	return nil
}

// ExportHoldingsCSV writes the holdings as CSV: one row per holding sorted
// by account then ticker, a blank line, per-account subtotal rows, and a
// grand-total row.
func ExportHoldingsCSV(w io.Writer, holdings []Holding) error {
	enriched := Enrich(holdings)
	sort.SliceStable(enriched, func(i, j int) bool {
		if enriched[i].Account != enriched[j].Account {
			return enriched[i].Account < enriched[j].Account
		}
		return enriched[i].Ticker < enriched[j].Ticker
	})

	cw := csv.NewWriter(w)
	header := []string{"account", "ticker", "name", "type", "shares", "avgCost", "currentPrice", "costBasis", "currentValue", "gainLoss", "gainLoss%"}
	if err := cw.Write(header); err != nil {
		return err
	}

	type subtotal struct {
		cost, value float64
	}
	totals := make(map[Account]*subtotal)
	var accounts []Account

	for _, h := range enriched {
		row := []string{
			string(h.Account),
			h.Ticker,
			h.Name,
			string(h.Type),
			formatFloat(h.Shares, 3),
			formatFloat(h.AvgCost, 2),
			formatFloat(h.CurrentPrice, 2),
			formatFloat(h.CostBasis, 2),
			formatFloat(h.CurrentValue, 2),
			formatFloat(h.GainLoss, 2),
			formatFloat(h.GainLossPercent*100, 2) + "%",
		}
		if err := cw.Write(row); err != nil {
			return err
		}
		if _, ok := totals[h.Account]; !ok {
			totals[h.Account] = &subtotal{}
			accounts = append(accounts, h.Account)
		}
		totals[h.Account].cost += h.CostBasis
		totals[h.Account].value += h.CurrentValue
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	// Blank separator line between detail and subtotal sections.
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	var grandCost, grandValue float64
	for _, account := range accounts {
		t := totals[account]
		if err := cw.Write(totalRow("TOTAL "+string(account), t.cost, t.value)); err != nil {
			return err
		}
		grandCost += t.cost
		grandValue += t.value
	}
	if err := cw.Write(totalRow("TOTAL", grandCost, grandValue)); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func totalRow(label string, cost, value float64) []string {
	gain := value - cost
	pct := 0.0
	if cost > 0 {
		pct = gain / cost
	}
	return []string{
		label, "", "", "", "", "", "",
		formatFloat(cost, 2),
		formatFloat(value, 2),
		formatFloat(gain, 2),
		formatFloat(pct*100, 2) + "%",
	}
}

func formatFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
