package wealthpilot

import (
	"fmt"
	"sync"
	"time"

	"github.com/wealthpilot/wealthpilot/date"
	"github.com/wealthpilot/wealthpilot/store"
)

// The persisted records. Each is an independent key in the store.
const (
	KeyProfile       = "wp_profile"
	KeyBudget        = "wp_budget"
	KeyPortfolio     = "wp_portfolio"
	KeyTransfers     = "wp_recurring_transfers"
	KeyPortfolioSeed = "wp_portfolio_seed"
	KeyRSUs          = "wp_rsus"
	KeyRSUSeed       = "wp_rsus_seed"
	KeyAPIKey        = "wp_fmp_api_key"
	KeyLastRefresh   = "wp_last_price_refresh"
)

// StorageKeys lists every persisted record, in export order.
var StorageKeys = []string{
	KeyProfile,
	KeyBudget,
	KeyPortfolio,
	KeyTransfers,
	KeyPortfolioSeed,
	KeyRSUs,
	KeyRSUSeed,
	KeyAPIKey,
	KeyLastRefresh,
}

// App owns the reconciled application state. Startup runs the seed check
// and the recurring-transfer catch-up exactly once per process, before any
// component reads state.
type App struct {
	Store store.Store

	once       sync.Once
	startupErr error

	Profile   Profile
	Budget    []BudgetEntry
	Holdings  []Holding
	Transfers []RecurringTransfer
	Grants    []RSUGrant

	// LastSim is the result of the startup catch-up pass, kept so callers
	// can surface skipped occurrences.
	LastSim SimulationResult
}

// NewApp wraps a store. Call Startup before reading any state.
func NewApp(s store.Store) *App {
	return &App{Store: s}
}

// Startup seeds default data where the stored seed version is stale, loads
// every record, and runs the recurring-transfer catch-up. It is safe to
// call more than once; only the first call does work. When the catch-up
// changed anything, holdings and transfers are persisted together - a
// failure on either write aborts with neither collection treated as saved.
func (a *App) Startup(today date.Date) error {
	a.once.Do(func() { a.startupErr = a.startup(today) })
	return a.startupErr
}

func (a *App) startup(today date.Date) error {
	if err := a.seed(); err != nil {
		return err
	}
	if err := a.load(); err != nil {
		return err
	}

	sim := SimulateTransfers(a.Holdings, a.Transfers, today)
	if sim.Changed {
		if err := a.persistSimulation(sim); err != nil {
			return err
		}
		a.Holdings = sim.Holdings
		a.Transfers = sim.Transfers
	}
	a.LastSim = sim
	return nil
}

func (a *App) load() error {
	profile, ok, err := store.Read[Profile](a.Store, KeyProfile)
	if err != nil {
		return err
	}
	if !ok {
		profile = DefaultProfile()
	}
	a.Profile = profile

	if a.Budget, _, err = store.Read[[]BudgetEntry](a.Store, KeyBudget); err != nil {
		return err
	}
	if a.Holdings, _, err = store.Read[[]Holding](a.Store, KeyPortfolio); err != nil {
		return err
	}
	if a.Transfers, _, err = store.Read[[]RecurringTransfer](a.Store, KeyTransfers); err != nil {
		return err
	}
	if a.Grants, _, err = store.Read[[]RSUGrant](a.Store, KeyRSUs); err != nil {
		return err
	}
	return nil
}

// persistSimulation writes both collections of a catch-up pass. Marshal
// errors are impossible here, so the only failure mode is the store; the
// second write is not attempted after the first fails.
func (a *App) persistSimulation(sim SimulationResult) error {
	if err := store.Write(a.Store, KeyPortfolio, sim.Holdings); err != nil {
		return fmt.Errorf("cannot persist holdings after catch-up: %w", err)
	}
	if err := store.Write(a.Store, KeyTransfers, sim.Transfers); err != nil {
		return fmt.Errorf("cannot persist transfers after catch-up: %w", err)
	}
	return nil
}

// SaveProfile persists the profile.
func (a *App) SaveProfile(p Profile) error {
	if err := store.Write(a.Store, KeyProfile, p); err != nil {
		return err
	}
	a.Profile = p
	return nil
}

// UpdateProfile merges a partial update into the profile and persists it.
func (a *App) UpdateProfile(u ProfileUpdate) (Profile, error) {
	merged := u.Apply(a.Profile)
	if err := merged.Validate(); err != nil {
		return a.Profile, err
	}
	return merged, a.SaveProfile(merged)
}

// SaveBudget persists the budget entries.
func (a *App) SaveBudget(entries []BudgetEntry) error {
	if err := store.Write(a.Store, KeyBudget, entries); err != nil {
		return err
	}
	a.Budget = entries
	return nil
}

// SaveHoldings persists the holdings.
func (a *App) SaveHoldings(holdings []Holding) error {
	if err := store.Write(a.Store, KeyPortfolio, holdings); err != nil {
		return err
	}
	a.Holdings = holdings
	return nil
}

// SaveTransfers persists the recurring transfers.
func (a *App) SaveTransfers(transfers []RecurringTransfer) error {
	if err := store.Write(a.Store, KeyTransfers, transfers); err != nil {
		return err
	}
	a.Transfers = transfers
	return nil
}

// SaveGrants persists the RSU grants.
func (a *App) SaveGrants(grants []RSUGrant) error {
	if err := store.Write(a.Store, KeyRSUs, grants); err != nil {
		return err
	}
	a.Grants = grants
	return nil
}

// APIKey returns the stored quote-provider API key, or "".
func (a *App) APIKey() string {
	key, _, _ := store.Read[string](a.Store, KeyAPIKey)
	return key
}

// SetAPIKey stores the quote-provider API key.
func (a *App) SetAPIKey(key string) error {
	return store.Write(a.Store, KeyAPIKey, key)
}

// LastRefresh returns when prices were last refreshed, or the zero time.
func (a *App) LastRefresh() time.Time {
	stamp, ok, _ := store.Read[string](a.Store, KeyLastRefresh)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SetLastRefresh records a successful price refresh.
func (a *App) SetLastRefresh(t time.Time) error {
	return store.Write(a.Store, KeyLastRefresh, t.Format(time.RFC3339))
}
