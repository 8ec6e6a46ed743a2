// Package cmd implements the wp CLI.
package cmd

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/wealthpilot/wealthpilot"
	"github.com/wealthpilot/wealthpilot/date"
	"github.com/wealthpilot/wealthpilot/store"
)

// Register registers every subcommand on the commander.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&portfolioCmd{}, "reports")
	c.Register(&budgetCmd{}, "reports")
	c.Register(&advisorCmd{}, "reports")
	c.Register(&taxCmd{}, "reports")
	c.Register(&matchCmd{}, "reports")
	c.Register(&rsuCmd{}, "reports")
	c.Register(&transfersCmd{}, "reports")

	c.Register(&profileCmd{}, "data")
	c.Register(&fetchCmd{}, "data")
	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&csvCmd{}, "data")
	c.Register(&configCmd{}, "data")

	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables for the shared flags.

var storePath = flag.String("store", "", "Path to the data directory (default ~/.wealthpilot)")
var redisAddr = flag.String("redis", "", "Redis address to use instead of the local data directory")

const fmpAPIKeyEnv = "FMP_API_KEY"

var fmpAPIFlag = flag.String("fmp-api-key", "", "Financial Modeling Prep API key for price refreshes.\n If missing it is read from the environment variable \""+fmpAPIKeyEnv+"\", then from the stored config. You can get one at https://financialmodelingprep.com/")

// OpenStore picks the store implementation the flags select.
func OpenStore() store.Store {
	if *redisAddr != "" {
		return store.NewRedisStore(*redisAddr)
	}
	dir := *storePath
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".wealthpilot")
	}
	return store.NewDirStore(dir)
}

// LoadApp opens the store and runs the startup lifecycle (seed check plus
// recurring-transfer catch-up) for today.
func LoadApp() (*wealthpilot.App, error) {
	app := wealthpilot.NewApp(OpenStore())
	if err := app.Startup(date.Today()); err != nil {
		return nil, err
	}
	return app, nil
}

// fmpAPIKey resolves the quote-provider key: flag, then environment, then
// the stored config record.
func fmpAPIKey(app *wealthpilot.App) string {
	if *fmpAPIFlag != "" {
		return *fmpAPIFlag
	}
	if key := os.Getenv(fmpAPIKeyEnv); key != "" {
		return key
	}
	return app.APIKey()
}
