// Package wealthpilot implements the financial computation engine behind the
// wp command line tool: budget aggregation, portfolio valuation and drift,
// recurring-contribution simulation, NYC take-home tax estimation, a
// retirement-contribution waterfall, and RSU vesting schedules.
//
// Every calculator is a pure function over its inputs. The only stateful
// pieces are the App lifecycle (seed population and recurring-transfer
// catch-up, run once per process) and the optional quote refresh.
package wealthpilot
