package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/folio-app/folio"
	"github.com/folio-app/folio/renderer"
)

// perfCmd holds the flags for the 'perf' subcommand.
type perfCmd struct {
	from       string
	to         string
	currency   string
	offline    bool
	ledgerFile string
}

func (*perfCmd) Name() string     { return "perf" }
func (*perfCmd) Synopsis() string { return "display the time-weighted performance history" }
func (*perfCmd) Usage() string {
	return `fo perf [-from <date>] [-to <date>] [-c <currency>] [-offline] [-l <ledger>]

  Displays one row per snapshot with its period return (Modified Dietz, so
  deposits and withdrawals never count as performance) and the cumulative
  time-weighted return. A date range rebases the cumulative series on the
  first snapshot inside it.

Usage Examples:
$ fo perf
$ fo perf -from 2025-01-01 -to 2025-06-30
`
}

func (c *perfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the reporting range. Defaults to the first snapshot.")
	f.StringVar(&c.to, "to", "", "End of the reporting range. Defaults to the last snapshot.")
	f.StringVar(&c.currency, "c", "", "Display currency. Defaults to the reporting currency.")
	f.BoolVar(&c.offline, "offline", false, "Skip fetching exchange rates.")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to report on. Defaults to the only ledger if one exists.")
}

func (c *perfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var rng folio.Range
	var err error
	if c.from != "" {
		if rng.From, err = folio.ParseDate(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.to != "" {
		if rng.To, err = folio.ParseDate(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := loadLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	report := ledger.NewPerformanceReport(c.currency, fetchRates(ledger, c.offline))
	if c.from != "" || c.to != "" {
		report = report.Window(rng)
	}
	printMarkdown(renderer.RenderPerformance(renderer.NewPerformanceView(report)))
	return subcommands.ExitSuccess
}
