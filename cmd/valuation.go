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

// valuationCmd holds the flags for the 'valuation' subcommand.
type valuationCmd struct {
	date       string
	currency   string
	offline    bool
	ledgerFile string
}

func (*valuationCmd) Name() string     { return "valuation" }
func (*valuationCmd) Synopsis() string { return "display the portfolio valuation on a date" }
func (*valuationCmd) Usage() string {
	return `fo valuation [-d <date>] [-c <currency>] [-offline] [-l <ledger>]

  Values every asset at its most recent record at or before the date,
  converted to the display currency, with per-category totals. Assets
  without any record yet are excluded, not shown as zero.
`
}

func (c *valuationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", folio.Today().String(), "Date of the valuation.")
	f.StringVar(&c.currency, "c", "", "Display currency. Defaults to the reporting currency.")
	f.BoolVar(&c.offline, "offline", false, "Skip fetching exchange rates.")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to report on. Defaults to the only ledger if one exists.")
}

func (c *valuationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := folio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, err := loadLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	v := ledger.Valuation(on, c.currency, fetchRates(ledger, c.offline))
	printMarkdown(renderer.RenderValuation(renderer.NewValuationView(v)))
	return subcommands.ExitSuccess
}
