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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date       string
	currency   string
	offline    bool
	ledgerFile string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a portfolio performance summary" }
func (*summaryCmd) Usage() string {
	return `fo summary [-d <date>] [-c <currency>] [-offline] [-l <ledger>]

  Displays the total market value and the time-weighted returns over the
  day, week, month, quarter, year and since inception.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", folio.Today().String(), "Date of the summary.")
	f.StringVar(&c.currency, "c", "", "Display currency. Defaults to the reporting currency.")
	f.BoolVar(&c.offline, "offline", false, "Skip fetching exchange rates.")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to report on. Defaults to the only ledger if one exists.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	s := ledger.NewSummary(on, c.currency, fetchRates(ledger, c.offline))
	printMarkdown(renderer.RenderSummary(renderer.NewSummaryView(s)))
	return subcommands.ExitSuccess
}
