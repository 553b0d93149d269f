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

// rebalanceCmd holds the flags for the 'rebalance' subcommand.
type rebalanceCmd struct {
	date       string
	currency   string
	offline    bool
	ledgerFile string
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "suggest transfers to reach the target allocation" }
func (*rebalanceCmd) Usage() string {
	return `fo rebalance [-d <date>] [-c <currency>] [-offline] [-l <ledger>]

  Compares each targeted category with its target share of the portfolio
  and suggests the transfers bringing them back in line. Imbalances below
  one currency unit are left alone.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", folio.Today().String(), "Date of the report.")
	f.StringVar(&c.currency, "c", "", "Display currency. Defaults to the reporting currency.")
	f.BoolVar(&c.offline, "offline", false, "Skip fetching exchange rates.")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to report on. Defaults to the only ledger if one exists.")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	r := ledger.NewRebalanceReport(on, c.currency, fetchRates(ledger, c.offline))
	printMarkdown(renderer.RenderRebalance(renderer.NewRebalanceView(r)))
	return subcommands.ExitSuccess
}
