package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/folio-app/folio"
)

// flowCmd holds the flags for the 'flow' subcommand.
type flowCmd struct {
	date       string
	currency   string
	memo       string
	ledgerFile string
}

func (*flowCmd) Name() string     { return "flow" }
func (*flowCmd) Synopsis() string { return "record an external cash flow" }
func (*flowCmd) Usage() string {
	return `fo flow [-d <date>] [-c <currency>] [-m <memo>] [-l <ledger>] <amount>

  Records an external cash flow: positive for a deposit into the portfolio,
  negative for a withdrawal. Flows are excluded from performance, so a
  deposit never shows up as a gain.

Usage Examples:
$ fo flow 1000
$ fo flow -d 2025-07-01 -c EUR -m "bonus" 2500
$ fo flow -- -500
`
}

func (c *flowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the flow. Defaults to today.")
	f.StringVar(&c.currency, "c", "", "Currency of the flow. Defaults to the reporting currency.")
	f.StringVar(&c.memo, "m", "", "Optional note attached to the flow.")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to edit. Defaults to the only ledger if one exists.")
}

func (c *flowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: want exactly one <amount>")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	on, status := parseDateFlag(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}
	return appendAndSave(c.ledgerFile, folio.NewFlow(on, c.memo, amount, c.currency))
}
