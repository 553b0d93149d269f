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

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct {
	date       string
	ledgerFile string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "record the market value of assets on a date" }
func (*valueCmd) Usage() string {
	return `fo value [-d <date>] [-l <ledger>] <symbol> <amount> [<symbol> <amount>...]

  Records the market value of one or more declared assets, in each asset's
  own currency. Assets not mentioned keep their previous value: reports
  carry the last known value forward.

Usage Examples:
$ fo value VWCE 8500
$ fo value -d 2025-07-01 VWCE 8500 AGGH 4100
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the records. Defaults to today.")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to edit. Defaults to the only ledger if one exists.")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) == 0 || len(args)%2 != 0 {
		fmt.Fprintln(os.Stderr, "Error: want pairs of <symbol> <amount>")
		return subcommands.ExitUsageError
	}
	on, status := parseDateFlag(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}

	var entries []folio.Entry
	for i := 0; i < len(args); i += 2 {
		amount, err := decimal.NewFromString(args[i+1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid amount %q for %q: %v\n", args[i+1], args[i], err)
			return subcommands.ExitUsageError
		}
		entries = append(entries, folio.NewValue(on, args[i], amount))
	}
	return appendAndSave(c.ledgerFile, entries...)
}
