package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/folio-app/folio"
)

// declareCmd holds the flags for the 'declare' subcommand.
type declareCmd struct {
	date       string
	symbol     string
	name       string
	platform   string
	currency   string
	category   string
	ledgerFile string
}

func (*declareCmd) Name() string     { return "declare" }
func (*declareCmd) Synopsis() string { return "declare a new asset in the ledger" }
func (*declareCmd) Usage() string {
	return `fo declare -s <symbol> -c <currency> [-n <name>] [-platform <platform>] [-category <category>] [-d <date>] [-l <ledger>]

  Declares an asset. The symbol is the stable key later value records refer
  to; the currency is the one its values are recorded in.

Usage Examples:
$ fo declare -s VWCE -c EUR -n "Vanguard FTSE All-World" -platform IBKR -category Stocks
`
}

func (c *declareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the declaration. Defaults to today.")
	f.StringVar(&c.symbol, "s", "", "Asset symbol, unique in the ledger.")
	f.StringVar(&c.name, "n", "", "Human-readable asset name.")
	f.StringVar(&c.platform, "platform", "", "Platform or broker holding the asset.")
	f.StringVar(&c.currency, "c", "", "Currency the asset values are recorded in.")
	f.StringVar(&c.category, "category", "", "Allocation category of the asset.")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to edit. Defaults to the only ledger if one exists.")
}

func (c *declareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.currency == "" {
		fmt.Fprintln(os.Stderr, "Error: -s and -c are required")
		return subcommands.ExitUsageError
	}
	on, status := parseDateFlag(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}
	return appendAndSave(c.ledgerFile,
		folio.NewDeclareAsset(on, c.symbol, c.name, c.platform, c.currency, c.category))
}
