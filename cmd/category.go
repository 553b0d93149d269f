package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/folio-app/folio"
)

// categoryCmd holds the flags for the 'category' subcommand.
type categoryCmd struct {
	date       string
	name       string
	target     float64
	order      int
	ledgerFile string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "declare an allocation category" }
func (*categoryCmd) Usage() string {
	return `fo category -n <name> [-target <percent>] [-order <order>] [-d <date>] [-l <ledger>]

  Declares an allocation category. A target percentage makes the category
  eligible for rebalancing suggestions; without one it is informational.
  Targets do not have to sum to 100% across categories, a different sum is
  only reported as a warning.

Usage Examples:
$ fo category -n Stocks -target 60 -order 1
$ fo category -n Crypto
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the declaration. Defaults to today.")
	f.StringVar(&c.name, "n", "", "Category name, unique in the ledger.")
	f.Float64Var(&c.target, "target", -1, "Target allocation in percent of the total portfolio.")
	f.IntVar(&c.order, "order", 0, "Display order in reports.")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to edit. Defaults to the only ledger if one exists.")
}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n is required")
		return subcommands.ExitUsageError
	}
	on, status := parseDateFlag(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}

	var target *folio.Percent
	if c.target >= 0 {
		p := folio.Percent(c.target)
		target = &p
	}
	return appendAndSave(c.ledgerFile, folio.NewDeclareCategory(on, c.name, target, c.order))
}
