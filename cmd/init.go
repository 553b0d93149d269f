package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/folio-app/folio"
)

// initCmd holds the flags for the 'init' subcommand.
type initCmd struct {
	date       string
	currency   string
	ledgerFile string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "declare the reporting currency of the ledger" }
func (*initCmd) Usage() string {
	return `fo init -c <currency> [-d <date>] [-l <ledger>]

  Declares the reporting currency of the ledger. Reports default to this
  currency, and so do cash flows recorded without one.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the declaration. Defaults to today.")
	f.StringVar(&c.currency, "c", "USD", "Reporting currency code (ISO 4217).")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to edit. Defaults to the only ledger if one exists.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, status := parseDateFlag(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}
	return appendAndSave(c.ledgerFile, folio.NewInit(on, c.currency))
}
