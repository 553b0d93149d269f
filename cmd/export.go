package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/folio-app/folio"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	ledgerFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all value records as CSV" }
func (*exportCmd) Usage() string {
	return `fo export [-l <ledger>]

  Writes every value record of the ledger to stdout as CSV with columns
  date,asset,amount, in chronological order. The output round-trips
  through 'fo import'.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to export. Defaults to the only ledger if one exists.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := folio.ExportValues(os.Stdout, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
