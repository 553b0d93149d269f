package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/folio-app/folio"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file       string
	ledgerFile string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import value records from a CSV file" }
func (*importCmd) Usage() string {
	return `fo import [-f <file>] [-l <ledger>]

  Imports value records from a CSV file with columns date,asset,amount
  (a header row is detected and skipped). Reads stdin when no file is
  given. Every referenced asset must already be declared; a failed import
  leaves the ledger unchanged.

Usage Examples:
$ fo import -f backfill.csv
$ fo export | fo -folio-path /tmp/copy import
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "CSV file to import. Defaults to stdin.")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to edit. Defaults to the only ledger if one exists.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := os.Stdin
	if c.file != "" {
		var err error
		if in, err = os.Open(c.file); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer in.Close()
	}

	ledger, err := loadLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	n, err := folio.ImportValues(ledger, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Imported %d value records into ledger %q.\n", n, ledger.Name())
	return subcommands.ExitSuccess
}
