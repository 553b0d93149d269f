package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/folio-app/folio"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct {
	ledgerFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fo fmt [-l <ledger>]

  Validates and formats ledger files. Entries are re-validated, sorted by
  date, and written back in a canonical JSONL form with a stable field
  order, so formatted ledgers diff and merge cleanly. By default every
  ledger in the folio path is formatted in-place; use -l for a single one.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to format. Formats all by default.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledgers, err := folio.FindLedgers(FolioPath(), c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledgers: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(ledgers) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no ledgers found to format.")
		return subcommands.ExitSuccess
	}

	for _, ledger := range ledgers {
		// decoding already validated and sorted; saving canonicalizes
		if err := saveLedger(ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving formatted ledger %q: %v\n", ledger.Name(), err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Formatted ledger %q.\n", ledger.Name())
	}
	return subcommands.ExitSuccess
}
