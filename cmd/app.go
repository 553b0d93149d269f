// Package cmd implements the CLI application to track a portfolio.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/folio-app/folio"
	"github.com/folio-app/folio/fxrates"
)

// Commands lists every subcommand; a main package registers them and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&initCmd{},
	&declareCmd{},
	&categoryCmd{},
	&valueCmd{},
	&flowCmd{},
	&valuationCmd{},
	&summaryCmd{},
	&perfCmd{},
	&rebalanceCmd{},
	&ratesCmd{},
	&importCmd{},
	&exportCmd{},
	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var folioPath = flag.String("folio-path", ".", "Path to the folio directory containing ledger files")

// FolioPath returns the directory holding the ledger files.
func FolioPath() string { return *folioPath }

// loadLedger loads the named ledger from the folio path; an empty name loads
// the only ledger, or a fresh default one in an empty directory.
func loadLedger(name string) (*folio.Ledger, error) {
	return folio.FindLedger(FolioPath(), name)
}

// saveLedger persists the ledger back to the folio path.
func saveLedger(l *folio.Ledger) error {
	return folio.SaveLedger(FolioPath(), l)
}

// fetchRates returns today's rate table based on the ledger's reporting
// currency. Rates fail open: when they cannot be fetched at all, reports
// proceed with an empty table and every amount passes through unconverted.
func fetchRates(l *folio.Ledger, offline bool) folio.RateTable {
	if offline {
		return folio.RateTable{}
	}
	table, err := fxrates.NewService().Fetch(l.ReportingCurrency())
	if err != nil {
		log.Printf("exchange rates unavailable, amounts pass through unconverted: %v", err)
		return folio.RateTable{}
	}
	return table
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseDateFlag parses a -d flag value; an empty value is the zero date,
// which entry validation defaults to today.
func parseDateFlag(value string) (folio.Date, subcommands.ExitStatus) {
	if value == "" {
		return folio.Date{}, subcommands.ExitSuccess
	}
	on, err := folio.ParseDate(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return folio.Date{}, subcommands.ExitUsageError
	}
	return on, subcommands.ExitSuccess
}

// appendAndSave validates, appends and persists entries, reporting the
// outcome on stderr the way every editing subcommand does.
func appendAndSave(ledgerName string, entries ...folio.Entry) subcommands.ExitStatus {
	ledger, err := loadLedger(ledgerName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.Append(entries...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Successfully appended to ledger %q.\n", ledger.Name())
	return subcommands.ExitSuccess
}
