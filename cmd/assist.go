package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/folio-app/folio/agent"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	offline    bool
	ledgerFile string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an AI assistant about the portfolio" }
func (*assistCmd) Usage() string {
	return `fo assist [-offline] [-l <ledger>] [<initial prompt>]

  Starts an interactive chat session with an AI assistant that has direct
  access to the ledger. It can value the portfolio, explain its
  performance and suggest rebalancing moves, and research the funds and
  companies held. Requires the GEMINI_API_KEY environment variable.

Usage Examples:
$ fo assist
$ fo assist "how did my portfolio do this year?"
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Skip fetching exchange rates.")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to assist on. Defaults to the only ledger if one exists.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	rates := fetchRates(ledger, c.offline)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating AI client: %v\n", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin,
		agent.NewResearcher(),
		agent.NewAnalyst(ledger, rates),
	)

	var prompts []string
	if initial := strings.TrimSpace(strings.Join(f.Args(), " ")); initial != "" {
		prompts = append(prompts, initial)
	}

	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
