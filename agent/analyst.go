package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/folio-app/folio"
	"github.com/folio-app/folio/docs"
	"github.com/folio-app/folio/renderer"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert skills available through the Tools and ask them questions.
			They are at your service and 100% dedicated to you; they keep context of your previous questions.

			The user is here to understand his portfolio: what it is worth, how it performed,
			and whether its allocation drifted from his targets. Check the portfolio first so
			you know which assets and categories he means.

			Devise a plan of questions to the experts and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates an expert grounding answers in web search, for news
// about the funds and companies the user holds.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher,
		well aware of financial products and institutions and of the latest news
		about funds and companies. Ask the Researcher whenever you need recent or
		grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert researcher of financial institutions, companies, markets and funds.
			You leverage Google Search to ground your assertions in solid truth, you can get the
			latest news, and you know how to relate them to the user's request.
			`}}},
		},
	}
}

// NewAnalyst creates the expert in charge of the user's ledger. Its functions
// answer with the same markdown reports the CLI prints.
func NewAnalyst(ledger *folio.Ledger, rates folio.RateTable) *Expert {
	lib := []Function{
		valuationFunc(ledger, rates),
		performanceFunc(ledger, rates),
		rebalanceFunc(ledger, rates),
	}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He has direct access to the user's portfolio ledger
		and computes valuations, performance figures and rebalancing suggestions on demand.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an analyst in charge of the user's portfolio ledger.
			Use the available tools to get real figures: the portfolio valuation on a date,
			the time-weighted performance history, and the rebalancing suggestions.
			Other experts might use approximative language; figure out what they meant.
			Never invent a figure the tools did not return.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// dateSchema describes the common optional date argument.
func dateSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"date": {
				Type: genai.TypeString,
				Description: `The date on which to compute the report. Today is the default.
				Otherwise it uses a flexible format based on YYYY-MM-DD:

				` + must(docs.GetTopic("snapshots")),
			},
		},
	}
}

func valuationFunc(ledger *folio.Ledger, rates folio.RateTable) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "get_valuation",
			Description: `get_valuation values the whole portfolio on a given day: every asset at its
			most recent recorded value, converted to the display currency, with per-category totals.`,
			Parameters: dateSchema(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted valuation report with asset rows, category allocation and total.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := parseDate(args)
			if err != nil {
				return errResponse(id, "get_valuation", err)
			}
			v := ledger.Valuation(on, "", rates)
			return okResponse(id, "get_valuation", renderer.RenderValuation(renderer.NewValuationView(v)))
		},
	}
}

func performanceFunc(ledger *folio.Ledger, rates folio.RateTable) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "get_performance",
			Description: `get_performance returns the full time-weighted performance history of the
			portfolio: one row per snapshot with its period return, net external flows and the
			cumulative return, plus total and annualized figures.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted performance history table.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			r := ledger.NewPerformanceReport("", rates)
			return okResponse(id, "get_performance", renderer.RenderPerformance(renderer.NewPerformanceView(r)))
		},
	}
}

func rebalanceFunc(ledger *folio.Ledger, rates folio.RateTable) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "get_rebalance",
			Description: `get_rebalance compares the current category allocation against the declared
			targets and suggests the transfers bringing the portfolio back in line.`,
			Parameters: dateSchema(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted rebalancing report with suggestions and transfers.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := parseDate(args)
			if err != nil {
				return errResponse(id, "get_rebalance", err)
			}
			r := ledger.NewRebalanceReport(on, "", rates)
			return okResponse(id, "get_rebalance", renderer.RenderRebalance(renderer.NewRebalanceView(r)))
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

func parseDate(args map[string]any) (folio.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return folio.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return folio.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}

	on, err := folio.ParseDate(sdate)
	if err != nil {
		return folio.Today(), fmt.Errorf("argument 'date' must be a valid date, got %q: %w", sdate, err)
	}
	return on, nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
