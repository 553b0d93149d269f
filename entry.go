package folio

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType is a typed string identifying ledger entry commands.
type EntryType string

// Command types used for identifying entries in the ledger file.
const (
	CmdInit            EntryType = "init"
	CmdDeclareAsset    EntryType = "declare-asset"
	CmdDeclareCategory EntryType = "declare-category"
	CmdValue           EntryType = "value"
	CmdFlow            EntryType = "flow"
)

// Entry defines the common interface for all records in the ledger.
type Entry interface {
	What() EntryType // What returns the command type of the entry.
	When() Date      // When returns the snapshot date the entry belongs to.
	Equal(Entry) bool
}

type baseEntry struct {
	Command EntryType `json:"command"`        // Command specifies the type of entry.
	Date    Date      `json:"date"`           // Date is the snapshot date of the entry.
	Memo    string    `json:"memo,omitempty"` // Memo provides an optional note.
}

func (e baseEntry) What() EntryType { return e.Command }
func (e baseEntry) When() Date      { return e.Date }

// MarshalJSON implements the json.Marshaler interface for baseEntry.
func (e baseEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", e.Command)
	w.Append("date", e.Date)
	w.Optional("memo", e.Memo)
	return w.MarshalJSON()
}

// Init declares the ledger's reporting currency.
type Init struct {
	baseEntry
	Currency string `json:"currency"`
}

// NewInit creates an Init entry. A zero date defaults to today on validation.
func NewInit(on Date, currency string) Init {
	return Init{baseEntry{CmdInit, on, ""}, currency}
}

func (e Init) Equal(other Entry) bool {
	o, ok := other.(Init)
	return ok && e.Date == o.Date && e.Currency == o.Currency
}

func (e Init) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEntry)
	w.Append("currency", e.Currency)
	return w.MarshalJSON()
}

// DeclareAsset introduces an asset held on a platform. The symbol is the
// stable human key used by value records; the ID is an opaque stable
// identifier surviving renames.
type DeclareAsset struct {
	baseEntry
	ID       uuid.UUID `json:"id"`
	Symbol   string    `json:"symbol"`
	Name     string    `json:"name,omitempty"`
	Platform string    `json:"platform,omitempty"` // free-text broker or exchange label
	Currency string    `json:"currency"`
	Category string    `json:"category,omitempty"`
}

// NewDeclareAsset creates a DeclareAsset entry with a fresh identifier.
func NewDeclareAsset(on Date, symbol, name, platform, currency, category string) DeclareAsset {
	return DeclareAsset{
		baseEntry: baseEntry{CmdDeclareAsset, on, ""},
		ID:        uuid.New(),
		Symbol:    symbol,
		Name:      name,
		Platform:  platform,
		Currency:  currency,
		Category:  category,
	}
}

func (e DeclareAsset) Equal(other Entry) bool {
	o, ok := other.(DeclareAsset)
	return ok && e.Date == o.Date && e.ID == o.ID && e.Symbol == o.Symbol &&
		e.Name == o.Name && e.Platform == o.Platform &&
		e.Currency == o.Currency && e.Category == o.Category
}

func (e DeclareAsset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEntry)
	w.Append("id", e.ID)
	w.Append("symbol", e.Symbol)
	w.Optional("name", e.Name)
	w.Optional("platform", e.Platform)
	w.Append("currency", e.Currency)
	w.Optional("category", e.Category)
	return w.MarshalJSON()
}

// DeclareCategory introduces an allocation category. Target is the desired
// share of the total portfolio in percent; nil means the category is tracked
// but never receives rebalancing suggestions.
type DeclareCategory struct {
	baseEntry
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Target *Percent  `json:"target,omitempty"`
	Order  int       `json:"order,omitempty"` // display order
}

// NewDeclareCategory creates a DeclareCategory entry with a fresh identifier.
func NewDeclareCategory(on Date, name string, target *Percent, order int) DeclareCategory {
	return DeclareCategory{
		baseEntry: baseEntry{CmdDeclareCategory, on, ""},
		ID:        uuid.New(),
		Name:      name,
		Target:    target,
		Order:     order,
	}
}

func (e DeclareCategory) Equal(other Entry) bool {
	o, ok := other.(DeclareCategory)
	if !ok || e.Date != o.Date || e.ID != o.ID || e.Name != o.Name || e.Order != o.Order {
		return false
	}
	if (e.Target == nil) != (o.Target == nil) {
		return false
	}
	return e.Target == nil || e.Target.Equal(*o.Target)
}

func (e DeclareCategory) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEntry)
	w.Append("id", e.ID)
	w.Append("name", e.Name)
	if e.Target != nil {
		w.Append("target", float64(*e.Target))
	}
	w.Optional("order", e.Order)
	return w.MarshalJSON()
}

// Value records the market value of an asset on the entry's date, denominated
// in the asset's currency at read time. Absence of a Value for an asset in a
// snapshot means "unchanged", never "zero".
type Value struct {
	baseEntry
	Asset  string          `json:"asset"`
	Amount decimal.Decimal `json:"amount"`
}

// NewValue creates a Value entry for the given asset symbol.
func NewValue(on Date, symbol string, amount decimal.Decimal) Value {
	return Value{baseEntry{CmdValue, on, ""}, symbol, amount}
}

func (e Value) Equal(other Entry) bool {
	o, ok := other.(Value)
	return ok && e.Date == o.Date && e.Asset == o.Asset && e.Amount.Equal(o.Amount)
}

func (e Value) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEntry)
	w.Append("asset", e.Asset)
	w.Append("amount", e.Amount)
	return w.MarshalJSON()
}

// Flow records an external cash flow: positive amounts are deposits into the
// portfolio, negative amounts are withdrawals. Flows are currency-tagged
// independently of any asset and are excluded from organic performance.
type Flow struct {
	baseEntry
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// NewFlow creates a Flow entry.
func NewFlow(on Date, memo string, amount decimal.Decimal, currency string) Flow {
	return Flow{baseEntry{CmdFlow, on, memo}, amount, currency}
}

// Money returns the flow amount as Money.
func (e Flow) Money() Money { return M(e.Amount, e.Currency) }

func (e Flow) Equal(other Entry) bool {
	o, ok := other.(Flow)
	return ok && e.Date == o.Date && e.Memo == o.Memo &&
		e.Amount.Equal(o.Amount) && e.Currency == o.Currency
}

func (e Flow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEntry)
	w.Append("amount", e.Amount)
	w.Append("currency", e.Currency)
	return w.MarshalJSON()
}
