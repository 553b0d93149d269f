// Package folio tracks a multi-platform, multi-currency investment portfolio
// through dated snapshots of market values, and derives valuation,
// performance, and rebalancing analytics from that history.
//
// The ledger is an append-only, chronologically sorted list of entries:
// asset and category declarations, per-asset value records, and external
// cash flows. Analytics are pure functions of the ledger content up to a
// requested date: the same date always resolves to the same valuation.
//
// Value records carry forward: an asset's last recorded value remains
// current until a newer snapshot overwrites it. Missing data degrades, it
// never fails: a missing exchange rate passes amounts through unchanged,
// and a date before any history resolves to an empty valuation.
package folio
