// Package simfolio simulates a portfolio of randomly selected stocks and
// reports fictitious profits between two dates.
//
// Nothing here is market data. A [Portfolio] holds between one and eight
// distinct tickers drawn from a fixed [Catalog], and every valuation asks a
// [Pricer] for a fresh price per stock, so two valuations of the same
// portfolio are independent draws. The dates given to the reporting
// operations are validated as yyyy-mm-dd and, for the annualized report, used
// to compute the elapsed number of years; they never select a price.
//
// The core operations are:
//   - [Portfolio.ProfitBetween] prints the cumulative profit between two dates.
//   - [Portfolio.ProfitAnnualized] prints the cumulative and the annualized profit.
//   - [Portfolio.Report] returns the same figures, per holding, as a value.
//
// Randomness is injectable: use [WithRand] with a generator from [NewRand] to
// get reproducible runs, or [WithPricer] to script prices entirely.
//
// A Portfolio is owned by its creator and is not safe for concurrent use.
//
// This package serves as the foundational logic for the `sim` command-line
// tool.
package simfolio
