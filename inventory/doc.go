// Package inventory tracks ingredient stock: a mapping from ingredient
// display name to the ordered collection of concrete instances currently
// held.
//
// Contract highlights:
//
//   - Add appends to the per-name collection, creating it when absent.
//   - Remove deletes the first structurally-equal match; removing an
//     instance that is not present is a defined no-op, so a second removal
//     of the same instance is idempotent. An optional miss handler
//     (WithMissHandler) surfaces the no-op for diagnostics; it must never
//     abort the caller's pass, and the Keeper never does.
//   - GenerateRandom synthesizes an ingredient (uniform kind, quantity in
//     [1,5], uniform quality), stocks it, and returns it.
//   - Report lists per-name counts, sorted by name; a count never goes
//     negative and names with zero stock are dropped from the report.
//
// Concurrency: a Keeper is NOT safe for concurrent use. It is owned by the
// single simulation run mutating it.
package inventory
