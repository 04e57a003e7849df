// Package payment provides the append-only Payment ledger entry. Entries are
// written exactly once per successful settlement and never mutated.
package payment
