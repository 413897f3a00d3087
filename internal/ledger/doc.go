// Package ledger defines the account entity, the transaction record, and the
// domain errors of the payments engine.
//
// An Account tracks available and held funds and enforces the non-negative
// balance invariant: any debit or hold release that would drive a balance
// below zero fails without mutating state. Entries are the typed form of one
// input record; deposits and withdrawals carry an amount and a mutable
// dispute flag that tracks the dispute lifecycle of that transaction.
package ledger
