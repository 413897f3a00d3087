package ledger

import "errors"

// Domain errors returned by account operations and by the engine's state
// machine. All of them are non-terminal: the worker drops the offending
// record and keeps draining its queue.
var (
	// ErrInsufficientFunds indicates a debit or hold release larger than the
	// relevant balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrTxNotFound indicates a dispute, resolve, or chargeback referencing a
	// transaction id absent from the account's history.
	ErrTxNotFound = errors.New("transaction not found")

	// ErrTxAlreadyDisputed indicates a dispute against a transaction whose
	// dispute flag is already set.
	ErrTxAlreadyDisputed = errors.New("transaction already disputed")

	// ErrTxNotDisputed indicates a resolve or chargeback against a
	// transaction whose dispute flag was never set.
	ErrTxNotDisputed = errors.New("transaction not disputed")

	// ErrUnsupportedEntry indicates an entry type the state machine does not
	// handle. Unreachable as long as the parser rejects unknown keywords.
	ErrUnsupportedEntry = errors.New("operation not supported")
)
