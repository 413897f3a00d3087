package engine

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iulianbarbu/transaction-processor/internal/ledger"
)

// TerminationReason distinguishes why a worker stopped. The report does not
// care, but tests and callers can.
type TerminationReason uint8

const (
	// ReasonClosed means the worker's queue was closed and fully drained.
	ReasonClosed TerminationReason = iota
	// ReasonLocked means the account was locked and a further record
	// targeted it.
	ReasonLocked
)

// String returns a human-readable name for the reason.
func (r TerminationReason) String() string {
	if r == ReasonLocked {
		return "locked"
	}

	return "closed"
}

// Result is a worker's terminal outcome: the final account snapshot tagged
// with the reason the worker stopped.
type Result struct {
	Reason   TerminationReason
	Snapshot ledger.Snapshot
}

// ErrAccountTerminated is the sentinel wrapped by every TerminatedError.
var ErrAccountTerminated = errors.New("account terminated")

// TerminatedError carries a worker's final snapshot out of the state
// machine. It is the only error that stops the worker loop; every other
// failure drops the record and processing continues.
type TerminatedError struct {
	Reason   TerminationReason
	Snapshot ledger.Snapshot
}

// Error returns the formatted termination message.
func (e *TerminatedError) Error() string {
	return fmt.Sprintf("account terminated: client %d (%s)", e.Snapshot.ID, e.Reason)
}

// Unwrap returns the sentinel termination error for errors.Is.
func (e *TerminatedError) Unwrap() error {
	return ErrAccountTerminated
}

// EnqueueResult reports whether a worker accepted a record.
type EnqueueResult uint8

const (
	// EnqueueAccepted means the record entered the worker's queue.
	EnqueueAccepted EnqueueResult = iota
	// EnqueueRejected means the worker had already terminated; the record is
	// discarded without updating the worker's captured snapshot.
	EnqueueRejected
)

// Worker owns exactly one account and its transaction history. It drains its
// queue in arrival order and applies the dispute state machine to each
// record.
type Worker struct {
	queue   chan ledger.Entry
	done    chan struct{}
	account *ledger.Account
	history map[uint32]*ledger.Entry
	delay   time.Duration
	logger  *zap.Logger

	// result is written exactly once, before done is closed. Readers must
	// wait on done first.
	result Result
}

func newWorker(accountID uint16, cfg Config) *Worker {
	return &Worker{
		queue:   make(chan ledger.Entry, cfg.QueueCapacity),
		done:    make(chan struct{}),
		account: ledger.NewAccount(accountID),
		history: make(map[uint32]*ledger.Entry),
		delay:   cfg.ProcessDelay,
		logger:  cfg.Logger.With(zap.Uint16("client", accountID)),
	}
}

// Enqueue offers an entry to the worker. It blocks while the queue is full
// and the worker is alive, and reports EnqueueRejected once the worker has
// terminated. Entries still buffered when a worker terminates are discarded
// with it.
func (w *Worker) Enqueue(entry ledger.Entry) EnqueueResult {
	select {
	case <-w.done:
		return EnqueueRejected
	default:
	}

	select {
	case w.queue <- entry:
		return EnqueueAccepted
	case <-w.done:
		return EnqueueRejected
	}
}

// close signals that no further input will arrive. Only the router calls it,
// exactly once, after the record source is exhausted.
func (w *Worker) close() {
	close(w.queue)
}

// wait blocks until the worker terminates and returns its final result.
func (w *Worker) wait() Result {
	<-w.done
	return w.result
}

// run is the worker loop. It terminates either when apply reports the
// account locked or when the queue is closed and drained; both yield the
// final snapshot.
func (w *Worker) run() {
	defer close(w.done)

	for entry := range w.queue {
		if w.delay > 0 {
			time.Sleep(w.delay)
		}

		err := w.apply(entry)
		if err == nil {
			continue
		}

		var term *TerminatedError
		if errors.As(err, &term) {
			w.result = Result{Reason: term.Reason, Snapshot: term.Snapshot}
			return
		}

		w.logger.Debug("record dropped",
			zap.String("type", entry.Type.String()),
			zap.Uint32("tx", entry.TxID),
			zap.Error(err),
		)
	}

	w.result = Result{Reason: ReasonClosed, Snapshot: w.account.Snapshot()}
}

// terminated builds the terminal error for the locked precondition.
func (w *Worker) terminated() *TerminatedError {
	return &TerminatedError{Reason: ReasonLocked, Snapshot: w.account.Snapshot()}
}

// apply runs one record through the state machine.
//
// Precondition ordering is deliberate and load-bearing: deposits and
// withdrawals check the lock before touching history, while the dispute
// lifecycle operations resolve their referenced transaction and its flag
// first, so an unknown transaction against a locked account is a plain
// drop, not a termination.
func (w *Worker) apply(entry ledger.Entry) error {
	switch entry.Type {
	case ledger.EntryDeposit:
		if w.account.Locked {
			return w.terminated()
		}

		stored := entry
		w.history[entry.TxID] = &stored
		w.account.Credit(entry.Amount)

		return nil

	case ledger.EntryWithdrawal:
		if w.account.Locked {
			return w.terminated()
		}

		// The withdrawal enters history before the balance check, so an
		// overdrawing withdrawal is recorded yet moves no funds.
		stored := entry
		w.history[entry.TxID] = &stored

		return w.account.Debit(entry.Amount)

	case ledger.EntryDispute:
		prior, ok := w.history[entry.TxID]
		if !ok {
			return ledger.ErrTxNotFound
		}

		if prior.Flag != ledger.FlagNone {
			return ledger.ErrTxAlreadyDisputed
		}

		if w.account.Locked {
			return w.terminated()
		}

		if err := w.account.Debit(prior.Amount); err != nil {
			return err
		}

		prior.Flag = ledger.FlagDisputed
		w.account.Hold(prior.Amount)

		return nil

	case ledger.EntryResolve:
		prior, ok := w.history[entry.TxID]
		if !ok {
			return ledger.ErrTxNotFound
		}

		// Any non-none flag passes, not just disputed: an already resolved
		// or charged back transaction can be resolved again, moving funds
		// again. Historical behavior, kept on purpose; tests pin it.
		if prior.Flag == ledger.FlagNone {
			return ledger.ErrTxNotDisputed
		}

		if w.account.Locked {
			return w.terminated()
		}

		if err := w.account.ReleaseHold(prior.Amount); err != nil {
			return err
		}

		prior.Flag = ledger.FlagResolved
		w.account.Credit(prior.Amount)

		return nil

	case ledger.EntryChargeback:
		prior, ok := w.history[entry.TxID]
		if !ok {
			return ledger.ErrTxNotFound
		}

		// Same broad gate as resolve.
		if prior.Flag == ledger.FlagNone {
			return ledger.ErrTxNotDisputed
		}

		if w.account.Locked {
			return w.terminated()
		}

		if err := w.account.ReleaseHold(prior.Amount); err != nil {
			return err
		}

		w.account.Locked = true
		prior.Flag = ledger.FlagChargedBack

		return nil

	default:
		return ledger.ErrUnsupportedEntry
	}
}
