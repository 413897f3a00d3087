package engine

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/iulianbarbu/transaction-processor/internal/ledger"
)

// Source is the record sequence consumed by the router. Next returns io.EOF
// once the sequence is exhausted; any other error terminates ingestion.
type Source interface {
	Next() (ledger.Entry, error)
}

// Router fans records out to one worker per account key and collects the
// final snapshots. It is single-use: call Process exactly once.
type Router struct {
	cfg     Config
	logger  *zap.Logger
	workers map[uint16]*Worker

	// order remembers the sequence in which account keys were first seen;
	// the report is emitted in this order.
	order []uint16
}

// NewRouter returns a router with the given configuration.
func NewRouter(cfg Config) *Router {
	cfg = cfg.withDefaults()

	return &Router{
		cfg:     cfg,
		logger:  cfg.Logger,
		workers: make(map[uint16]*Worker),
	}
}

// Process drains the source, dispatching each record to its account's
// worker, then closes every queue and waits for every worker to terminate.
// Results are returned in first-seen-account order.
//
// Ingestion stops at the first source error. io.EOF is the normal end; a
// parse failure is logged and likewise ends the run, leaving the records
// behind it undelivered.
func (r *Router) Process(src Source) []Result {
	for {
		entry, err := src.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.logger.Warn("ingestion terminated", zap.Error(err))
			}

			break
		}

		r.dispatch(entry)
	}

	for _, worker := range r.workers {
		worker.close()
	}

	results := make([]Result, 0, len(r.order))
	for _, accountID := range r.order {
		results = append(results, r.workers[accountID].wait())
	}

	return results
}

// dispatch enqueues the entry on its account's worker, spawning the worker
// on first sight of the account key. A rejected enqueue means the worker has
// already terminated; the record is dropped silently and the snapshot
// captured at termination stands.
func (r *Router) dispatch(entry ledger.Entry) {
	worker, ok := r.workers[entry.AccountID]
	if !ok {
		worker = newWorker(entry.AccountID, r.cfg)
		r.workers[entry.AccountID] = worker
		r.order = append(r.order, entry.AccountID)

		go worker.run()
	}

	if worker.Enqueue(entry) == EnqueueRejected {
		r.logger.Debug("record dropped, account terminated",
			zap.Uint16("client", entry.AccountID),
			zap.Uint32("tx", entry.TxID),
			zap.String("type", entry.Type.String()),
		)
	}
}
