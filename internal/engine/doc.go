// Package engine routes ledger entries to one serialized worker per account
// and runs the dispute state machine inside each worker.
//
// The Router is the single consumer of the record source. For every entry it
// looks up (or lazily creates) the worker owning the entry's account key and
// enqueues the entry on that worker's bounded queue. Each worker drains its
// queue strictly in arrival order, so records for one account are applied in
// input order while records for different accounts interleave freely; because
// an account is only ever touched by its own worker, results are independent
// of the interleaving.
//
// A worker terminates when its account becomes locked by a chargeback or when
// its queue is closed after the input is exhausted. Both paths yield the
// account's final snapshot, tagged with the termination reason. Enqueueing to
// a terminated worker is a best-effort silent drop: the router observes the
// rejection and discards the record.
package engine
