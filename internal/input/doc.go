// Package input turns a delimited input stream into typed ledger entries.
//
// A Source validates the mandatory header line on construction and then
// yields one entry per line, lazily and forward-only. The first malformed
// line terminates the sequence: subsequent lines, valid or not, are never
// delivered. This mirrors the historical behavior of the processor and is
// pinned by tests; see the package tests before changing it.
package input
