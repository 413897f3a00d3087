package input

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/iulianbarbu/transaction-processor/internal/ledger"
)

// header is the mandatory first line of every input file, line terminator
// excluded.
const header = "type,client,tx,amount"

// minFields is the field count shared by every record type; deposits and
// withdrawals additionally carry an amount field.
const minFields = 3

// Source yields typed ledger entries from a delimited input stream, one line
// at a time. It is not safe for concurrent use; the router is its only
// consumer.
type Source struct {
	reader *bufio.Reader
	closer io.Closer
	line   int
	failed bool
}

// Open opens the file at path and validates its header line.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := NewSource(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	src.closer = file

	return src, nil
}

// NewSource wraps r and consumes its header line. It fails with ErrBadHeader
// unless the first line is exactly the literal header followed by `\n`.
func NewSource(r io.Reader) (*Source, error) {
	reader := bufio.NewReader(r)

	first, err := reader.ReadString('\n')
	if err != nil || first != header+"\n" {
		return nil, ErrBadHeader
	}

	return &Source{reader: reader, line: 1}, nil
}

// Close releases the underlying file, if any.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}

// Next returns the next entry. It returns io.EOF once the stream is
// exhausted and a *ParseError for a malformed line. After a parse error the
// source is terminated: every subsequent call returns io.EOF and the
// remaining lines are never read.
func (s *Source) Next() (ledger.Entry, error) {
	if s.failed {
		return ledger.Entry{}, io.EOF
	}

	raw, err := s.reader.ReadString('\n')
	if err != nil && raw == "" {
		return ledger.Entry{}, io.EOF
	}

	s.line++

	entry, perr := s.parseLine(strings.TrimSuffix(raw, "\n"))
	if perr != nil {
		s.failed = true
		return ledger.Entry{}, perr
	}

	return entry, nil
}

// parseLine converts one comma-separated record line into an entry.
func (s *Source) parseLine(line string) (ledger.Entry, *ParseError) {
	fields := strings.Split(line, ",")
	if line == "" || len(fields) < minFields {
		return ledger.Entry{}, newParseError(s.line, "expected at least %d fields, got %q", minFields, line)
	}

	entryType, ok := ledger.ParseEntryType(fields[0])
	if !ok {
		return ledger.Entry{}, newParseError(s.line, "unknown transaction type %q", fields[0])
	}

	accountID, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return ledger.Entry{}, newParseError(s.line, "invalid client id %q", fields[1])
	}

	txID, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return ledger.Entry{}, newParseError(s.line, "invalid transaction id %q", fields[2])
	}

	entry := ledger.Entry{
		Type:      entryType,
		AccountID: uint16(accountID),
		TxID:      uint32(txID),
	}

	// Dispute, resolve, and chargeback reference an amount stored in the
	// account's history; a fourth field on those lines is tolerated and its
	// value ignored.
	if entryType != ledger.EntryDeposit && entryType != ledger.EntryWithdrawal {
		return entry, nil
	}

	if len(fields) < minFields+1 {
		return ledger.Entry{}, newParseError(s.line, "%s requires an amount field", entryType)
	}

	amount, err := strconv.ParseFloat(fields[3], 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ledger.Entry{}, newParseError(s.line, "invalid amount %q", fields[3])
	}

	entry.Amount = amount

	return entry, nil
}
