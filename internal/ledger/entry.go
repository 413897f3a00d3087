package ledger

// EntryType identifies the operation carried by one input record.
type EntryType uint8

const (
	EntryDeposit EntryType = iota
	EntryWithdrawal
	EntryDispute
	EntryResolve
	EntryChargeback
)

// entryTypeKeywords maps input keywords to entry types. Matching is
// case-sensitive: `Dispute` is not a valid keyword.
var entryTypeKeywords = map[string]EntryType{
	"deposit":    EntryDeposit,
	"withdrawal": EntryWithdrawal,
	"dispute":    EntryDispute,
	"resolve":    EntryResolve,
	"chargeback": EntryChargeback,
}

// ParseEntryType converts an input keyword into an EntryType. The boolean
// reports whether the keyword is known.
func ParseEntryType(keyword string) (EntryType, bool) {
	t, ok := entryTypeKeywords[keyword]
	return t, ok
}

// String returns the input keyword for the entry type.
func (t EntryType) String() string {
	switch t {
	case EntryDeposit:
		return "deposit"
	case EntryWithdrawal:
		return "withdrawal"
	case EntryDispute:
		return "dispute"
	case EntryResolve:
		return "resolve"
	case EntryChargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// DisputeFlag tracks the dispute lifecycle of a transaction stored in an
// account's history. It is a tagged value rather than independent booleans so
// that at most one state holds at a time.
type DisputeFlag uint8

const (
	// FlagNone marks a transaction that was never disputed, or whose history
	// of disputes the engine does not track beyond the latest state.
	FlagNone DisputeFlag = iota
	// FlagDisputed marks a transaction under active dispute; its amount is
	// held.
	FlagDisputed
	// FlagResolved marks a transaction whose dispute was resolved; its amount
	// is available again.
	FlagResolved
	// FlagChargedBack marks a transaction whose dispute ended in a
	// chargeback; its amount left the account and the account is locked.
	FlagChargedBack
)

// String returns a human-readable name for the flag.
func (f DisputeFlag) String() string {
	switch f {
	case FlagNone:
		return "none"
	case FlagDisputed:
		return "disputed"
	case FlagResolved:
		return "resolved"
	case FlagChargedBack:
		return "charged_back"
	default:
		return "unknown"
	}
}

// Entry is the typed form of one input record. Type, AccountID, TxID, and
// Amount are immutable once parsed; Flag mutates as the dispute lifecycle of
// a deposit or withdrawal progresses.
//
// Amount is meaningful only for deposits and withdrawals; the parser
// guarantees it is present there and leaves it zero elsewhere.
type Entry struct {
	Type      EntryType
	AccountID uint16
	TxID      uint32
	Amount    float64
	Flag      DisputeFlag
}
