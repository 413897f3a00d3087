package ledger

// Account is the balance state of one client. It is owned exclusively by the
// worker processing that client's records; nothing else reads or writes it
// while the worker is alive.
type Account struct {
	ID        uint16
	Available float64
	Held      float64
	Locked    bool
}

// NewAccount returns an unlocked account with zero balances.
func NewAccount(id uint16) *Account {
	return &Account{ID: id}
}

// Total returns the sum of available and held funds.
func (a *Account) Total() float64 {
	return a.Available + a.Held
}

// Credit adds amount to the available balance. It cannot fail.
func (a *Account) Credit(amount float64) {
	a.Available += amount
}

// Debit removes amount from the available balance. It fails with
// ErrInsufficientFunds when the available balance is strictly lower than
// amount, leaving the account unchanged.
func (a *Account) Debit(amount float64) error {
	if a.Available < amount {
		return ErrInsufficientFunds
	}

	a.Available -= amount

	return nil
}

// Hold adds amount to the held balance. It cannot fail.
func (a *Account) Hold(amount float64) {
	a.Held += amount
}

// ReleaseHold removes amount from the held balance. It fails with
// ErrInsufficientFunds when the held balance is strictly lower than amount,
// leaving the account unchanged.
func (a *Account) ReleaseHold(amount float64) error {
	if a.Held < amount {
		return ErrInsufficientFunds
	}

	a.Held -= amount

	return nil
}

// Snapshot returns the immutable view of the account reported at the end of
// a run.
func (a *Account) Snapshot() Snapshot {
	return Snapshot{
		ID:        a.ID,
		Available: a.Available,
		Held:      a.Held,
		Total:     a.Total(),
		Locked:    a.Locked,
	}
}

// Snapshot is the final state of an account. Total is denormalized so the
// report does not recompute it.
type Snapshot struct {
	ID        uint16
	Available float64
	Held      float64
	Total     float64
	Locked    bool
}
