package domain

import "fmt"

// AccountType is the fundamental accounting classification of a transaction's
// counterparty. It determines the sign convention used when accumulating the
// running balance.
type AccountType string

const (
	Asset     AccountType = "Asset"
	Liability AccountType = "Liability"
	Income    AccountType = "Income"
	Expense   AccountType = "Expense"
	Equity    AccountType = "Equity"
)

// BalanceNature is the side on which an account's normal positive balance
// sits.
type BalanceNature int

const (
	DebitNature BalanceNature = iota
	CreditNature
)

// BalanceSide is the human-readable Dr/Cr label attached to a balance.
type BalanceSide string

const (
	Dr BalanceSide = "Dr"
	Cr BalanceSide = "Cr"
)

// Nature classifies the account type's normal balance side. It is explicit
// over all five account types; anything else is rejected rather than
// silently treated as credit-natured.
func (t AccountType) Nature() (BalanceNature, error) {
	switch t {
	case Asset, Expense:
		return DebitNature, nil
	case Liability, Income, Equity:
		return CreditNature, nil
	default:
		return CreditNature, fmt.Errorf("%w: %q", ErrUnknownAccountType, string(t))
	}
}

// Valid reports whether t is one of the five recognized account types.
func (t AccountType) Valid() bool {
	_, err := t.Nature()
	return err == nil
}

// Side converts a balance nature into its Dr/Cr label, flipping the label
// when the balance has gone negative. A negative balance on a debit-natured
// account displays as Cr, and vice versa.
func (n BalanceNature) Side(negative bool) BalanceSide {
	if (n == DebitNature) != negative {
		return Dr
	}
	return Cr
}
