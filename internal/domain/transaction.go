package domain

import "github.com/shopspring/decimal"

// Transaction is a single bookkeeping record supplied by a producer (manual
// entry or AI extraction). Transactions are immutable once recorded; the
// only destructive operation on the collection is a full reset.
type Transaction struct {
	ID          string
	Date        string // YYYY-MM-DD; ordering is defined by string comparison
	Particulars string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Party       string
	AccountType AccountType
}
