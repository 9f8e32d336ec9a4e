package dto

import (
	"github.com/shopspring/decimal"

	"github.com/anikdas/ledgerbook/internal/domain"
)

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Particulars string          `json:"particulars"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Party       string          `json:"party"`
	AccountType string          `json:"account_type"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		Date:        t.Date,
		Particulars: t.Particulars,
		Debit:       t.Debit,
		Credit:      t.Credit,
		Party:       t.Party,
		AccountType: string(t.AccountType),
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txs []domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txs))
	for i := range txs {
		result[i] = TransactionFromDomain(&txs[i])
	}
	return result
}

// ListTransactionsResponse wraps the transaction list.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// RecordedTransactionsResponse wraps newly recorded transactions.
type RecordedTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// LedgerEntryResponse represents one posted ledger entry.
type LedgerEntryResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Particulars string          `json:"particulars"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
	BalanceType string          `json:"balance_type"`
}

// AccountLedgerResponse represents one party's derived ledger.
type AccountLedgerResponse struct {
	AccountName        string                 `json:"account_name"`
	AccountType        string                 `json:"account_type"`
	Entries            []*LedgerEntryResponse `json:"entries"`
	OpeningBalance     decimal.Decimal        `json:"opening_balance"`
	ClosingBalance     decimal.Decimal        `json:"closing_balance"`
	ClosingBalanceType string                 `json:"closing_balance_type"`
	TotalDebit         decimal.Decimal        `json:"total_debit"`
	TotalCredit        decimal.Decimal        `json:"total_credit"`
}

// LedgerFromDomain converts a derived ledger to a response.
func LedgerFromDomain(l *domain.AccountLedger) *AccountLedgerResponse {
	entries := make([]*LedgerEntryResponse, len(l.Entries))
	for i, e := range l.Entries {
		entries[i] = &LedgerEntryResponse{
			ID:          e.ID,
			Date:        e.Date,
			Particulars: e.Particulars,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Balance:     e.Balance,
			BalanceType: string(e.BalanceSide),
		}
	}

	return &AccountLedgerResponse{
		AccountName:        l.AccountName,
		AccountType:        string(l.AccountType),
		Entries:            entries,
		OpeningBalance:     l.OpeningBalance,
		ClosingBalance:     l.ClosingBalance,
		ClosingBalanceType: string(l.ClosingBalanceSide),
		TotalDebit:         l.TotalDebit,
		TotalCredit:        l.TotalCredit,
	}
}

// LedgersFromDomain converts derived ledgers to responses.
func LedgersFromDomain(ledgers []*domain.AccountLedger) []*AccountLedgerResponse {
	result := make([]*AccountLedgerResponse, len(ledgers))
	for i, l := range ledgers {
		result[i] = LedgerFromDomain(l)
	}
	return result
}

// ListLedgersResponse wraps the derived ledgers.
type ListLedgersResponse struct {
	Ledgers []*AccountLedgerResponse `json:"ledgers"`
	Total   int64                    `json:"total"`
}

// TopSheetRowResponse represents one trial-balance row.
type TopSheetRowResponse struct {
	AccountName        string          `json:"account_name"`
	AccountType        string          `json:"account_type"`
	ClosingBalance     decimal.Decimal `json:"closing_balance"`
	ClosingBalanceType string          `json:"closing_balance_type"`
	TotalDebit         decimal.Decimal `json:"total_debit"`
	TotalCredit        decimal.Decimal `json:"total_credit"`
}

// TopSheetResponse represents the trial-balance summary.
type TopSheetResponse struct {
	Rows        []*TopSheetRowResponse `json:"rows"`
	TotalDebit  decimal.Decimal        `json:"total_debit"`
	TotalCredit decimal.Decimal        `json:"total_credit"`
}

// TopSheetFromDomain converts a top sheet to a response.
func TopSheetFromDomain(s *domain.TopSheet) *TopSheetResponse {
	rows := make([]*TopSheetRowResponse, len(s.Rows))
	for i, r := range s.Rows {
		rows[i] = &TopSheetRowResponse{
			AccountName:        r.AccountName,
			AccountType:        string(r.AccountType),
			ClosingBalance:     r.ClosingBalance,
			ClosingBalanceType: string(r.ClosingBalanceSide),
			TotalDebit:         r.TotalDebit,
			TotalCredit:        r.TotalCredit,
		}
	}

	return &TopSheetResponse{
		Rows:        rows,
		TotalDebit:  s.TotalDebit,
		TotalCredit: s.TotalCredit,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
