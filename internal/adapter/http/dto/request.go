package dto

import (
	"github.com/shopspring/decimal"

	"github.com/anikdas/ledgerbook/internal/domain"
	"github.com/anikdas/ledgerbook/internal/usecase"
)

// RecordTransactionRequest represents a request to record a transaction.
type RecordTransactionRequest struct {
	Date        string          `json:"date"`
	Particulars string          `json:"particulars"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Party       string          `json:"party"`
	AccountType string          `json:"account_type"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordTransactionRequest) ToUseCaseInput() usecase.RecordTransactionInput {
	return usecase.RecordTransactionInput{
		Date:        r.Date,
		Particulars: r.Particulars,
		Debit:       r.Debit,
		Credit:      r.Credit,
		Party:       r.Party,
		AccountType: domain.AccountType(r.AccountType),
	}
}

// RecordBatchRequest represents a request to record multiple transactions.
type RecordBatchRequest struct {
	Transactions []RecordTransactionRequest `json:"transactions"`
}

// ToUseCaseInputs converts to use case inputs.
func (r *RecordBatchRequest) ToUseCaseInputs() []usecase.RecordTransactionInput {
	inputs := make([]usecase.RecordTransactionInput, len(r.Transactions))
	for i, tx := range r.Transactions {
		inputs[i] = tx.ToUseCaseInput()
	}
	return inputs
}

// ExtractRequest represents a request to extract transactions from free
// text.
type ExtractRequest struct {
	Text string `json:"text"`
}
