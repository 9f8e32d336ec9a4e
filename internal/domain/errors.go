package domain

import "errors"

var (
	// Derivation errors
	ErrUnknownAccountType = errors.New("unknown account type")
	ErrLedgerNotFound     = errors.New("ledger not found")

	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNegativeAmount      = errors.New("debit and credit amounts must be non-negative")
	ErrInvalidDate         = errors.New("date must be in YYYY-MM-DD format")
	ErrEmptyParty          = errors.New("party name cannot be empty")
)
