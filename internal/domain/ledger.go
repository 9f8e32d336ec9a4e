package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one transaction posted into a party's ledger, carrying the
// running balance after the posting and the Dr/Cr label for that balance.
type LedgerEntry struct {
	Transaction

	Balance     decimal.Decimal
	BalanceSide BalanceSide
}

// AccountLedger is the derived double-entry ledger for a single party. It is
// a recomputed view, never stored: every derivation rebuilds it from the
// transaction list.
type AccountLedger struct {
	AccountName        string
	AccountType        AccountType
	Entries            []LedgerEntry
	OpeningBalance     decimal.Decimal
	ClosingBalance     decimal.Decimal
	ClosingBalanceSide BalanceSide
	TotalDebit         decimal.Decimal
	TotalCredit        decimal.Decimal
}

// DeriveLedgers partitions transactions by party and builds one ledger per
// party, in order of first appearance. Within each ledger, entries are
// sorted by date ascending (string comparison, stable for equal dates) and
// the running balance accumulates under the double-entry sign convention:
// debit-natured accounts (Asset, Expense) move by debit minus credit,
// credit-natured accounts (Liability, Income, Equity) by credit minus debit.
//
// Each entry's step follows its own account type, while the ledger's closing
// Dr/Cr label follows the first transaction's account type. Parties are
// expected to carry a single consistent account type; for mixed-type input
// the two deliberately diverge rather than guessing a correction.
//
// The function is pure: it never mutates its input and the same input always
// produces the same output. The only error is an unrecognized account type.
func DeriveLedgers(transactions []Transaction) ([]*AccountLedger, error) {
	parties := make([]string, 0)
	byParty := make(map[string][]Transaction)

	for _, tx := range transactions {
		if !tx.AccountType.Valid() {
			_, err := tx.AccountType.Nature()
			return nil, err
		}
		if _, seen := byParty[tx.Party]; !seen {
			parties = append(parties, tx.Party)
		}
		byParty[tx.Party] = append(byParty[tx.Party], tx)
	}

	ledgers := make([]*AccountLedger, 0, len(parties))
	for _, party := range parties {
		ledgers = append(ledgers, deriveLedger(party, byParty[party]))
	}

	return ledgers, nil
}

// deriveLedger builds one party's ledger. txs is non-empty and all account
// types have been validated.
func deriveLedger(party string, txs []Transaction) *AccountLedger {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, tx := range txs {
		totalDebit = totalDebit.Add(tx.Debit)
		totalCredit = totalCredit.Add(tx.Credit)
	}

	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	ledgerNature, _ := txs[0].AccountType.Nature()

	balance := decimal.Zero
	entries := make([]LedgerEntry, 0, len(sorted))
	for _, tx := range sorted {
		nature, _ := tx.AccountType.Nature()
		if nature == DebitNature {
			balance = balance.Add(tx.Debit).Sub(tx.Credit)
		} else {
			balance = balance.Add(tx.Credit).Sub(tx.Debit)
		}

		entries = append(entries, LedgerEntry{
			Transaction: tx,
			Balance:     balance,
			BalanceSide: nature.Side(balance.IsNegative()),
		})
	}

	return &AccountLedger{
		AccountName:        party,
		AccountType:        txs[0].AccountType,
		Entries:            entries,
		OpeningBalance:     decimal.Zero,
		ClosingBalance:     balance,
		ClosingBalanceSide: ledgerNature.Side(balance.IsNegative()),
		TotalDebit:         totalDebit,
		TotalCredit:        totalCredit,
	}
}
