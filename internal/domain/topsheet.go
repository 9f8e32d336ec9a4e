package domain

import "github.com/shopspring/decimal"

// TopSheetRow summarizes one ledger's closing position for the trial
// balance view.
type TopSheetRow struct {
	AccountName        string
	AccountType        AccountType
	ClosingBalance     decimal.Decimal
	ClosingBalanceSide BalanceSide
	TotalDebit         decimal.Decimal
	TotalCredit        decimal.Decimal
}

// TopSheet aggregates closing balances across all ledgers, with the debit
// and credit columns totaled the way a trial balance lays them out.
type TopSheet struct {
	Rows        []TopSheetRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// BuildTopSheet folds derived ledgers into a trial-balance summary. Each
// ledger contributes its closing balance to the column matching its closing
// side. Ledger order is preserved.
func BuildTopSheet(ledgers []*AccountLedger) *TopSheet {
	sheet := &TopSheet{
		Rows:        make([]TopSheetRow, 0, len(ledgers)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, l := range ledgers {
		sheet.Rows = append(sheet.Rows, TopSheetRow{
			AccountName:        l.AccountName,
			AccountType:        l.AccountType,
			ClosingBalance:     l.ClosingBalance,
			ClosingBalanceSide: l.ClosingBalanceSide,
			TotalDebit:         l.TotalDebit,
			TotalCredit:        l.TotalCredit,
		})

		amount := l.ClosingBalance.Abs()
		if l.ClosingBalanceSide == Dr {
			sheet.TotalDebit = sheet.TotalDebit.Add(amount)
		} else {
			sheet.TotalCredit = sheet.TotalCredit.Add(amount)
		}
	}

	return sheet
}
