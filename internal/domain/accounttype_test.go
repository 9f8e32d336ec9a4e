package domain

import (
	"errors"
	"testing"
)

func TestAccountType_Nature(t *testing.T) {
	tests := []struct {
		accountType AccountType
		want        BalanceNature
		wantErr     bool
	}{
		{Asset, DebitNature, false},
		{Expense, DebitNature, false},
		{Liability, CreditNature, false},
		{Income, CreditNature, false},
		{Equity, CreditNature, false},
		{AccountType("Revenue"), CreditNature, true},
		{AccountType(""), CreditNature, true},
		{AccountType("asset"), CreditNature, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.accountType), func(t *testing.T) {
			nature, err := tt.accountType.Nature()

			if tt.wantErr {
				if !errors.Is(err, ErrUnknownAccountType) {
					t.Fatalf("expected ErrUnknownAccountType, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if nature != tt.want {
				t.Errorf("expected nature %v, got %v", tt.want, nature)
			}
		})
	}
}

func TestBalanceNature_Side(t *testing.T) {
	tests := []struct {
		name     string
		nature   BalanceNature
		negative bool
		want     BalanceSide
	}{
		{"debit-natured positive", DebitNature, false, Dr},
		{"debit-natured negative", DebitNature, true, Cr},
		{"credit-natured positive", CreditNature, false, Cr},
		{"credit-natured negative", CreditNature, true, Dr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.nature.Side(tt.negative); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
