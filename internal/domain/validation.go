package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxPartyNameLength   = 255
	MaxParticularsLength = 1024
)

// The engine itself sorts dates by plain string comparison, so producers
// must hand it dates that compare correctly. This shape check is the
// producer-boundary guard.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateTransaction checks the producer-boundary invariants: date shape,
// non-negative amounts, non-empty party, and a recognized account type.
// The derivation engine assumes these hold and does not re-check them.
func ValidateTransaction(tx Transaction) error {
	if err := ValidateDate(tx.Date); err != nil {
		return err
	}
	if err := ValidateParty(tx.Party); err != nil {
		return err
	}
	if err := ValidateAmount(tx.Debit); err != nil {
		return fmt.Errorf("debit: %w", err)
	}
	if err := ValidateAmount(tx.Credit); err != nil {
		return fmt.Errorf("credit: %w", err)
	}
	if _, err := tx.AccountType.Nature(); err != nil {
		return err
	}
	if len(tx.Particulars) > MaxParticularsLength {
		return fmt.Errorf("particulars exceeds %d characters", MaxParticularsLength)
	}
	return nil
}

// ValidateDate validates the YYYY-MM-DD date shape.
func ValidateDate(date string) error {
	if !dateRegex.MatchString(date) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// ValidateParty validates the party name used as the grouping key.
func ValidateParty(party string) error {
	if strings.TrimSpace(party) == "" {
		return ErrEmptyParty
	}
	if len(party) > MaxPartyNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrEmptyParty, MaxPartyNameLength)
	}
	return nil
}

// ValidateAmount validates a debit or credit amount. A transaction may carry
// both sides, one, or neither; zero is fine, negative is not.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}
