package order

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// MaxPriceScale is the number of decimal places a unit price may carry.
	MaxPriceScale = 4
	// MaxPriceIntegerDigits bounds a unit price below 10^15.
	MaxPriceIntegerDigits = 15
)

var (
	errPriceNotPositive = errors.New("must be greater than 0")
	errPriceTooPrecise  = fmt.Errorf("must have at most %d decimal places", MaxPriceScale)
	errPriceTooLarge    = fmt.Errorf("must be less than 10^%d", MaxPriceIntegerDigits)
)

// checkUnitPrice works on the coefficient and exponent only, so a price like
// 1e-2000000000 is rejected without expanding its digits.
func checkUnitPrice(p decimal.Decimal) error {
	if !p.IsPositive() {
		return errPriceNotPositive
	}

	digits := p.NumDigits()
	exp := int(p.Exponent())
	if digits+exp > MaxPriceIntegerDigits {
		return errPriceTooLarge
	}

	excess := -exp - MaxPriceScale
	if excess <= 0 {
		return nil
	}
	// The coefficient must end in at least excess zeros.
	if excess >= digits {
		return errPriceTooPrecise
	}
	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(excess)), nil)
	var rem big.Int
	new(big.Int).QuoRem(p.Coefficient(), divisor, &rem)
	if rem.Sign() != 0 {
		return errPriceTooPrecise
	}
	return nil
}
