// Package fees computes the platform's cut of a ticket sale. All amounts
// are integer cents, so repeated calls with the same inputs always produce
// identical results.
package fees

import (
	"strings"

	"eventpass/internal/models"
)

// CommissionPercent is the platform commission applied to every paid ticket
const CommissionPercent = 5

// Fixed fee per transaction in cents, by currency. Currencies with small
// major units carry a larger fixed component.
var fixedFees = map[string]int{
	"USD": 50,
	"EUR": 50,
	"GBP": 50,
	"KES": 3000,
	"NGN": 10000,
}

// defaultFixedFee applies to currencies missing from the table
const defaultFixedFee = 50

// Breakdown is the money split for a single ticket, in cents
type Breakdown struct {
	PlatformFee int
	PricePaid   int
	NetRevenue  int
}

// FixedFee returns the per-transaction fixed fee in cents for a currency
func FixedFee(currency string) int {
	if fee, ok := fixedFees[strings.ToUpper(currency)]; ok {
		return fee
	}
	return defaultFixedFee
}

// Compute calculates the fee split for a ticket price. Free tickets carry
// no fee. The commission is rounded half-up to the nearest cent exactly
// once; PricePaid - NetRevenue == PlatformFee holds in both fee models.
func Compute(price int, currency string, model models.FeeModel) Breakdown {
	fee := 0
	if price > 0 {
		commission := (price*CommissionPercent + 50) / 100
		fee = commission + FixedFee(currency)
	}

	if model == models.FeePassOn {
		return Breakdown{
			PlatformFee: fee,
			PricePaid:   price + fee,
			NetRevenue:  price,
		}
	}

	return Breakdown{
		PlatformFee: fee,
		PricePaid:   price,
		NetRevenue:  price - fee,
	}
}
