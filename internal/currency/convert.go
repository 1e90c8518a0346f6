// Package currency implements display-time conversion of USD-denominated
// amounts. Conversion never mutates stored values and never fails: missing
// rates degrade to a marked USD fallback string.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apperrors "github.com/codeby-aftab/trip-ai-backend/errors"
	"github.com/codeby-aftab/trip-ai-backend/types"
)

// printer renders whole amounts with digit grouping. The locale is fixed so
// Format stays deterministic regardless of host settings.
var printer = message.NewPrinter(language.English)

// Format converts a USD amount into a display string for the target
// currency. Rules, in order:
//  1. rates absent or target is USD: the raw amount with the target's symbol.
//  2. target missing from the table: the raw amount with a "(USD)" marker.
//  3. otherwise amount * rate with the target's symbol.
//
// Amounts are rounded to whole units, half away from zero; fractional cents
// are never displayed. Pure and deterministic for identical inputs.
func Format(amountUSD float64, target string, rates types.RateTable) string {
	symbol := types.CurrencySymbol(target)

	if rates == nil || target == "USD" {
		return symbol + formatWhole(amountUSD)
	}

	rate, ok := rates[target]
	if !ok {
		return fmt.Sprintf("$%s (USD)", formatWhole(amountUSD))
	}

	return symbol + formatWhole(amountUSD*rate)
}

// ToUSD converts an amount denominated in code back into USD using the rate
// table. Used when the caller supplies a budget in a non-USD currency.
func ToUSD(amount float64, code string, rates types.RateTable) (float64, error) {
	if code == "USD" {
		return amount, nil
	}
	if rates == nil {
		return 0, apperrors.ValidationFailed(
			"Exchange rates not loaded",
			fmt.Sprintf("cannot convert budget from %s", code),
		)
	}

	rate, ok := rates[code]
	if !ok || rate <= 0 {
		return 0, apperrors.ValidationFailed(
			"Unknown budget currency",
			fmt.Sprintf("could not find exchange rate for %s", code),
		)
	}

	return amount / rate, nil
}

func formatWhole(v float64) string {
	return printer.Sprintf("%d", decimal.NewFromFloat(v).Round(0).IntPart())
}
