// Package util holds small helpers shared by the entry forms.
package util

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/shopspring/decimal"
)

var mathExpression = regexp.MustCompile(`^[0-9+\-*/.() ]+$`)

// EvaluateAmount turns an amount entry like "12.50", "$1,200" or "19.99 * 2"
// into a value with two fractional digits. Currency formatting is stripped
// before evaluation; arithmetic goes through govaluate and the result is
// normalized via decimal to keep cent precision.
func EvaluateAmount(entry string) (string, error) {
	entry = cleanCurrency(entry)
	if entry == "" {
		return "", fmt.Errorf("empty amount")
	}

	// Plain numbers skip expression evaluation entirely
	if value, err := decimal.NewFromString(entry); err == nil {
		return value.StringFixed(2), nil
	}

	if !mathExpression.MatchString(entry) {
		return "", fmt.Errorf("invalid amount: contains non-numeric characters")
	}

	expression, err := govaluate.NewEvaluableExpression(entry)
	if err != nil {
		return "", fmt.Errorf("invalid expression: %w", err)
	}
	result, err := expression.Evaluate(nil)
	if err != nil {
		return "", fmt.Errorf("evaluation error: %w", err)
	}

	value, err := resultToDecimal(result)
	if err != nil {
		return "", err
	}
	return value.StringFixed(2), nil
}

// resultToDecimal converts a govaluate result into a decimal value.
func resultToDecimal(result interface{}) (decimal.Decimal, error) {
	switch v := result.(type) {
	case float64:
		if math.IsNaN(v) {
			return decimal.Zero, fmt.Errorf("result is not a number")
		}
		if math.IsInf(v, 0) {
			return decimal.Zero, fmt.Errorf("result is infinite")
		}
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	default:
		value, err := decimal.NewFromString(fmt.Sprintf("%v", result))
		if err != nil {
			return decimal.Zero, fmt.Errorf("could not convert result to decimal: %w", err)
		}
		return value, nil
	}
}

// cleanCurrency removes dollar signs, thousands separators, and padding.
func cleanCurrency(s string) string {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}
