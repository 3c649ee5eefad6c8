package receipt

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var currencyPattern = regexp.MustCompile(`(?i)(USD|EUR|GBP|JPY|INR|IDR|SGD|MYR|Rp|\$|€|£|¥|₹)`)

var (
	usGroupedDecimal = regexp.MustCompile(`^\d{1,3}(,\d{3})+\.\d{1,2}$`)
	euGroupedDecimal = regexp.MustCompile(`^\d{1,3}(\.\d{3})+,\d{1,2}$`)
	simpleDecimal    = regexp.MustCompile(`^\d+\.\d{1,2}$`)
	commaGroupedInt  = regexp.MustCompile(`^\d{1,3}(,\d{3})+$`)
	dotGroupedInt    = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)
	plainInt         = regexp.MustCompile(`^\d+$`)
	firstNumber      = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
	nonDigit         = regexp.MustCompile(`\D`)
)

type amountRule struct {
	match     func(string) bool
	transform func(string) string
}

func keep(s string) string { return s }

func stripAll(old string) func(string) string {
	return func(s string) string { return strings.ReplaceAll(s, old, "") }
}

// amountRules run in order against the currency-stripped input; the first
// rule that matches decides the result.
var amountRules = []amountRule{
	{match: usGroupedDecimal.MatchString, transform: stripAll(",")},
	{match: euGroupedDecimal.MatchString, transform: func(s string) string {
		return strings.Replace(strings.ReplaceAll(s, ".", ""), ",", ".", 1)
	}},
	{match: simpleDecimal.MatchString, transform: keep},
	{match: commaGroupedInt.MatchString, transform: stripAll(",")},
	{match: dotGroupedInt.MatchString, transform: stripAll(".")},
	{match: plainInt.MatchString, transform: keep},
	{
		match: firstNumber.MatchString,
		transform: func(s string) string {
			return strings.Replace(firstNumber.FindString(s), ",", ".", 1)
		},
	},
}

// NormalizeAmount converts an OCR amount string into a canonical numeric
// string: '.' as the decimal separator and no grouping. It returns "" when
// the input holds no digits.
func NormalizeAmount(raw string) string {
	s := strings.TrimSpace(currencyPattern.ReplaceAllString(raw, ""))
	if s == "" {
		return ""
	}

	for _, rule := range amountRules {
		if rule.match(s) {
			return rule.transform(s)
		}
	}

	return nonDigit.ReplaceAllString(s, "")
}

// ParseAmount is NormalizeAmount followed by a decimal parse. ok is false
// when the input could not be normalized.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	canonical := NormalizeAmount(raw)
	if canonical == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(canonical)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
