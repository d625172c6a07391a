package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// NumberToWords spells num in the Indian system (thousand, lakh, crore).
func NumberToWords(num int64) string {
	switch {
	case num <= 0:
		return ""
	case num < 20:
		return ones[num]
	case num < 100:
		return strings.TrimSpace(tens[num/10] + " " + ones[num%10])
	case num < 1000:
		return joinWords(ones[num/100]+" Hundred", num%100)
	case num < 100000:
		return joinWords(NumberToWords(num/1000)+" Thousand", num%1000)
	case num < 10000000:
		return joinWords(NumberToWords(num/100000)+" Lakh", num%100000)
	default:
		return joinWords(NumberToWords(num/10000000)+" Crore", num%10000000)
	}
}

func joinWords(head string, remainder int64) string {
	if remainder == 0 {
		return head
	}
	return head + " " + NumberToWords(remainder)
}

// NumberToCurrencyWords spells an amount as rupees and paise, rounded to
// the paisa.
func NumberToCurrencyWords(amount decimal.Decimal) string {
	amount = amount.Abs().Round(2)
	rupees := amount.Truncate(0)
	paise := amount.Sub(rupees).Shift(2).IntPart()

	var parts []string
	if r := rupees.IntPart(); r > 0 {
		parts = append(parts, fmt.Sprintf("%s Rupees", NumberToWords(r)))
	}
	if paise > 0 {
		parts = append(parts, fmt.Sprintf("%s Paise", NumberToWords(paise)))
	}

	if len(parts) == 0 {
		return "Zero Rupees Only"
	}
	return strings.Join(parts, " and ") + " Only"
}
