package util

import (
	"strconv"
)

// FormatCurrency renders whole currency units as "$1,234.00"
func FormatCurrency(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	intPart := strconv.Itoa(amount)
	if len(intPart) > 3 {
		// Insert thousands separators from the right
		out := make([]byte, 0, len(intPart)+len(intPart)/3)
		lead := len(intPart) % 3
		if lead > 0 {
			out = append(out, intPart[:lead]...)
		}
		for i := lead; i < len(intPart); i += 3 {
			if len(out) > 0 {
				out = append(out, ',')
			}
			out = append(out, intPart[i:i+3]...)
		}
		intPart = string(out)
	}

	return sign + "$" + intPart + ".00"
}

// FormatPrice renders a monthly plan price; zero is "Free"
func FormatPrice(amount int) string {
	if amount == 0 {
		return "Free"
	}
	return FormatCurrency(amount)
}

// FormatOverflow renders the "+N" marker for items left off a card
func FormatOverflow(n int, suffix string) string {
	if n <= 0 {
		return ""
	}
	if suffix == "" {
		return "+" + strconv.Itoa(n)
	}
	return "+" + strconv.Itoa(n) + " " + suffix
}
