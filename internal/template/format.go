package template

import (
	"strconv"

	"billforge/internal/domain"
)

// FormatDate renders a calendar date as DD/MM/YYYY.
func FormatDate(d domain.Date) string {
	return d.Time.Format("02/01/2006")
}

// FormatMoney renders a monetary amount with exactly two decimal digits.
func FormatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ParseMoney parses a value produced by FormatMoney.
func ParseMoney(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// FormatPercent renders a tax rate as "<n>%", trimming insignificant zeros
// (18 -> "18%", 2.5 -> "2.5%").
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// FormatQuantity renders a quantity, whole numbers without a decimal point.
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
