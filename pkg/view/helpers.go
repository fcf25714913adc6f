package view

import "fmt"

// Money formats a decimal price for display, e.g. 10.5 -> "$10.50".
func Money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
