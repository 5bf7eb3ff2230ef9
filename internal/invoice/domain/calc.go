package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// ItemAmount derives the tax-inclusive amount for one line:
// quantity*price*(1+taxRate/100). Missing numerics are treated as zero;
// range enforcement belongs to Validate, not here.
func ItemAmount(item Item) float64 {
	base := item.Quantity * item.Price
	return base + base*(item.TaxRate/100)
}

// Subtotal sums quantity*price across items, tax-exclusive.
func Subtotal(items []Item) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Quantity * item.Price
	}
	return sum
}

// TotalTax sums the tax component across items.
func TotalTax(items []Item) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Quantity * item.Price * (item.TaxRate / 100)
	}
	return sum
}

// Total is subtotal + tax - discount. The discount is not validated; it
// may exceed the subtotal and the resulting negative total renders as-is.
func Total(items []Item, discount float64) float64 {
	return Subtotal(items) + TotalTax(items) - discount
}

// GenerateInvoiceNumber produces "INV-<year>-<4 random digits>".
// Uniqueness is not guaranteed; the collision risk is accepted.
func GenerateInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%d-%04d", now.Year(), rand.Intn(10000))
}
