package domain

import "fmt"

// ValidationResult lists every business-rule violation found. Violations
// are accumulated, never short-circuited, and are non-fatal: editing
// continues, only a finalize action gates on them.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Validate checks the rules a finalized invoice must satisfy: company and
// client names present, at least one item, every item named, quantities
// positive, prices non-negative.
func Validate(inv Invoice) ValidationResult {
	var errs []string

	if inv.Company.Name == "" {
		errs = append(errs, "Company name is required")
	}
	if inv.Client.Name == "" {
		errs = append(errs, "Client name is required")
	}
	if len(inv.Items) == 0 {
		errs = append(errs, "At least one item is required")
	}
	for i, item := range inv.Items {
		if item.Name == "" {
			errs = append(errs, fmt.Sprintf("Item %d: Name is required", i+1))
		}
		if item.Quantity <= 0 {
			errs = append(errs, fmt.Sprintf("Item %d: Quantity must be greater than 0", i+1))
		}
		if item.Price < 0 {
			errs = append(errs, fmt.Sprintf("Item %d: Price cannot be negative", i+1))
		}
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
