package products

import "strings"

// validateProduct checks the create payload and returns itemized messages.
func validateProduct(in productInput) []string {
	var errs []string

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "Product name is required and must be a non-empty string")
	}
	if in.Price <= 0 {
		errs = append(errs, "Price is required and must be a positive number")
	}
	if strings.TrimSpace(in.Category) == "" {
		errs = append(errs, "Category is required and must be a non-empty string")
	}
	if in.OfferPrice < 0 {
		errs = append(errs, "Offer price must be a positive number")
	}
	if in.Quantity < 0 {
		errs = append(errs, "Quantity must be a non-negative number")
	}

	return errs
}
