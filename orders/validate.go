package orders

import "fmt"

var allowedPaymentMethods = []string{"credit_card", "debit_card", "paypal", "bank_transfer"}

// validateOrder checks the create payload and returns itemized messages.
func validateOrder(in orderInput) []string {
	var errs []string

	if in.UserID <= 0 {
		errs = append(errs, "Valid user ID is required")
	}

	if len(in.Items) == 0 {
		errs = append(errs, "Order items are required and must be a non-empty array")
	}
	for i, item := range in.Items {
		if item.ProductID <= 0 {
			errs = append(errs, fmt.Sprintf("Item %d: Product ID is required", i+1))
		}
		if item.ProductName == "" {
			errs = append(errs, fmt.Sprintf("Item %d: Product name is required", i+1))
		}
		if item.Price <= 0 {
			errs = append(errs, fmt.Sprintf("Item %d: Valid price is required", i+1))
		}
		if item.Quantity <= 0 {
			errs = append(errs, fmt.Sprintf("Item %d: Valid quantity is required", i+1))
		}
	}

	if in.ShippingAddress == nil {
		errs = append(errs, "Shipping address is required")
	} else {
		addr := in.ShippingAddress
		addrFields := []struct {
			name  string
			value string
		}{
			{"fullName", addr.FullName},
			{"street", addr.Street},
			{"city", addr.City},
			{"state", addr.State},
			{"zipCode", addr.ZipCode},
			{"country", addr.Country},
		}
		for _, f := range addrFields {
			if f.value == "" {
				errs = append(errs, fmt.Sprintf("Shipping address %s is required", f.name))
			}
		}
	}

	if !contains(allowedPaymentMethods, in.PaymentMethod) {
		errs = append(errs, "Valid payment method is required (credit_card, debit_card, paypal, bank_transfer)")
	}

	return errs
}
