package models

import "time"

// Order statuses. The update handler accepts any of these regardless of the
// current status; there is no transition table.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// OrderAddress duplicates the user address shape with the recipient name and
// phone, stored per order for both shipping and billing.
type OrderAddress struct {
	FullName string `json:"fullName"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
	Phone    string `json:"phone,omitempty"`
}

// OrderItem is a price/quantity snapshot, not a live product reference.
type OrderItem struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

type Order struct {
	ID               int          `json:"id"`
	UserID           int          `json:"userId"`
	OrderNumber      string       `json:"orderNumber"`
	Status           string       `json:"status"`
	TotalAmount      float64      `json:"totalAmount"`
	Subtotal         float64      `json:"subtotal"`
	Tax              float64      `json:"tax"`
	ShippingFee      float64      `json:"shippingFee"`
	Discount         float64      `json:"discount"`
	PaymentMethod    string       `json:"paymentMethod"`
	PaymentStatus    string       `json:"paymentStatus"`
	ShippingAddress  OrderAddress `json:"shippingAddress"`
	BillingAddress   OrderAddress `json:"billingAddress"`
	Items            []OrderItem  `json:"items"`
	OrderDate        time.Time    `json:"orderDate"`
	ExpectedDelivery time.Time    `json:"expectedDelivery"`
	DeliveredDate    *time.Time   `json:"deliveredDate"`
	TrackingNumber   *string      `json:"trackingNumber"`
	Notes            string       `json:"notes"`
}

type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}
