package orders

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	"quickcart/models"
	"quickcart/store"
	"quickcart/utils"
)

const (
	taxRate           = 0.08
	flatShippingFee   = 15.99
	freeShippingAbove = 100
)

// GetOrders lists orders with filtering, sorting and pagination.
func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, limit, errMsg := utils.ParsePagination(r, 10)
	if errMsg != "" {
		utils.SendError(w, http.StatusBadRequest, "Invalid pagination", errMsg)
		return
	}

	q := r.URL.Query()
	filtered := store.Orders.All()

	if raw := q.Get("userId"); raw != "" {
		if userID, err := strconv.Atoi(raw); err == nil {
			filtered = filter(filtered, func(o models.Order) bool { return o.UserID == userID })
		}
	}
	if status := q.Get("status"); status != "" {
		filtered = filter(filtered, func(o models.Order) bool { return o.Status == status })
	}
	if ps := q.Get("paymentStatus"); ps != "" {
		filtered = filter(filtered, func(o models.Order) bool { return o.PaymentStatus == ps })
	}
	if pm := q.Get("paymentMethod"); pm != "" {
		filtered = filter(filtered, func(o models.Order) bool { return o.PaymentMethod == pm })
	}
	if from, ok := parseDate(q.Get("startDate")); ok {
		filtered = filter(filtered, func(o models.Order) bool { return !o.OrderDate.Before(from) })
	}
	if until, ok := parseDate(q.Get("endDate")); ok {
		filtered = filter(filtered, func(o models.Order) bool { return !o.OrderDate.After(until) })
	}
	if search := q.Get("search"); search != "" {
		filtered = filter(filtered, func(o models.Order) bool { return matchesSearch(o, search) })
	}

	sortBy := q.Get("sortBy")
	if sortBy == "" {
		sortBy = "orderDate"
	}
	sortOrderDir := q.Get("sortOrder")
	if sortOrderDir == "" {
		sortOrderDir = "desc"
	}
	sortOrders(filtered, sortBy, sortOrderDir)

	start, end, meta := utils.Paginate(len(filtered), page, limit)
	utils.SendPage(w, filtered[start:end], meta, "Orders retrieved successfully")
}

// GetOrder returns a single order by id.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseID(ps, "id")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid ID", "ID must be a valid positive number")
		return
	}

	order, found := store.Orders.Get(id)
	if !found {
		utils.SendError(w, http.StatusNotFound, "Order not found",
			fmt.Sprintf("Order with ID %d does not exist", id))
		return
	}

	utils.SendData(w, http.StatusOK, order, "Order retrieved successfully")
}

type orderItemInput struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

type orderInput struct {
	UserID          int                  `json:"userId"`
	Items           []orderItemInput     `json:"items"`
	ShippingAddress *models.OrderAddress `json:"shippingAddress"`
	BillingAddress  *models.OrderAddress `json:"billingAddress"`
	PaymentMethod   string               `json:"paymentMethod"`
	Notes           string               `json:"notes"`
	Subtotal        float64              `json:"subtotal"`
	Tax             float64              `json:"tax"`
	ShippingFee     float64              `json:"shippingFee"`
	Discount        float64              `json:"discount"`
}

// CreateOrder persists the caller's cart contents as a pending order.
//
// Monetary fields are derived when not supplied: subtotal as the sum of the
// item totals, tax as 8% of subtotal (floored), shipping as a flat fee waived
// above the free-shipping threshold. Stock is never decremented and the
// referenced user/products are not checked for existence, so concurrent
// placements can oversell. Clearing the originating cart is the caller's job,
// not part of this operation.
func CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in orderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}

	if in.UserID == 0 || len(in.Items) == 0 || in.ShippingAddress == nil || in.PaymentMethod == "" {
		utils.SendError(w, http.StatusBadRequest, "Missing required fields",
			"UserId, items, shippingAddress, and paymentMethod are required")
		return
	}
	if details := validateOrder(in); len(details) > 0 {
		utils.SendValidationError(w, details)
		return
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		total := it.Total
		if total == 0 {
			total = it.Price * float64(it.Quantity)
		}
		items = append(items, models.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Total:       utils.Round2(total),
		})
	}

	subtotal := in.Subtotal
	if subtotal == 0 {
		for _, it := range items {
			subtotal += it.Total
		}
	}
	tax := in.Tax
	if tax == 0 {
		tax = math.Floor(subtotal * taxRate)
	}
	shippingFee := in.ShippingFee
	if shippingFee == 0 && subtotal <= freeShippingAbove {
		shippingFee = flatShippingFee
	}
	discount := in.Discount
	totalAmount := subtotal + tax + shippingFee - discount

	billing := in.ShippingAddress
	if in.BillingAddress != nil {
		billing = in.BillingAddress
	}

	now := time.Now().UTC()
	order := store.Orders.Create(models.Order{
		UserID:           in.UserID,
		Status:           models.OrderPending,
		TotalAmount:      utils.Round2(totalAmount),
		Subtotal:         utils.Round2(subtotal),
		Tax:              utils.Round2(tax),
		ShippingFee:      utils.Round2(shippingFee),
		Discount:         utils.Round2(discount),
		PaymentMethod:    in.PaymentMethod,
		PaymentStatus:    "pending",
		ShippingAddress:  *in.ShippingAddress,
		BillingAddress:   *billing,
		Items:            items,
		OrderDate:        now,
		ExpectedDelivery: now.Add(7 * 24 * time.Hour),
		Notes:            in.Notes,
	})

	utils.SendData(w, http.StatusCreated, order, "Order created successfully")
}

type orderUpdate struct {
	Status          *string              `json:"status"`
	PaymentStatus   *string              `json:"paymentStatus"`
	PaymentMethod   *string              `json:"paymentMethod"`
	Notes           *string              `json:"notes"`
	TrackingNumber  *string              `json:"trackingNumber"`
	DeliveredDate   *time.Time           `json:"deliveredDate"`
	ShippingAddress *models.OrderAddress `json:"shippingAddress"`
	BillingAddress  *models.OrderAddress `json:"billingAddress"`
	Subtotal        *float64             `json:"subtotal"`
	Tax             *float64             `json:"tax"`
	ShippingFee     *float64             `json:"shippingFee"`
	Discount        *float64             `json:"discount"`
	TotalAmount     *float64             `json:"totalAmount"`
}

var allowedStatuses = []string{
	models.OrderPending,
	models.OrderProcessing,
	models.OrderShipped,
	models.OrderDelivered,
	models.OrderCancelled,
}

// UpdateOrder merges the supplied fields into the order. Writing status
// "shipped" stamps a tracking number if the order lacks one; "delivered"
// stamps the delivery timestamp if absent. Any allowed status overwrites the
// current one regardless of ordering, including regressions.
func UpdateOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseID(ps, "id")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid ID", "ID must be a valid positive number")
		return
	}

	var in orderUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}

	if in.Status != nil && !contains(allowedStatuses, *in.Status) {
		utils.SendValidationError(w, []string{
			"Status must be one of: pending, processing, shipped, delivered, cancelled",
		})
		return
	}

	updated, found := store.Orders.Update(id, func(o *models.Order) {
		if in.Status != nil {
			if *in.Status == models.OrderShipped && o.TrackingNumber == nil && in.TrackingNumber == nil {
				trk := utils.GenerateTrackingNumber()
				o.TrackingNumber = &trk
			}
			if *in.Status == models.OrderDelivered && o.DeliveredDate == nil && in.DeliveredDate == nil {
				now := time.Now().UTC()
				o.DeliveredDate = &now
			}
			o.Status = *in.Status
		}
		applyOrderUpdate(o, in)
	})
	if !found {
		utils.SendError(w, http.StatusNotFound, "Order not found",
			fmt.Sprintf("Order with ID %d does not exist", id))
		return
	}

	utils.SendData(w, http.StatusOK, updated, "Order updated successfully")
}

// DeleteOrder removes an order. Only pending orders may be deleted.
func DeleteOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseID(ps, "id")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid ID", "ID must be a valid positive number")
		return
	}

	order, found := store.Orders.Get(id)
	if !found {
		utils.SendError(w, http.StatusNotFound, "Order not found",
			fmt.Sprintf("Order with ID %d does not exist", id))
		return
	}
	if order.Status != models.OrderPending {
		utils.SendError(w, http.StatusBadRequest, "Cannot delete order", "Only pending orders can be deleted")
		return
	}

	deleted, _ := store.Orders.Delete(id)
	utils.SendData(w, http.StatusOK, deleted, "Order deleted successfully")
}

// GetUserOrders lists a user's orders, newest first.
func GetUserOrders(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := utils.ParseID(ps, "userId")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid ID", "ID must be a valid positive number")
		return
	}
	page, limit, errMsg := utils.ParsePagination(r, 10)
	if errMsg != "" {
		utils.SendError(w, http.StatusBadRequest, "Invalid pagination", errMsg)
		return
	}

	userOrders := filter(store.Orders.All(), func(o models.Order) bool { return o.UserID == userID })
	if status := r.URL.Query().Get("status"); status != "" {
		userOrders = filter(userOrders, func(o models.Order) bool { return o.Status == status })
	}
	sort.SliceStable(userOrders, func(i, j int) bool {
		return userOrders[j].OrderDate.Before(userOrders[i].OrderDate)
	})

	start, end, meta := utils.Paginate(len(userOrders), page, limit)
	utils.SendPage(w, userOrders[start:end], meta, "User orders retrieved successfully")
}

// GetOrderStats aggregates revenue and status counts over all orders.
func GetOrderStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	all := store.Orders.All()

	var totalRevenue float64
	statusCount := map[string]int{}
	paymentStatusCount := map[string]int{}
	for _, o := range all {
		totalRevenue += o.TotalAmount
		statusCount[o.Status]++
		paymentStatusCount[o.PaymentStatus]++
	}

	averageOrderValue := 0.0
	if len(all) > 0 {
		averageOrderValue = utils.Round2(totalRevenue / float64(len(all)))
	}

	utils.SendData(w, http.StatusOK, utils.M{
		"totalOrders":            len(all),
		"totalRevenue":           utils.Round2(totalRevenue),
		"statusBreakdown":        statusCount,
		"paymentStatusBreakdown": paymentStatusCount,
		"averageOrderValue":      averageOrderValue,
	}, "Order statistics retrieved successfully")
}

func matchesSearch(o models.Order, term string) bool {
	if utils.ContainsIgnoreCase(o.OrderNumber, term) ||
		utils.ContainsIgnoreCase(o.ShippingAddress.FullName, term) {
		return true
	}
	return o.TrackingNumber != nil && utils.ContainsIgnoreCase(*o.TrackingNumber, term)
}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func sortOrders(os []models.Order, sortBy, dir string) {
	less := orderLess(sortBy)
	if less == nil {
		return
	}
	sort.SliceStable(os, func(i, j int) bool {
		if dir == "desc" {
			return less(os[j], os[i])
		}
		return less(os[i], os[j])
	})
}

func orderLess(sortBy string) func(a, b models.Order) bool {
	switch sortBy {
	case "orderDate":
		return func(a, b models.Order) bool { return a.OrderDate.Before(b.OrderDate) }
	case "deliveredDate":
		return func(a, b models.Order) bool {
			return derefTime(a.DeliveredDate).Before(derefTime(b.DeliveredDate))
		}
	case "totalAmount":
		return func(a, b models.Order) bool { return a.TotalAmount < b.TotalAmount }
	case "status":
		return func(a, b models.Order) bool { return a.Status < b.Status }
	case "orderNumber":
		return func(a, b models.Order) bool { return a.OrderNumber < b.OrderNumber }
	default:
		return nil
	}
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func applyOrderUpdate(o *models.Order, in orderUpdate) {
	if in.PaymentStatus != nil {
		o.PaymentStatus = *in.PaymentStatus
	}
	if in.PaymentMethod != nil {
		o.PaymentMethod = *in.PaymentMethod
	}
	if in.Notes != nil {
		o.Notes = *in.Notes
	}
	if in.TrackingNumber != nil {
		o.TrackingNumber = in.TrackingNumber
	}
	if in.DeliveredDate != nil {
		o.DeliveredDate = in.DeliveredDate
	}
	if in.ShippingAddress != nil {
		o.ShippingAddress = *in.ShippingAddress
	}
	if in.BillingAddress != nil {
		o.BillingAddress = *in.BillingAddress
	}
	if in.Subtotal != nil {
		o.Subtotal = *in.Subtotal
	}
	if in.Tax != nil {
		o.Tax = *in.Tax
	}
	if in.ShippingFee != nil {
		o.ShippingFee = *in.ShippingFee
	}
	if in.Discount != nil {
		o.Discount = *in.Discount
	}
	if in.TotalAmount != nil {
		o.TotalAmount = *in.TotalAmount
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func filter(os []models.Order, keep func(models.Order) bool) []models.Order {
	out := os[:0:0]
	for _, o := range os {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}
