package cart

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"quickcart/models"
	"quickcart/store"
	"quickcart/utils"
)

// The cart lives on the user record, so every handler resolves the user
// first and mutates the embedded slice under the user store's lock.

func resolveUser(w http.ResponseWriter, ps httprouter.Params) (models.User, bool) {
	id, ok := utils.ParseID(ps, "userId")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid user ID",
			"User ID must be a valid number")
		return models.User{}, false
	}

	user, found := store.Users.Get(id)
	if !found {
		utils.SendError(w, http.StatusNotFound, "User not found",
			fmt.Sprintf("User with ID %d does not exist", id))
		return models.User{}, false
	}
	return user, true
}

// GetCart returns the user's cart items with a count.
func GetCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, ok := resolveUser(w, ps)
	if !ok {
		return
	}
	utils.SendData(w, http.StatusOK, user.Cart, "Cart retrieved successfully")
}

type addInput struct {
	Product  models.Product `json:"product"`
	Quantity *int           `json:"quantity"`
}

// AddToCart appends a product, or accumulates quantity if the product is
// already a line item.
func AddToCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, ok := resolveUser(w, ps)
	if !ok {
		return
	}

	var in addInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}

	qty := 1
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	if qty < 1 {
		utils.SendError(w, http.StatusBadRequest, "Invalid quantity",
			"Quantity must be a positive number")
		return
	}
	if in.Product.ID == 0 {
		utils.SendError(w, http.StatusBadRequest, "Invalid product data",
			"Product information with valid ID is required")
		return
	}

	updated, _ := store.Users.Update(user.ID, func(u *models.User) {
		for i := range u.Cart {
			if u.Cart[i].Product.ID == in.Product.ID {
				u.Cart[i].Quantity += qty
				return
			}
		}
		u.Cart = append(u.Cart, models.CartItem{Product: in.Product, Quantity: qty})
	})

	utils.SendData(w, http.StatusOK, updated.Cart, "Item added to cart successfully")
}

type updateInput struct {
	Quantity *int `json:"quantity"`
}

// UpdateCartItem sets a line item's quantity. Zero removes the item.
func UpdateCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, ok := resolveUser(w, ps)
	if !ok {
		return
	}

	productID, ok := utils.ParseID(ps, "productId")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid product ID",
			"Product ID must be a valid number")
		return
	}

	var in updateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}
	if in.Quantity == nil || *in.Quantity < 0 {
		utils.SendError(w, http.StatusBadRequest, "Invalid quantity",
			"Quantity must be a non-negative number")
		return
	}

	found := false
	updated, _ := store.Users.Update(user.ID, func(u *models.User) {
		for i := range u.Cart {
			if u.Cart[i].Product.ID != productID {
				continue
			}
			found = true
			if *in.Quantity == 0 {
				u.Cart = append(u.Cart[:i], u.Cart[i+1:]...)
			} else {
				u.Cart[i].Quantity = *in.Quantity
			}
			return
		}
	})
	if !found {
		utils.SendError(w, http.StatusNotFound, "Item not found", "Item not found in cart")
		return
	}

	utils.SendData(w, http.StatusOK, updated.Cart, "Cart updated successfully")
}

// RemoveCartItem drops a line item regardless of quantity.
func RemoveCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, ok := resolveUser(w, ps)
	if !ok {
		return
	}

	productID, ok := utils.ParseID(ps, "productId")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid product ID",
			"Product ID must be a valid number")
		return
	}

	found := false
	updated, _ := store.Users.Update(user.ID, func(u *models.User) {
		for i := range u.Cart {
			if u.Cart[i].Product.ID == productID {
				found = true
				u.Cart = append(u.Cart[:i], u.Cart[i+1:]...)
				return
			}
		}
	})
	if !found {
		utils.SendError(w, http.StatusNotFound, "Item not found", "Item not found in cart")
		return
	}

	utils.SendData(w, http.StatusOK, updated.Cart, "Item removed from cart successfully")
}

// ClearCart empties the cart.
func ClearCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, ok := resolveUser(w, ps)
	if !ok {
		return
	}

	updated, _ := store.Users.Update(user.ID, func(u *models.User) {
		u.Cart = []models.CartItem{}
	})

	utils.SendData(w, http.StatusOK, updated.Cart, "Cart cleared successfully")
}
