package routes

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"quickcart/cart"
	"quickcart/categories"
	"quickcart/home"
	"quickcart/middleware"
	"quickcart/orders"
	"quickcart/products"
	"quickcart/ratelim"
	"quickcart/users"
	"quickcart/utils"
)

// NewRouter assembles the full route table. Every handler goes through the
// shared rate limiter; panics surface as 500 envelopes.
func NewRouter(rl *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.PanicHandler = middleware.PanicHandler
	router.NotFound = http.HandlerFunc(notFound)

	AddProductRoutes(router, rl)
	AddCategoryRoutes(router, rl)
	AddOrderRoutes(router, rl)
	AddUserRoutes(router, rl)
	AddCartRoutes(router, rl)
	AddUtilityRoutes(router, rl)

	return router
}

func AddProductRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/products", rl.Limit(products.GetProducts))
	router.POST("/api/products", rl.Limit(products.CreateProduct))
	router.GET("/api/products/:id", rl.Limit(products.GetProduct))
	router.PUT("/api/products/:id", rl.Limit(products.UpdateProduct))
	router.DELETE("/api/products/:id", rl.Limit(products.DeleteProduct))

	// GET /api/products/category/:categoryId shares the :id slot.
	router.GET("/api/products/:id/:sub", rl.Limit(dispatchProductSub))
}

func dispatchProductSub(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") == "category" {
		products.GetProductsByCategory(w, r, params("categoryId", ps.ByName("sub")))
		return
	}
	notFound(w, r)
}

func AddCategoryRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/categories", rl.Limit(categories.GetCategories))
	router.POST("/api/categories", rl.Limit(categories.CreateCategory))
	router.GET("/api/categories/:id", rl.Limit(categories.GetCategory))
	router.PUT("/api/categories/:id", rl.Limit(categories.UpdateCategory))
	router.DELETE("/api/categories/:id", rl.Limit(categories.DeleteCategory))

	// GET /api/categories/slug/:slug and /parent/:parentId share the :id slot.
	router.GET("/api/categories/:id/:sub", rl.Limit(dispatchCategorySub))
}

func dispatchCategorySub(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	switch ps.ByName("id") {
	case "slug":
		categories.GetCategoryBySlug(w, r, params("slug", ps.ByName("sub")))
	case "parent":
		categories.GetChildCategories(w, r, params("parentId", ps.ByName("sub")))
	default:
		notFound(w, r)
	}
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/orders", rl.Limit(orders.GetOrders))
	router.POST("/api/orders", rl.Limit(orders.CreateOrder))
	router.GET("/api/orders/:id", rl.Limit(orders.GetOrder))
	router.PUT("/api/orders/:id", rl.Limit(orders.UpdateOrder))
	router.DELETE("/api/orders/:id", rl.Limit(orders.DeleteOrder))

	// GET /api/orders/user/:userId and /stats/summary share the :id slot.
	router.GET("/api/orders/:id/:sub", rl.Limit(dispatchOrderSub))
}

func dispatchOrderSub(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	switch ps.ByName("id") {
	case "user":
		orders.GetUserOrders(w, r, params("userId", ps.ByName("sub")))
	case "stats":
		if ps.ByName("sub") == "summary" {
			orders.GetOrderStats(w, r, nil)
			return
		}
		notFound(w, r)
	default:
		notFound(w, r)
	}
}

func AddUserRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/users", rl.Limit(users.GetUsers))
	router.POST("/api/users", rl.Limit(users.CreateUser))
	router.POST("/api/users/register", rl.Limit(users.RegisterUser))
	router.POST("/api/users/login", rl.Limit(users.LoginUser))
	router.GET("/api/users/:id", rl.Limit(users.GetUser))
	router.PUT("/api/users/:id", rl.Limit(users.UpdateUser))
	router.DELETE("/api/users/:id", rl.Limit(users.DeleteUser))

	// GET /api/users/role/:role shares the :id slot.
	router.GET("/api/users/:id/:sub", rl.Limit(dispatchUserSub))
}

func dispatchUserSub(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") == "role" {
		users.GetUsersByRole(w, r, params("role", ps.ByName("sub")))
		return
	}
	notFound(w, r)
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/cart/:userId", rl.Limit(cart.GetCart))
	router.DELETE("/api/cart/:userId", rl.Limit(cart.ClearCart))
	router.POST("/api/cart/:userId/items", rl.Limit(cart.AddToCart))
	router.PUT("/api/cart/:userId/items/:productId", rl.Limit(cart.UpdateCartItem))
	router.DELETE("/api/cart/:userId/items/:productId", rl.Limit(cart.RemoveCartItem))
}

func AddUtilityRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/", rl.Limit(home.Index))
	router.GET("/health", rl.Limit(home.Health))
}

func params(pairs ...string) httprouter.Params {
	ps := make(httprouter.Params, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		ps = append(ps, httprouter.Param{Key: pairs[i], Value: pairs[i+1]})
	}
	return ps
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusNotFound, utils.Envelope{
		Success: false,
		Error:   "Endpoint not found",
		Message: fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path),
		Data: utils.M{
			"availableEndpoints": utils.M{
				"products":   "/api/products",
				"categories": "/api/categories",
				"orders":     "/api/orders",
				"users":      "/api/users",
				"cart":       "/api/cart/:userId",
				"health":     "/health",
			},
		},
	})
}
