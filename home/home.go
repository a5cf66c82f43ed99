package home

import (
	"net/http"
	"runtime"
	"time"

	"github.com/julienschmidt/httprouter"

	"quickcart/utils"
)

var startTime = time.Now()

// Index documents the API surface at the root path.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.SendData(w, http.StatusOK, utils.M{
		"name":    "QuickCart API",
		"version": "1.0.0",
		"endpoints": utils.M{
			"products":   "/api/products",
			"categories": "/api/categories",
			"orders":     "/api/orders",
			"users":      "/api/users",
			"cart":       "/api/cart/:userId",
			"health":     "/health",
		},
	}, "Welcome to the QuickCart API")
}

// Health reports process uptime, heap usage, and the running environment.
func Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	utils.SendData(w, http.StatusOK, utils.M{
		"status":      "OK",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      int(time.Since(startTime).Seconds()),
		"memoryMB":    utils.Round2(float64(mem.Alloc) / 1024 / 1024),
		"environment": utils.Getenv("APP_ENV", "development"),
	}, "Service is healthy")
}
