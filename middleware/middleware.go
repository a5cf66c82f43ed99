package middleware

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"

	"quickcart/utils"
)

// PanicHandler converts an uncaught handler panic into a 500 envelope.
// The stack is attached only outside production mode. Wire it to
// httprouter's PanicHandler field.
func PanicHandler(w http.ResponseWriter, r *http.Request, rec any) {
	log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)

	resp := utils.Envelope{
		Success: false,
		Error:   "Internal Server Error",
		Message: fmt.Sprint(rec),
	}
	if os.Getenv("APP_ENV") != "production" {
		resp.Details = []string{string(debug.Stack())}
	}
	utils.RespondWithJSON(w, http.StatusInternalServerError, resp)
}
