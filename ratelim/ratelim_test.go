package ratelim

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
}

func hit(rl *RateLimiter, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	rl.Limit(okHandler)(rec, req, nil)
	return rec
}

func TestLimitRejectsAboveBudget(t *testing.T) {
	rl := New(2, time.Hour)

	assert.Equal(t, http.StatusOK, hit(rl, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, hit(rl, "10.0.0.1:1234").Code)

	rec := hit(rl, "10.0.0.1:1234")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body struct {
		Success    bool   `json:"success"`
		Error      string `json:"error"`
		RetryAfter int    `json:"retryAfter"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Too many requests", body.Error)
	assert.Greater(t, body.RetryAfter, 0)
}

func TestLimitTracksClientsIndependently(t *testing.T) {
	rl := New(1, time.Hour)

	assert.Equal(t, http.StatusOK, hit(rl, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(rl, "10.0.0.1:9999").Code) // same host, new port
	assert.Equal(t, http.StatusOK, hit(rl, "10.0.0.2:1234").Code)
}
