package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestWithCORS_PreflightForPostOnlyRoute(t *testing.T) {
	r := mux.NewRouter()
	SetupMiddleware(r)
	r.HandleFunc("/send-mail", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("POST")

	req := httptest.NewRequest("OPTIONS", "/send-mail", nil)
	req.Header.Set("Origin", "https://frontend.example.be")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()

	WithCORS(r).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestWithCORS_ActualRequestCarriesAllowOrigin(t *testing.T) {
	r := mux.NewRouter()
	SetupMiddleware(r)
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "https://frontend.example.be")
	w := httptest.NewRecorder()

	WithCORS(r).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
