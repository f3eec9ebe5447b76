package app

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router) {

	// Tag every request with an id for log correlation
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			requestId := req.Header.Get("X-Request-Id")
			if requestId == "" {
				requestId = uuid.NewString()
			}
			w.Header().Set("X-Request-Id", requestId)
			log.WithFields(log.Fields{
				"requestId": requestId,
				"method":    req.Method,
				"path":      req.URL.Path,
			}).Debug("handling request")
			next.ServeHTTP(w, req)
		})
	})

	r.Use(handlers.RecoveryHandler())
}

// WithCORS wraps the router itself rather than registering a mux
// middleware: mux only runs middleware on a matched route, so a preflight
// OPTIONS for a POST-only route would otherwise answer 405 without any
// Access-Control headers. The service is consumed by browser frontends on
// other origins.
func WithCORS(h http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)
}
