package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/planbord/planbord/internal/rest"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Calendar operations, always addressed by username
	r.HandleFunc("/calendars/{username}/events", deps.BookingHandler.ListEvents).Methods("GET")
	r.HandleFunc("/calendars/{username}/events", deps.BookingHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/calendars/{username}/events/{eventId}", deps.BookingHandler.RescheduleEvent).Methods("PUT")
	r.HandleFunc("/calendars/{username}/events/{eventId}", deps.BookingHandler.DeleteEvent).Methods("DELETE")

	// Transactional notices
	r.HandleFunc("/send-mail", deps.NotificationHandler.SendMail).Methods("POST")
	r.HandleFunc("/notify-certificate-available", deps.NotificationHandler.NotifyCertificateAvailable).Methods("POST")
	r.HandleFunc("/notify-updated-date-visit", deps.NotificationHandler.NotifyUpdatedDateVisit).Methods("POST")

	// Directory administration
	r.HandleFunc("/users", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/users/{username}", deps.UserHandler.GetUser).Methods("GET")
	r.HandleFunc("/users/{username}", deps.UserHandler.DeleteUser).Methods("DELETE")

	r.HandleFunc("/health", healthHandler(deps)).Methods("GET")
}

func healthHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.DB.Ping(r.Context()); err != nil {
			rest.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
