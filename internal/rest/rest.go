package rest

import (
	"encoding/json"
	"net/http"

	"github.com/planbord/planbord/internal/fault"
	log "github.com/sirupsen/logrus"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// statusByKind is the single place where error categories map to HTTP
// status codes. Anything not listed answers 500.
var statusByKind = map[fault.Kind]int{
	fault.UserNotFound:            http.StatusNotFound,
	fault.DirectoryUnavailable:    http.StatusInternalServerError,
	fault.CalendarOperationFailed: http.StatusInternalServerError,
	fault.MailDeliveryFailed:      http.StatusInternalServerError,
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

// WriteError normalizes err into an ErrorResponse body. Only the error
// message is surfaced, never internals.
func WriteError(w http.ResponseWriter, err error) {
	status, ok := statusByKind[fault.KindOf(err)]
	if !ok {
		status = http.StatusInternalServerError
	}
	WriteJSON(w, status, ErrorResponse{Error: err.Error()})
}

// WriteBadRequest reports an invalid request body or parameter.
func WriteBadRequest(w http.ResponseWriter, message string, details string) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: message, Details: details})
}
