package booking

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/planbord/planbord/internal/rest"
	"github.com/planbord/planbord/pkg/gcal"
	log "github.com/sirupsen/logrus"
)

type EventDTO struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Sequence    int64     `json:"sequence"`
}

type CreateEventDTO struct {
	Summary     string `json:"summary"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

type RescheduleEventDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	log.Trace("Listing upcoming events")

	vars := mux.Vars(r)
	username := vars["username"]

	events, err := h.service.ListUpcoming(r.Context(), username)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	log.Trace("Creating event")

	vars := mux.Vars(r)
	username := vars["username"]

	var dto CreateEventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteBadRequest(w, "Invalid request body format", "")
		return
	}

	start, err := gcal.ParseDateTime(dto.Start)
	if err != nil {
		rest.WriteBadRequest(w, "Invalid start (date) format", "'start' must be a local date-time or RFC3339")
		return
	}
	end, err := gcal.ParseDateTime(dto.End)
	if err != nil {
		rest.WriteBadRequest(w, "Invalid end (date) format", "'end' must be a local date-time or RFC3339")
		return
	}

	eventId, err := h.service.CreateEvent(r.Context(), username, gcal.EventInput{
		Summary:     dto.Summary,
		Location:    dto.Location,
		Description: dto.Description,
		Start:       start,
		End:         end,
	})
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, map[string]string{"eventId": eventId})
}

func (h *Handler) RescheduleEvent(w http.ResponseWriter, r *http.Request) {
	log.Trace("Rescheduling event")

	vars := mux.Vars(r)
	username := vars["username"]
	eventId := vars["eventId"]

	var dto RescheduleEventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteBadRequest(w, "Invalid request body format", "")
		return
	}

	start, err := gcal.ParseDateTime(dto.Start)
	if err != nil {
		rest.WriteBadRequest(w, "Invalid start (date) format", "'start' must be a local date-time or RFC3339")
		return
	}
	end, err := gcal.ParseDateTime(dto.End)
	if err != nil {
		rest.WriteBadRequest(w, "Invalid end (date) format", "'end' must be a local date-time or RFC3339")
		return
	}

	event, err := h.service.RescheduleEvent(r.Context(), username, eventId, start, end)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, eventToDTO(event))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	log.Trace("Deleting event")

	vars := mux.Vars(r)
	username := vars["username"]
	eventId := vars["eventId"]

	if err := h.service.DeleteEvent(r.Context(), username, eventId); err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func eventToDTO(e gcal.Event) EventDTO {
	return EventDTO{
		ID:          e.ID,
		Summary:     e.Summary,
		Location:    e.Location,
		Description: e.Description,
		Start:       e.Start,
		End:         e.End,
		Sequence:    e.Sequence,
	}
}
