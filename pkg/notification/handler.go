package notification

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/planbord/planbord/internal/rest"
	log "github.com/sirupsen/logrus"
)

type RequestNoticeDTO struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Type    string `json:"type"`
	Link    string `json:"link"`
}

type CertificateNoticeDTO struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Location string `json:"location"`
	Klant    string `json:"klant"`
	Type     string `json:"type"`
	Link     string `json:"link"`
}

type VisitDateChangeDTO struct {
	To       string   `json:"to"`
	Subject  string   `json:"subject"`
	Location string   `json:"location"`
	Klant    string   `json:"klant"`
	Date     string   `json:"date"`
	Type     []string `json:"type"`
}

type ConfirmationDTO struct {
	Message string `json:"message"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SendMail(w http.ResponseWriter, r *http.Request) {
	log.Trace("Sending request notice")

	var dto RequestNoticeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteBadRequest(w, "Invalid request body format", "")
		return
	}
	if dto.To == "" || dto.Subject == "" {
		rest.WriteBadRequest(w, "Recipient and subject are required", "")
		return
	}

	err := h.service.SendRequestNotice(r.Context(), RequestNotice{
		To:      dto.To,
		Subject: dto.Subject,
		Type:    dto.Type,
		Link:    dto.Link,
	})
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ConfirmationDTO{Message: fmt.Sprintf("mail sent to %s", dto.To)})
}

func (h *Handler) NotifyCertificateAvailable(w http.ResponseWriter, r *http.Request) {
	log.Trace("Sending certificate notice")

	var dto CertificateNoticeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteBadRequest(w, "Invalid request body format", "")
		return
	}
	if dto.To == "" || dto.Subject == "" {
		rest.WriteBadRequest(w, "Recipient and subject are required", "")
		return
	}

	err := h.service.SendCertificateNotice(r.Context(), CertificateNotice{
		To:         dto.To,
		Subject:    dto.Subject,
		Location:   dto.Location,
		ClientName: dto.Klant,
		Type:       dto.Type,
		Link:       dto.Link,
	})
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ConfirmationDTO{Message: fmt.Sprintf("mail sent to %s", dto.To)})
}

func (h *Handler) NotifyUpdatedDateVisit(w http.ResponseWriter, r *http.Request) {
	log.Trace("Sending visit date change notice")

	var dto VisitDateChangeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteBadRequest(w, "Invalid request body format", "")
		return
	}
	if dto.To == "" || dto.Subject == "" {
		rest.WriteBadRequest(w, "Recipient and subject are required", "")
		return
	}

	err := h.service.SendVisitDateChangeNotice(r.Context(), VisitDateChangeNotice{
		To:         dto.To,
		Subject:    dto.Subject,
		Location:   dto.Location,
		ClientName: dto.Klant,
		Date:       dto.Date,
		Types:      dto.Type,
	})
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ConfirmationDTO{Message: fmt.Sprintf("mail sent to %s", dto.To)})
}
