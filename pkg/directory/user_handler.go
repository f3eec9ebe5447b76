package directory

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/planbord/planbord/internal/rest"
	log "github.com/sirupsen/logrus"
)

type UserDTO struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
}

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{
		userService: userService,
	}
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log.Trace("Getting user")

	vars := mux.Vars(r)
	username := vars["username"]
	user, err := h.userService.GetByUsername(r.Context(), username)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, userToDTO(&user))
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating user")

	var user UserDTO
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		rest.WriteBadRequest(w, "Invalid request body format", "")
		return
	}
	log.Tracef("Creating new user: %+v", user)

	if len(user.Username) == 0 {
		rest.WriteBadRequest(w, "Username is required", "")
		return
	}
	if len(user.Email) == 0 {
		rest.WriteBadRequest(w, "Email is required", "")
		return
	}

	createdUser, err := h.userService.CreateUser(r.Context(), dtoToUser(user))
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	log.Tracef("Created user: %+v", createdUser)

	rest.WriteJSON(w, http.StatusCreated, userToDTO(&createdUser))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	log.Trace("Deleting user")

	vars := mux.Vars(r)
	username := vars["username"]
	if err := h.userService.DeleteUser(r.Context(), username); err != nil {
		rest.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func userToDTO(user *User) UserDTO {
	return UserDTO{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Phone:       user.Phone,
	}
}

func dtoToUser(userDTO UserDTO) User {
	return User{
		Username:    userDTO.Username,
		DisplayName: userDTO.DisplayName,
		Email:       userDTO.Email,
		Phone:       userDTO.Phone,
	}
}
