package handler

import (
	"net/http"

	"github.com/curioboard/curio/internal/repository"
)

// UserHandler serves account registration and profile reads. User
// operations are plain row reads and writes, so the handler sits directly
// on the repository.
type UserHandler struct {
	repo repository.User
}

func NewUserHandler(repo repository.User) *UserHandler {
	return &UserHandler{repo: repo}
}

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=32,excludesall= "`
}

func (h *UserHandler) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
		return
	}

	user, err := h.repo.CreateUser(r.Context(), req.Username)
	if err != nil {
		respondServiceError(w, r, ErrMsgRegisterUserFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgUserRegisteredSuccess, Data: user})
}

func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	user, err := h.repo.GetUserByID(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetUserFailed, err)
		return
	}
	if user == nil {
		http.Error(w, ErrMsgUserNotFoundHTTP, http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	entries, err := h.repo.GetInventory(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetInventoryFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: entries})
}
