package handler

import (
	"encoding/json"
	"net/http"

	"members_roulette/internal/app/service"
	"members_roulette/internal/common"
	"members_roulette/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listUsers)
	r.Post("/", h.createUser)
	r.Put("/{userID}", h.updateUser)
	r.Delete("/{userID}", h.deleteUser)
}

func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req service.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Requisição inválida: "+err.Error())
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	type createUserResponse struct {
		Message string                 `json:"message"`
		User    *service.SanitizedUser `json:"user"`
	}
	common.RespondWithJSON(w, http.StatusCreated, createUserResponse{
		Message: "Usuário criado com sucesso",
		User:    user,
	})
}

func (h *UserHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req service.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Requisição inválida: "+err.Error())
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), userID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	type updateUserResponse struct {
		Message string      `json:"message"`
		User    *model.User `json:"user"`
	}
	common.RespondWithJSON(w, http.StatusOK, updateUserResponse{
		Message: "Usuário atualizado com sucesso",
		User:    user,
	})
}

func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := h.userService.DeleteUser(r.Context(), userID); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Usuário removido com sucesso")
}
