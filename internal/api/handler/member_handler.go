package handler

import (
	"encoding/json"
	"net/http"

	"members_roulette/internal/app/service"
	"members_roulette/internal/common"

	"github.com/go-chi/chi/v5"
)

type MemberHandler struct {
	memberService *service.MemberService
}

func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

func (h *MemberHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listMembers)
	r.Post("/", h.createMember)
	r.Put("/{memberID}", h.updateMember)
	r.Delete("/{memberID}", h.deleteMember)
}

func (h *MemberHandler) listMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.ListMembers(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, members)
}

func (h *MemberHandler) createMember(w http.ResponseWriter, r *http.Request) {
	var req service.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Requisição inválida: "+err.Error())
		return
	}

	member, err := h.memberService.CreateMember(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, member)
}

func (h *MemberHandler) updateMember(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberID")

	var req service.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Requisição inválida: "+err.Error())
		return
	}

	member, err := h.memberService.UpdateMember(r.Context(), memberID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) deleteMember(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberID")

	if err := h.memberService.DeleteMember(r.Context(), memberID); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Membro deletado com sucesso.")
}
