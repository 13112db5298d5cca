package handler

import (
	"net/http"

	"github.com/itchan-dev/yatube/shared/api"
	"github.com/itchan-dev/yatube/shared/domain"
	"github.com/itchan-dev/yatube/shared/utils"
)

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var body api.CreateGroupRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	group, err := h.group.Create(r.Context(), domain.GroupCreationData{Slug: body.Slug, Title: body.Title, Description: body.Description})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, group)
}

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.group.List(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.GroupListResponse{Groups: groups})
}
