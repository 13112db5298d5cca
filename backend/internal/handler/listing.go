package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	internal_utils "github.com/itchan-dev/yatube/backend/internal/utils"
	"github.com/itchan-dev/yatube/shared/api"
	"github.com/itchan-dev/yatube/shared/utils"
)

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	res, err := h.listing.Index(r.Context(), parsePage(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.PageResponse{Page: res.Page})
}

func (h *Handler) GroupPosts(w http.ResponseWriter, r *http.Request) {
	res, err := h.listing.Group(r.Context(), chi.URLParam(r, "slug"), parsePage(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.GroupPageResponse{Group: res.Group, Page: res.Page})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	res, err := h.listing.Profile(r.Context(), chi.URLParam(r, "username"), parsePage(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.ProfilePageResponse{Author: res.Author, PostCount: res.PostCount, Page: res.Page})
}

func (h *Handler) PostDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	res, err := h.listing.Detail(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.PostDetailResponse{
		Post:      res.Post,
		TextHTML:  internal_utils.DisplayHTML(res.Post.Text),
		PostCount: res.AuthorPostCount,
	})
}
