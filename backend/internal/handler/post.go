package handler

import (
	"net/http"

	"github.com/itchan-dev/yatube/shared/api"
	"github.com/itchan-dev/yatube/shared/domain"
	mw "github.com/itchan-dev/yatube/shared/middleware"
	"github.com/itchan-dev/yatube/shared/middleware/metrics"
	"github.com/itchan-dev/yatube/shared/utils"
)

const (
	opCreate = "create"
	opEdit   = "edit"

	// a rune escaped as a JSON surrogate pair takes 12 bytes
	maxJSONBytesPerRune = 12
	formOverheadBytes   = 1024
)

func (h *Handler) limitPostBody(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(h.cfg.Public.MaxPostLength)*maxJSONBytesPerRune+formOverheadBytes)
}

// CreatePostForm returns the empty create form.
func (h *Handler) CreatePostForm(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, api.PostFormResponse{IsEdit: false})
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	h.limitPostBody(w, r)
	var body api.PostRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	res, err := h.post.Create(r.Context(), mw.GetUserFromContext(r), domain.PostInput{Text: body.Text, GroupId: body.GroupId})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	metrics.RecordMutation(opCreate, string(res.Outcome))
	writeMutationResult(w, r, res)
}

// EditPostForm returns the current text and group for the author, others are sent to the post page.
func (h *Handler) EditPostForm(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	res, err := h.post.EditForm(r.Context(), mw.GetUserFromContext(r), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if res.Outcome == domain.OutcomeDenied {
		http.Redirect(w, r, postURL(res.Post.Id), http.StatusSeeOther)
		return
	}

	form := api.PostFormResponse{IsEdit: true, Text: res.Post.Text}
	if res.Post.Group != nil {
		form.GroupId = &res.Post.Group.Id
	}
	utils.WriteJSON(w, http.StatusOK, form)
}

func (h *Handler) EditPost(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.limitPostBody(w, r)
	var body api.PostRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	res, err := h.post.Edit(r.Context(), mw.GetUserFromContext(r), id, domain.PostInput{Text: body.Text, GroupId: body.GroupId})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	metrics.RecordMutation(opEdit, string(res.Outcome))
	writeMutationResult(w, r, res)
}

// writeMutationResult maps the gate's outcome onto the response:
// applied create 201 with Location of the author's profile, applied edit 200 with Location of the post,
// denied 303 to the post, rejected 400 with the form to re-present.
func writeMutationResult(w http.ResponseWriter, r *http.Request, res domain.MutationResult) {
	switch res.Outcome {
	case domain.OutcomeApplied:
		status := http.StatusCreated
		location := profileURL(res.Post.Author.Username)
		if res.IsEdit {
			status = http.StatusOK
			location = postURL(res.Post.Id)
		}
		w.Header().Set("Location", location)
		utils.WriteJSON(w, status, res.Post)
	case domain.OutcomeDenied:
		http.Redirect(w, r, postURL(res.Post.Id), http.StatusSeeOther)
	case domain.OutcomeRejected:
		utils.WriteJSON(w, http.StatusBadRequest, api.PostFormResponse{
			IsEdit:  res.IsEdit,
			Text:    res.Input.Text,
			GroupId: res.Input.GroupId,
			Errors:  res.Errors,
		})
	}
}
