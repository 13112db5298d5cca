package api

import (
	"github.com/itchan-dev/yatube/shared/domain"
)

// Request DTOs

// PostRequest is the create/edit form. Text is checked by the service, not by tags,
// so that an empty text produces a re-rendered form instead of a bare 400.
type PostRequest struct {
	Text    string          `json:"text"`
	GroupId *domain.GroupId `json:"group,omitempty"`
}

// Response DTOs

type PageResponse struct {
	domain.Page
}

type GroupPageResponse struct {
	Group domain.Group `json:"group"`
	domain.Page
}

type ProfilePageResponse struct {
	Author    domain.User `json:"author"`
	PostCount int         `json:"post_count"`
	domain.Page
}

type PostDetailResponse struct {
	Post      domain.Post `json:"post"`
	TextHTML  string      `json:"text_html"` // sanitized text for display, post.text stays raw
	PostCount int         `json:"post_count"` // number of posts by the same author
}

// PostFormResponse is returned when the form has to be (re)presented: on GET edit and on validation failure.
type PostFormResponse struct {
	IsEdit  bool                    `json:"is_edit"`
	Text    string                  `json:"text"`
	GroupId *domain.GroupId         `json:"group,omitempty"`
	Errors  domain.ValidationErrors `json:"errors,omitempty"`
}
