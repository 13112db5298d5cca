package api

import "github.com/itchan-dev/yatube/shared/domain"

type CreateGroupRequest struct {
	Slug        string `json:"slug" validate:"required,max=50"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
}

type GroupListResponse struct {
	Groups []domain.Group `json:"groups"`
}
