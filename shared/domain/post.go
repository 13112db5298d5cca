package domain

import (
	"fmt"
	"time"
)

type Post struct {
	Id        PostId    `json:"id"`
	Text      PostText  `json:"text"`
	Author    User      `json:"author"`
	Group     *Group    `json:"group,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PostInput is what a user submits through the create/edit form.
type PostInput struct {
	Text    PostText `json:"text"`
	GroupId *GroupId `json:"group,omitempty"`
}

// to iterate thru layers: handler -> service -> storage
type PostCreationData struct {
	Author  User
	Text    PostText
	GroupId *GroupId
}

// PostEditData holds the only fields an edit is allowed to touch.
type PostEditData struct {
	Text    PostText
	GroupId *GroupId
}

// PostFilter narrows a listing. At most one of GroupSlug and AuthorUsername is set.
type PostFilter struct {
	GroupSlug      GroupSlug
	AuthorUsername Username
	Ascending      bool
}

func (f PostFilter) Match(p Post) bool {
	if f.GroupSlug != "" && (p.Group == nil || p.Group.Slug != f.GroupSlug) {
		return false
	}
	if f.AuthorUsername != "" && p.Author.Username != f.AuthorUsername {
		return false
	}
	return true
}

// for debug
func (p *Post) String() string {
	group := "-"
	if p.Group != nil {
		group = p.Group.Slug
	}
	return fmt.Sprintf("[id:%d, author:%s, group:%s, created:%s, text:%q]", p.Id, p.Author.Username, group, p.CreatedAt.Format(time.StampMilli), p.Text)
}
