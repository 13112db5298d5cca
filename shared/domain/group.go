package domain

// to iterate thru layers: handler -> service -> storage
type GroupCreationData struct {
	Slug        GroupSlug
	Title       string
	Description string
}

type Group struct {
	Id          GroupId   `json:"id"`
	Slug        GroupSlug `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}
