package domain

type (
	UserId   = int64
	Username = string
	Password = string

	GroupId   = int64
	GroupSlug = string

	PostId   = int64
	PostText = string
)
