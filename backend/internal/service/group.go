package service

import (
	"context"

	"github.com/itchan-dev/yatube/shared/domain"
)

// to mock service in tests
type GroupService interface {
	Create(ctx context.Context, data domain.GroupCreationData) (domain.Group, error)
	List(ctx context.Context) ([]domain.Group, error)
}

type GroupStorage interface {
	CreateGroup(ctx context.Context, data domain.GroupCreationData) (domain.Group, error)
	Groups(ctx context.Context) ([]domain.Group, error)
}

type GroupValidator interface {
	Slug(slug domain.GroupSlug) error
	Title(title string) error
}

type Group struct {
	storage   GroupStorage
	validator GroupValidator
}

func NewGroup(storage GroupStorage, validator GroupValidator) GroupService {
	return &Group{storage: storage, validator: validator}
}

func (g *Group) Create(ctx context.Context, data domain.GroupCreationData) (domain.Group, error) {
	if err := g.validator.Slug(data.Slug); err != nil {
		return domain.Group{}, err
	}
	if err := g.validator.Title(data.Title); err != nil {
		return domain.Group{}, err
	}
	return g.storage.CreateGroup(ctx, data)
}

// List returns all groups ordered by title
func (g *Group) List(ctx context.Context) ([]domain.Group, error) {
	return g.storage.Groups(ctx)
}
