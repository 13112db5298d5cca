package handler

import (
	"context"

	"github.com/itchan-dev/yatube/backend/internal/service"
	"github.com/itchan-dev/yatube/shared/config"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth    service.AuthService
	listing service.ListingService
	post    service.PostService
	group   service.GroupService
	health  HealthChecker
	cfg     *config.Config
}

func New(auth service.AuthService, listing service.ListingService, post service.PostService, group service.GroupService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{
		auth:    auth,
		listing: listing,
		post:    post,
		group:   group,
		health:  health,
		cfg:     cfg,
	}
}
