package setup

import (
	"github.com/itchan-dev/yatube/backend/internal/handler"
	"github.com/itchan-dev/yatube/backend/internal/service"
	"github.com/itchan-dev/yatube/backend/internal/storage/pg"
	"github.com/itchan-dev/yatube/backend/internal/utils"
	"github.com/itchan-dev/yatube/shared/config"
	"github.com/itchan-dev/yatube/shared/jwt"
	mw "github.com/itchan-dev/yatube/shared/middleware"
	sharedpg "github.com/itchan-dev/yatube/shared/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg, sharedpg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService)
	listing := service.NewListing(storage)
	post := service.NewPost(storage, utils.NewPostValidator(cfg.Public.MaxPostLength))
	group := service.NewGroup(storage, utils.GroupValidator{})

	h := handler.New(auth, listing, post, group, storage, cfg)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: mw.NewAuth(jwtService),
	}, nil
}
