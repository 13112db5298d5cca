package service

import (
	"context"
	"net/http"

	"github.com/itchan-dev/yatube/shared/domain"
	"github.com/itchan-dev/yatube/shared/errors"
	"github.com/itchan-dev/yatube/shared/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, creds domain.Credentials, admin bool) (domain.UserId, error)
	Login(ctx context.Context, creds domain.Credentials) (string, error)
}

type AuthStorage interface {
	SaveUser(ctx context.Context, user domain.User) (domain.UserId, error)
	UserByUsername(ctx context.Context, username domain.Username) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

var errInvalidCredentials = &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}

// Register saves a new account. Duplicate usernames are rejected by storage with 409.
func (a *Auth) Register(ctx context.Context, creds domain.Credentials, admin bool) (domain.UserId, error) {
	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return 0, err
	}

	id, err := a.storage.SaveUser(ctx, domain.User{Username: creds.Username, PassHash: string(passHash), Admin: admin})
	if err != nil {
		return 0, err
	}
	logger.Log.Info("user registered", "user_id", id, "username", creds.Username, "admin", admin)
	return id, nil
}

// Login checks credentials and returns access token.
// Unknown username and wrong password look the same to the caller.
func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	user, err := a.storage.UserByUsername(ctx, creds.Username)
	if err != nil {
		// to not leak existing users
		if errors.IsNotFound(err) {
			return "", errInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		logger.Log.Info("password verification failed", "user_id", user.Id)
		return "", errInvalidCredentials
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}
	return token, nil
}
