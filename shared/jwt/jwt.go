package jwt

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/itchan-dev/yatube/shared/domain"
	internal_errors "github.com/itchan-dev/yatube/shared/errors"
	"github.com/itchan-dev/yatube/shared/logger"
)

var errInvalidToken = &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}

// Claims is the identity an access token carries.
type Claims struct {
	UserId   domain.UserId   `json:"uid"`
	Username domain.Username `json:"username"`
	Admin    bool            `json:"admin"`
	jwt.RegisteredClaims
}

type JwtService interface {
	NewToken(user domain.User) (string, error)
	// UserFromToken verifies the token and maps its claims back to a user.
	// Every failure is a 401.
	UserFromToken(token string) (*domain.User, error)
}

type Jwt struct {
	secretKey []byte
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey: []byte(secretKey), ttl: ttl}
}

func (j *Jwt) NewToken(user domain.User) (string, error) {
	claims := Claims{
		UserId:   user.Id,
		Username: user.Username,
		Admin:    user.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("Can't create token")
	}
	return signed, nil
}

func (j *Jwt) UserFromToken(token string) (*domain.User, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		logger.Log.Debug("token rejected", "error", err)
		return nil, errInvalidToken
	}
	if claims.UserId == 0 || claims.Username == "" {
		logger.Log.Warn("token without identity claims")
		return nil, errInvalidToken
	}
	return &domain.User{Id: claims.UserId, Username: claims.Username, Admin: claims.Admin}, nil
}
