package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/WhiskyShelf/configs"
	"droscher.com/WhiskyShelf/pkg/model"
)

type UserKey struct{}

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrUserNotFound    = errors.New("user not found")
	ErrLookupFailed    = errors.New("error authenticating user")
)

type UserRepository interface {
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
}

type Manager struct {
	conf   *configs.Config
	repo   UserRepository
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, repo UserRepository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, repo: repo, logger: logger}
}

// UserFromContext returns the account the middleware resolved for this request.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, found := ctx.Value(UserKey{}).(*model.User)

	return user, found && user != nil
}

// Middleware authenticates the bearer token and stores the matching user in the request context.
func (a *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		user, status, err := a.authenticate(request)
		if err != nil {
			http.Error(writer, err.Error(), status)

			return
		}

		next.ServeHTTP(writer, request.WithContext(context.WithValue(request.Context(), UserKey{}, user)))
	})
}

func (a *Manager) authenticate(request *http.Request) (*model.User, int, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrUnauthenticated, token.Header["alg"])
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	accessToken, err := a.extractTokenFromHeader(request.Header)
	if err != nil {
		return nil, http.StatusUnauthorized, err
	}

	token, err := jwt.ParseWithClaims(*accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Error("error parsing token", zap.Error(err))

		return nil, http.StatusUnauthorized, fmt.Errorf("%w: error parsing token", ErrUnauthenticated)
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		a.logger.Error("invalid token", zap.Any("claims", claims))

		return nil, http.StatusUnauthorized, fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	}

	email, found := claims["email"].(string)
	if !found {
		a.logger.Error("unable to get user id from token", zap.Any("claims", claims))

		return nil, http.StatusUnauthorized, fmt.Errorf("%w: unable to get user id from token", ErrUnauthenticated)
	}

	user, err := a.repo.GetUserFromEmail(request.Context(), email)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && user == nil) {
		return nil, http.StatusNotFound, ErrUserNotFound
	}

	if err != nil {
		a.logger.Error("error authenticating user", zap.Error(err))

		return nil, http.StatusInternalServerError, ErrLookupFailed
	}

	return user, http.StatusOK, nil
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		a.logger.Error("No authorization header found")

		return nil, fmt.Errorf("%w: authorization header not found", ErrUnauthenticated)
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, fmt.Errorf("%w: authorization format must be Bearer {token}", ErrUnauthenticated)
	}

	return &token, nil
}
