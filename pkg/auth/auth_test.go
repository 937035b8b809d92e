package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"droscher.com/WhiskyShelf/configs"
	"droscher.com/WhiskyShelf/mocks"
	"droscher.com/WhiskyShelf/pkg/auth"
	"droscher.com/WhiskyShelf/pkg/model"
)

const secret = "test-secret"

type AuthTestSuite struct {
	suite.Suite
	users        *mocks.UserRepository
	manager      *auth.Manager
	observedLogs *observer.ObservedLogs
	seen         *model.User
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (suite *AuthTestSuite) SetupTest() {
	suite.users = mocks.NewUserRepository(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	conf := &configs.Config{Auth: configs.Auth{SecretKey: secret}}
	suite.manager = auth.NewAuthManager(conf, suite.users, zap.New(observedZapCore))
	suite.seen = nil
}

func (suite *AuthTestSuite) serve(authorization string) *httptest.ResponseRecorder {
	handler := suite.manager.Middleware(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		suite.seen, _ = auth.UserFromContext(request.Context())
		writer.WriteHeader(http.StatusNoContent)
	}))

	request := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
	if authorization != "" {
		request.Header.Set("Authorization", authorization)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	return recorder
}

func (suite *AuthTestSuite) sign(method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	suite.Require().NoError(err)

	return token
}

func (suite *AuthTestSuite) TestMiddleware_ResolvesUser() {
	user := &model.User{Model: gorm.Model{ID: 7}, Email: "dram@example.com"}
	suite.users.EXPECT().GetUserFromEmail(mock.Anything, "dram@example.com").Return(user, nil)

	token := suite.sign(jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"email": "dram@example.com"})

	response := suite.serve("Bearer " + token)
	suite.Equal(http.StatusNoContent, response.Code)
	suite.Require().NotNil(suite.seen)
	suite.Equal(uint(7), suite.seen.ID)
}

func (suite *AuthTestSuite) TestMiddleware_LowercaseBearer() {
	suite.users.EXPECT().GetUserFromEmail(mock.Anything, "dram@example.com").Return(&model.User{}, nil)

	token := suite.sign(jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"email": "dram@example.com"})

	response := suite.serve("bearer " + token)
	suite.Equal(http.StatusNoContent, response.Code)
}

func (suite *AuthTestSuite) TestMiddleware_MissingHeader() {
	response := suite.serve("")
	suite.Equal(http.StatusUnauthorized, response.Code)
	suite.Nil(suite.seen)
	suite.Equal(1, suite.observedLogs.FilterMessage("No authorization header found").Len())
}

func (suite *AuthTestSuite) TestMiddleware_WrongScheme() {
	response := suite.serve("Basic abc")
	suite.Equal(http.StatusUnauthorized, response.Code)
}

func (suite *AuthTestSuite) TestMiddleware_WrongSecret() {
	token := suite.sign(jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"email": "dram@example.com"})

	response := suite.serve("Bearer " + token)
	suite.Equal(http.StatusUnauthorized, response.Code)
	suite.Equal(1, suite.observedLogs.FilterMessage("error parsing token").Len())
}

func (suite *AuthTestSuite) TestMiddleware_MissingEmailClaim() {
	token := suite.sign(jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "7"})

	response := suite.serve("Bearer " + token)
	suite.Equal(http.StatusUnauthorized, response.Code)
}

func (suite *AuthTestSuite) TestMiddleware_UnknownUser() {
	suite.users.EXPECT().GetUserFromEmail(mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	token := suite.sign(jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"email": "ghost@example.com"})

	response := suite.serve("Bearer " + token)
	suite.Equal(http.StatusNotFound, response.Code)
}

func (suite *AuthTestSuite) TestMiddleware_LookupFailure() {
	suite.users.EXPECT().GetUserFromEmail(mock.Anything, "dram@example.com").Return(nil, errors.New("connection reset"))

	token := suite.sign(jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"email": "dram@example.com"})

	response := suite.serve("Bearer " + token)
	suite.Equal(http.StatusInternalServerError, response.Code)
	suite.Equal(1, suite.observedLogs.FilterMessage("error authenticating user").Len())
}
