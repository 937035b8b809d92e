package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"droscher.com/WhiskyShelf/pkg/backup"
)

type UserTestSuite struct {
	RepositorySuite
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (suite *UserTestSuite) TestGetUserFromEmail() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
		WithArgs("dram@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).AddRow(7, "dram", "dram@example.com"))

	user, err := suite.repository.GetUserFromEmail(context.Background(), "dram@example.com")
	suite.Require().NoError(err)
	suite.Equal(uint(7), user.ID)
	suite.Equal("dram", user.Username)
}

func (suite *UserTestSuite) TestGetUserFromEmail_NotFound() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(gorm.ErrRecordNotFound)

	user, err := suite.repository.GetUserFromEmail(context.Background(), "nobody@example.com")
	suite.Nil(user)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *UserTestSuite) TestAddUser_DuplicateEmail() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "users" (.+)`).WillReturnError(&pgconn.PgError{Code: "23505"})
	suite.mock.ExpectRollback()

	user, err := suite.repository.AddUser(context.Background(), "dram", "dram@example.com")
	suite.Nil(user)
	suite.Require().ErrorIs(err, backup.ErrConflict)
}

func (suite *UserTestSuite) TestListUserIDs() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "users" WHERE "users"."deleted_at" IS NULL ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(7))

	ids, err := suite.repository.ListUserIDs(context.Background())
	suite.Require().NoError(err)
	suite.Equal([]uint{1, 7}, ids)
}
