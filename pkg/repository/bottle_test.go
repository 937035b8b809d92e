package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"gorm.io/gorm"

	"droscher.com/WhiskyShelf/pkg/backup"
	"droscher.com/WhiskyShelf/pkg/model"
)

type BottleTestSuite struct {
	RepositorySuite
}

func TestBottleTestSuite(t *testing.T) {
	suite.Run(t, new(BottleTestSuite))
}

func (suite *BottleTestSuite) TestListBottles_PreloadsBrand() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "bottles" WHERE user_id = $1 AND "bottles"."deleted_at" IS NULL ORDER BY id`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "brand_id", "total_volume", "remaining_volume", "status"}).
			AddRow(1, 7, "Glenfiddich 12", 3, 700, 500, "opened").
			AddRow(2, 7, "House Blend", nil, 700, 700, "unopened"))
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "brands" WHERE "brands"."id" = $1 AND "brands"."deleted_at" IS NULL`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Glenfiddich"))

	bottles, err := suite.repository.ListBottles(context.Background(), 7)
	suite.Require().NoError(err)
	suite.Require().Len(bottles, 2)
	suite.Equal("Glenfiddich", bottles[0].BrandLabel())
	suite.Equal(model.StatusOpened, bottles[0].Status)
	suite.Nil(bottles[1].Brand)
}

func (suite *BottleTestSuite) TestFindBottlesByName_MatchesLowercased() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "bottles" WHERE (user_id = $1 AND lower(name) IN ($2,$3)) AND "bottles"."deleted_at" IS NULL ORDER BY id`)).
		WithArgs(7, "macallan 12", "ardbeg 10").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}).AddRow(5, 7, "Macallan 12"))

	bottles, err := suite.repository.FindBottlesByName(context.Background(), 7, []string{" Macallan 12", "ARDBEG 10", "  "})
	suite.Require().NoError(err)
	suite.Require().Len(bottles, 1)
	suite.Equal(uint(5), bottles[0].ID)
}

func (suite *BottleTestSuite) TestFindBottlesByName_NoNamesNoQuery() {
	bottles, err := suite.repository.FindBottlesByName(context.Background(), 7, []string{"", " "})
	suite.Require().NoError(err)
	suite.Empty(bottles)
}

func (suite *BottleTestSuite) TestAddBottles_ReturnsIDs() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "bottles" (.+) VALUES (.+),(.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(40).AddRow(41))
	suite.mock.ExpectCommit()

	bottles := []model.Bottle{
		*model.NewBottle(model.BottleFields{UserID: 7, Name: "Macallan 12"}),
		*model.NewBottle(model.BottleFields{UserID: 7, Name: "Ardbeg 10", BrandID: pointy.Uint(3)}),
	}

	stored, err := suite.repository.AddBottles(context.Background(), bottles)
	suite.Require().NoError(err)
	suite.Require().Len(stored, 2)
	suite.Equal(uint(40), stored[0].ID)
	suite.Equal(uint(41), stored[1].ID)
	suite.Equal(model.DefaultBottleVolume, stored[1].RemainingVolume)
}

func (suite *BottleTestSuite) TestAddBottles_Conflict() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "bottles"`).WillReturnError(&pgconn.PgError{Code: "23505"})
	suite.mock.ExpectRollback()

	stored, err := suite.repository.AddBottles(context.Background(), []model.Bottle{{UserID: 7, Name: "Macallan 12"}})
	suite.Nil(stored)
	suite.Require().ErrorIs(err, backup.ErrConflict)
}

func (suite *BottleTestSuite) TestUpdateBottle_Updates() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^UPDATE "bottles" SET (.+) WHERE (.+)`).WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	bottle := model.NewBottle(model.BottleFields{UserID: 7, Name: "Macallan 12"})
	bottle.ID = 5
	bottle.Brand = &model.Brand{Model: gorm.Model{ID: 3}, Name: "Macallan"}

	suite.Require().NoError(suite.repository.UpdateBottle(context.Background(), bottle))
}

func (suite *BottleTestSuite) TestDeleteBottles() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "bottles" WHERE user_id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 4))
	suite.mock.ExpectCommit()

	deleted, err := suite.repository.DeleteBottles(context.Background(), 7)
	suite.Require().NoError(err)
	suite.Equal(int64(4), deleted)
}

func (suite *BottleTestSuite) TestDeleteBottles_Error() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^DELETE FROM "bottles"`).WillReturnError(gorm.ErrInvalidDB)
	suite.mock.ExpectRollback()

	deleted, err := suite.repository.DeleteBottles(context.Background(), 7)
	suite.Require().ErrorIs(err, gorm.ErrInvalidDB)
	suite.Zero(deleted)
}
