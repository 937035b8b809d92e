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
	"droscher.com/WhiskyShelf/pkg/repository"
)

type BrandTestSuite struct {
	RepositorySuite
}

func TestBrandTestSuite(t *testing.T) {
	suite.Run(t, new(BrandTestSuite))
}

func (suite *BrandTestSuite) TestListBrands_IncludesDefaults() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "brands" WHERE (owner_id = $1 OR owner_id IS NULL) AND "brands"."deleted_at" IS NULL ORDER BY id`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "country", "owner_id"}).
			AddRow(1, "Glenfiddich", "Scotland", nil).
			AddRow(12, "Kavalan", "Taiwan", 7))

	brands, err := suite.repository.ListBrands(context.Background(), 7)
	suite.Require().NoError(err)
	suite.Len(brands, 2)
	suite.True(brands[0].IsDefault())
	suite.Equal("Kavalan", brands[1].Name)
	suite.Equal(uint(7), *brands[1].OwnerID)
}

func (suite *BrandTestSuite) TestAddBrands_InsertsInOrder() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "brands" ("created_at","updated_at","deleted_at","name","country","region","description","owner_id") VALUES ($1,$2,$3,$4,$5,$6,$7,$8),($9,$10,$11,$12,$13,$14,$15,$16) RETURNING "id"`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, "Ardbeg", "Scotland", "Islay", "", 7,
			sqlmock.AnyArg(), sqlmock.AnyArg(), nil, "Kavalan", "Taiwan", "", "", 7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(20).AddRow(21))
	suite.mock.ExpectCommit()

	brands := []model.Brand{
		{Name: "Ardbeg", Country: "Scotland", Region: "Islay", OwnerID: pointy.Uint(7)},
		{Name: "Kavalan", Country: "Taiwan", OwnerID: pointy.Uint(7)},
	}

	stored, err := suite.repository.AddBrands(context.Background(), brands)
	suite.Require().NoError(err)
	suite.Require().Len(stored, 2)
	suite.Equal(uint(20), stored[0].ID)
	suite.Equal(uint(21), stored[1].ID)
}

func (suite *BrandTestSuite) TestAddBrands_EmptyDoesNothing() {
	stored, err := suite.repository.AddBrands(context.Background(), nil)
	suite.Require().NoError(err)
	suite.Empty(stored)
}

func (suite *BrandTestSuite) TestAddBrands_UniqueViolationIsConflict() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "brands" (.+)`).WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})
	suite.mock.ExpectRollback()

	stored, err := suite.repository.AddBrands(context.Background(), []model.Brand{{Name: "Ardbeg", OwnerID: pointy.Uint(7)}})
	suite.Nil(stored)
	suite.Require().ErrorIs(err, backup.ErrConflict)
	suite.Require().ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (suite *BrandTestSuite) TestAddBrand_RejectsExistingNameIgnoringCase() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "brands" WHERE (lower(name) = $1 AND (owner_id = $2 OR owner_id IS NULL)) AND "brands"."deleted_at" IS NULL`)).
		WithArgs("glenfiddich", 7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	brand, err := suite.repository.AddBrand(context.Background(), model.Brand{Name: " GLENFIDDICH ", OwnerID: pointy.Uint(7)})
	suite.Nil(brand)
	suite.Require().ErrorIs(err, backup.ErrConflict)
	suite.ErrorContains(err, `"GLENFIDDICH"`)
}

func (suite *BrandTestSuite) TestAddBrand_Adds() {
	suite.mock.ExpectQuery(`^SELECT count\(\*\) FROM "brands"`).
		WithArgs("ardbeg", 7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "brands" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(30))
	suite.mock.ExpectCommit()

	brand, err := suite.repository.AddBrand(context.Background(), model.Brand{Name: "Ardbeg", OwnerID: pointy.Uint(7)})
	suite.Require().NoError(err)
	suite.Equal(uint(30), brand.ID)
}

func (suite *BrandTestSuite) TestAddBrand_NeedsOwner() {
	brand, err := suite.repository.AddBrand(context.Background(), model.Brand{Name: "Ardbeg"})
	suite.Nil(brand)
	suite.Require().ErrorIs(err, repository.ErrMissingOwner)
}

func (suite *BrandTestSuite) TestUpdateBrand_Updates() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^UPDATE "brands" SET (.+) WHERE (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	brand := &model.Brand{Model: gorm.Model{ID: 12}, Name: "Kavalan", Region: "Yilan", OwnerID: pointy.Uint(7)}
	suite.Require().NoError(suite.repository.UpdateBrand(context.Background(), brand))
}

func (suite *BrandTestSuite) TestUpdateBrand_DefaultIsReadOnly() {
	brand := &model.Brand{Model: gorm.Model{ID: 1}, Name: "Glenfiddich"}

	err := suite.repository.UpdateBrand(context.Background(), brand)
	suite.Require().ErrorIs(err, repository.ErrReadOnlyBrand)
}

func (suite *BrandTestSuite) TestDeleteBrands_OnlyOwned() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "brands" WHERE owner_id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 3))
	suite.mock.ExpectCommit()

	deleted, err := suite.repository.DeleteBrands(context.Background(), 7)
	suite.Require().NoError(err)
	suite.Equal(int64(3), deleted)
}
