package queries_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/vkotsiuba99/rust-example-app/internal/adapters/out/postgres/productrepo"
	"github.com/vkotsiuba99/rust-example-app/internal/core/application/usecases/queries"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/kernel"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetProductsQueryHandlerTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	handler   queries.GetProductsQueryHandler
}

func (suite *GetProductsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetProductsQueryHandler(db)
}

func (suite *GetProductsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetProductsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetProductsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_WithProducts_ReturnsAllProductsOrderedByID() {
	products := suite.createTestProducts()
	suite.saveProducts(products)

	query := queries.NewGetProductsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	expected := slices.Clone(products)
	slices.SortFunc(expected, func(a, b *product.Product) int {
		return a.ID().Compare(b.ID())
	})

	for i, p := range expected {
		suite.Equal(p.ID(), result[i].ID)
		suite.Equal(p.Title(), result[i].Title)
		suite.InEpsilon(p.Price(), result[i].Price, 0.0001)
	}
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetProductsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetProductsQueryIsNotConstructed)
}

func (suite *GetProductsQueryHandlerTestSuite) createTestProducts() []*product.Product {
	titles := []struct {
		title string
		price float64
	}{
		{"Green Apple", 1.5},
		{"Banana", 0.75},
		{"Mango", 2.25},
	}

	products := make([]*product.Product, 0, len(titles))
	for _, tc := range titles {
		aProduct, err := product.NewProduct(kernel.NewNextIDProvider[product.Product](), tc.title, tc.price)
		suite.Require().NoError(err)
		products = append(products, aProduct)
	}

	return products
}

func (suite *GetProductsQueryHandlerTestSuite) saveProducts(products []*product.Product) {
	repo := productrepo.NewGormProductRepository(suite.db, &mockAggregateTracker{})
	for _, p := range products {
		err := repo.Add(context.Background(), p)
		suite.Require().NoError(err)
	}
}

func TestGetProductsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetProductsQueryHandlerTestSuite))
}
