package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/inventoryrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/adapters/out/postgres/storerepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderQueriesIntegrationTestSuite provides integration tests for the
// order read side using PostgreSQL containers.
type OrderQueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderItemQueryHandler
}

func (suite *OrderQueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&storerepo.StoreDTO{},
		&productrepo.ProductDTO{},
		&inventoryrepo.InventoryDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	))
}

func (suite *OrderQueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE stores, products, inventories, orders, order_items").Error)

	suite.handler = queries.NewGetOrderItemQueryHandler(suite.db)
}

func (suite *OrderQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// seedOrderItem inserts a full store/product/inventory/order chain for the
// customer and returns the line's identifier.
func (suite *OrderQueriesIntegrationTestSuite) seedOrderItem(customerID kernel.UUID) kernel.UUID {
	storeID := kernel.NewUUID()
	productID := kernel.NewUUID()
	inventoryID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	suite.Require().NoError(suite.db.Create(&storerepo.StoreDTO{
		ID:      storeID.Bytes(),
		OwnerID: uuid.New(),
		Name:    "Workshop North",
	}).Error)
	suite.Require().NoError(suite.db.Create(&productrepo.ProductDTO{
		ID:          productID.Bytes(),
		StoreID:     storeID.Bytes(),
		InventoryID: inventoryID.Bytes(),
		Name:        "Walnut desk",
	}).Error)
	suite.Require().NoError(suite.db.Create(&inventoryrepo.InventoryDTO{
		ID:        inventoryID.Bytes(),
		ProductID: productID.Bytes(),
		Stock:     10,
		Price:     45900,
	}).Error)
	suite.Require().NoError(suite.db.Create(&orderrepo.OrderDTO{
		ID:         orderID.Bytes(),
		CustomerID: customerID.Bytes(),
	}).Error)
	suite.Require().NoError(suite.db.Create(&orderrepo.OrderItemDTO{
		ID:              itemID.Bytes(),
		OrderID:         orderID.Bytes(),
		InventoryID:     inventoryID.Bytes(),
		Quantity:        2,
		Price:           45900,
		Status:          int(order.Paid),
		Receiver:        "Jane Doe",
		DeliveryAddress: "12 Elm Street",
	}).Error)

	return itemID
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrderItem_Owner() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	itemID := suite.seedOrderItem(customerID)

	query, err := queries.NewGetOrderItemQuery(customerID, itemID)
	suite.Require().NoError(err)

	item, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("Walnut desk", item.ProductName)
	suite.Equal(2, item.Quantity)
	suite.Equal("Paid", item.Status)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrderItem_ForeignCustomer_Unauthorized() {
	ctx := context.Background()
	itemID := suite.seedOrderItem(kernel.NewUUID())

	query, err := queries.NewGetOrderItemQuery(kernel.NewUUID(), itemID)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrUnauthorized)
	suite.NotErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrderItem_MissingLine_NotFound() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	suite.seedOrderItem(customerID)

	query, err := queries.NewGetOrderItemQuery(customerID, kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	suite.Run(t, new(OrderQueriesIntegrationTestSuite))
}
