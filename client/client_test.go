package client_test

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"restaurant-orders-api/client"
	"restaurant-orders-api/config"
	"restaurant-orders-api/models"
	"restaurant-orders-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// startServer runs the real API over httptest so the wrappers are tested
// end to end.
func startServer(t *testing.T) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
	))
	config.DB = db
	config.C = &config.Config{BcryptCost: bcrypt.MinCost, ManagerPassphrase: "manager-secret"}

	r := gin.New()
	routes.SetupRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return client.New(srv.URL)
}

func TestClientAuthFlow(t *testing.T) {
	api := startServer(t)

	err := api.Register(client.RegisterInput{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "password",
	})
	require.NoError(t, err)

	rec, err := api.Login("ada@example.com", "password")
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", rec.Email)
	require.Equal(t, models.RoleCustomer, rec.Role)

	_, err = api.Login("ada@example.com", "wrong")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.StatusCode)
	require.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestClientOrderFlow(t *testing.T) {
	api := startServer(t)

	require.NoError(t, api.Register(client.RegisterInput{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "password",
	}))

	item, err := api.CreateMenuItem("Margherita", "Tomato, mozzarella, basil", 9.5)
	require.NoError(t, err)

	menu, err := api.FetchMenu()
	require.NoError(t, err)
	require.Len(t, menu, 1)

	order, err := api.CreateOrder(client.CreateOrderInput{
		Email:   "ada@example.com",
		Address: "1 Main St",
		Date:    "2026-09-10",
		OrderItems: []client.OrderItemInput{
			{MenuItemID: item.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, order.Status)

	got, err := api.GetOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)

	updated, err := api.UpdateOrderStatus(order.ID, models.StatusConfirmed)
	require.NoError(t, err)
	require.Equal(t, models.StatusConfirmed, updated.Status)

	cancelled, err := api.CancelOrder(order.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusCancelled, cancelled.Status)

	mine, err := api.FetchOrders("ada@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	all, err := api.FetchAllOrders()
	require.NoError(t, err)
	require.Len(t, all, 1)

	res, err := api.DeleteOrder(order.ID)
	require.NoError(t, err)
	require.True(t, res.Success)

	_, err = api.GetOrder(order.ID)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.StatusCode)
}
