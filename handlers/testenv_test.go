package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

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

const (
	testWaiterPassphrase  = "waiter-secret"
	testManagerPassphrase = "manager-secret"
)

func setupTest(t *testing.T) *gin.Engine {
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
	config.C = &config.Config{
		BcryptCost:        bcrypt.MinCost,
		WaiterPassphrase:  testWaiterPassphrase,
		ManagerPassphrase: testManagerPassphrase,
	}

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func seedUser(t *testing.T, email string, role models.Role) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	return &user
}

func seedMenuItem(t *testing.T, name string, price float64, available bool) *models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Name:        name,
		Description: name + " description",
		Price:       price,
		IsAvailable: available,
	}
	require.NoError(t, config.DB.Create(&item).Error)
	return &item
}

func seedOrder(t *testing.T, user *models.User, menuItem *models.MenuItem) *models.Order {
	t.Helper()
	order := models.Order{
		Address: "1 Main St",
		Date:    time.Now().Add(24 * time.Hour),
		Status:  models.StatusPending,
		UserID:  user.ID,
		Items: []models.OrderItem{
			{MenuItemID: menuItem.ID, Quantity: 2},
		},
	}
	require.NoError(t, config.DB.Create(&order).Error)
	return &order
}
