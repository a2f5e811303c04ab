package config

import (
	"log"
	"os"
	"strconv"

	"restaurant-orders-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	DB *gorm.DB
	// C is the loaded configuration, set by Load.
	C *Config
)

// Config holds all operator-supplied settings.
type Config struct {
	Port              string
	DBPath            string
	BcryptCost        int
	WaiterPassphrase  string
	ManagerPassphrase string
	// CredentialsSecret signs the client-side credentials cookie.
	CredentialsSecret []byte
	// StrictStatusFlow enforces the forward-only order lifecycle when set.
	StrictStatusFlow bool
}

// Load reads configuration from the environment. A .env file is applied
// first if present.
func Load() *Config {
	_ = godotenv.Load()

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost)))
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		log.Printf("invalid BCRYPT_COST, falling back to default (%d)", bcrypt.DefaultCost)
		cost = bcrypt.DefaultCost
	}

	C = &Config{
		Port:              getEnv("PORT", "8080"),
		DBPath:            getEnv("DB_PATH", "restaurant_orders.db"),
		BcryptCost:        cost,
		WaiterPassphrase:  os.Getenv("WAITER_PASSPHRASE"),
		ManagerPassphrase: os.Getenv("MANAGER_PASSPHRASE"),
		CredentialsSecret: []byte(getEnv("CREDENTIALS_SECRET", "restaurant_orders_dev_secret")),
		StrictStatusFlow:  getEnv("STRICT_STATUS_FLOW", "") == "true",
	}
	return C
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the sqlite database at path and migrates all models.
func InitDB(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated")
}
