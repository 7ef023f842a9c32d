package configs

import (
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the store: postgres for the hosted DB, sqlite for
// local dev and tests.
func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.Organization{}, &entity.OrganizationStaff{},
		&entity.Employee{}, &entity.Vendor{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
