package sqlite

import (
	"fmt"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/config"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	db *gorm.DB
)

func open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	// SQLite serializes writers; a single connection avoids
	// SQLITE_BUSY under concurrent requests.
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return gdb, nil
}

// InitDB opens (or creates) the single local database file. Foreign
// keys are enabled on the connection so orders cannot reference rows
// that do not exist, and TranslateError maps unique violations to
// gorm.ErrDuplicatedKey.
func InitDB(cfg *config.SQLiteConfig) (*gorm.DB, error) {
	var err error
	db, err = open(fmt.Sprintf("%s?_foreign_keys=on", cfg.Path))
	if err != nil {
		return nil, err
	}
	return db, nil
}

// InitMaintenanceDB opens the same file without the foreign_keys
// pragma. The maintenance reseed wipes the product table wholesale;
// once orders reference products a foreign-key-checked connection
// rejects that, so the tool needs its own connection. Order rows keep
// their product_id values and dangle until the catalog is reseeded.
func InitMaintenanceDB(cfg *config.SQLiteConfig) (*gorm.DB, error) {
	return open(cfg.Path)
}

// Migrate ensures the three tables exist. Safe to call on every start;
// it never alters existing rows. The unique phone index follows
// allowDuplicatePhones on every run, created or dropped so flipping
// the flag takes effect on an existing database too.
func Migrate(db *gorm.DB, allowDuplicatePhones bool) error {
	if err := db.AutoMigrate(&model.Customer{}, &model.Product{}, &model.Order{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %v", err)
	}

	if allowDuplicatePhones {
		if err := db.Exec("DROP INDEX IF EXISTS uniq_customers_phone").Error; err != nil {
			return fmt.Errorf("failed to drop phone index: %v", err)
		}
	} else {
		if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS uniq_customers_phone ON customers(phone)").Error; err != nil {
			return fmt.Errorf("failed to create phone index: %v", err)
		}
	}

	return nil
}

func GetDB() *gorm.DB {
	return db
}
