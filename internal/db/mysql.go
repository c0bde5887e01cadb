package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL opens the MySQL database holding the user, program, exercise and
// track tables. The unique indexes on user email and exercise/program names
// back the service layer's conflict handling, so callers run AutoMigrate
// before serving traffic.
func NewMySQL(dsn string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	return gormDB, nil
}
