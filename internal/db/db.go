package db

import (
	"fmt"

	"dietlog/internal/auth"
	"dietlog/internal/meal"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&auth.User{},
		&meal.Meal{},
	); err != nil {
		return err
	}

	// Meals are always read owner-scoped, summary sorts by date_time.
	stmts := []string{
		`create index if not exists idx_meals_user_datetime on meals(user_id, date_time desc);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
