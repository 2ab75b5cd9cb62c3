package migrations

import (
	"context"
	"embed"
	"fmt"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/config"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrationsFS embed.FS

func setup(driver string) (string, error) {
	goose.SetBaseFS(migrationsFS)
	switch driver {
	case config.DriverPostgres:
		return "postgres", goose.SetDialect("postgres")
	case config.DriverSQLite:
		return "sqlite", goose.SetDialect("sqlite3")
	default:
		return "", fmt.Errorf("unsupported migration driver: %s", driver)
	}
}

func Up(ctx context.Context, db *gorm.DB, driver string) error {
	dir, err := setup(driver)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return goose.UpContext(ctx, sqlDB, dir)
}

func Down(ctx context.Context, db *gorm.DB, driver string) error {
	dir, err := setup(driver)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return goose.DownContext(ctx, sqlDB, dir)
}

func Status(ctx context.Context, db *gorm.DB, driver string) error {
	dir, err := setup(driver)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return goose.StatusContext(ctx, sqlDB, dir)
}

func Version(ctx context.Context, db *gorm.DB, driver string) (int64, error) {
	if _, err := setup(driver); err != nil {
		return 0, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, sqlDB)
}
