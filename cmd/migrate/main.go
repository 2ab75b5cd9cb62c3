package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/config"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/migrations"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/shared/connection"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	root := &cli.Command{
		Name:  "migrate",
		Usage: "apply or inspect the database schema",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "driver", Usage: "postgres or sqlite (defaults to DB_DRIVER)"},
			&cli.StringFlag{Name: "sqlite-path", Usage: "SQLite file (defaults to DB_SQLITE_PATH)"},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: withDB(func(ctx context.Context, db *gorm.DB, driver string) error {
					return migrations.Up(ctx, db, driver)
				}),
			},
			{
				Name:  "down",
				Usage: "roll back the latest migration",
				Action: withDB(func(ctx context.Context, db *gorm.DB, driver string) error {
					return migrations.Down(ctx, db, driver)
				}),
			},
			{
				Name:  "status",
				Usage: "print applied and pending migrations",
				Action: withDB(func(ctx context.Context, db *gorm.DB, driver string) error {
					if err := migrations.Status(ctx, db, driver); err != nil {
						return err
					}
					version, err := migrations.Version(ctx, db, driver)
					if err != nil {
						return err
					}
					fmt.Printf("current version: %d\n", version)
					return nil
				}),
			},
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
}

func withDB(run func(ctx context.Context, db *gorm.DB, driver string) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := config.LoadDatabase()
		if err != nil {
			return err
		}
		if v := cmd.String("driver"); v != "" {
			cfg.Driver = v
		}
		if v := cmd.String("sqlite-path"); v != "" {
			cfg.SQLitePath = v
		}

		db, err := connection.ConnectDatabase(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}()

		zap.L().Info("running migrations", zap.String("command", cmd.Name), zap.String("driver", cfg.Driver))
		return run(ctx, db, cfg.Driver)
	}
}
