package main

import (
	"workhub_backend/database"
	"workhub_backend/internal/app"
	"workhub_backend/internal/logger"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := database.Open(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db); err != nil {
			return err
		}
		logger.Info("Migrations applied", "driver", cfg.Database.Driver)
		return nil
	},
}

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the first admin from FIRST_ADMIN_EMAIL / FIRST_ADMIN_PASSWORD",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		application, err := app.New(cfg)
		if err != nil {
			return err
		}
		defer application.Close()

		return application.SeedAdmin()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedAdminCmd)
}
