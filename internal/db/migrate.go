package db

import (
	"os"

	"github.com/vitrina/vitrina-backend/internal/app/model"
	"github.com/vitrina/vitrina-backend/pkg/logger"
	"github.com/vitrina/vitrina-backend/pkg/util"
)

// Migrate runs database migrations and seeds the initial admin account.
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Product{},
		&model.ProductOption{},
		&model.ProductOptionValue{},
		&model.ProductVariant{},
		&model.VariantOptionCombination{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedAdminUser(); err != nil {
		logger.Error("Failed to seed admin user", err)
		return err
	}

	logger.Info("Database migrations completed", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// seedAdminUser creates the initial admin account when no users exist.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD.
func seedAdminUser() error {
	var count int64
	if err := DB.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed", nil)
		return nil
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         model.RoleAdmin,
	}
	if err := DB.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("Initial admin user seeded", map[string]interface{}{
		"email": email,
	})
	return nil
}
