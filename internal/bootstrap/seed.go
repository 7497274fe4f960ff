package bootstrap

import (
	"barplexity-be/internal/config"
	"barplexity-be/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.BannedEmail{},
		&model.ChatSession{},
		&model.ChatTurn{},
	)
}

// EnsureAdmin guarantees the built-in administrator account exists. An
// already-present admin row is left untouched, so a changed password in the
// environment does not rotate an existing credential.
func EnsureAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", cfg.Auth.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:        cfg.Auth.AdminEmail,
		PasswordHash: string(hash),
		FullName:     cfg.Auth.AdminName,
		Role:         "admin",
	}
	return db.Create(admin).Error
}
