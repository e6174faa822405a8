package controllers

import (
	"os"

	"github.com/pjrivas16-ctrl/datos-aqg-app/config"
	"github.com/pjrivas16-ctrl/datos-aqg-app/models"
	"github.com/pjrivas16-ctrl/datos-aqg-app/utils"
)

// CreateSampleAdmin creates the admin account on first start
func CreateSampleAdmin() error {
	var count int64
	if err := config.DB.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123"
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		CompanyName: "AQG Bathrooms (Admin)",
		Email:       "admin@aqg.com",
		Password:    hash,
		PreparedBy:  "Equipo AQG",
		IsAdmin:     true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}

	utils.LogInfo("Sample admin created: %s", admin.Email)
	return nil
}

// SeedDealerAccounts creates the initial dealer accounts when the users table
// is empty. Dealers get a shared bootstrap password from the environment and
// are expected to change it; accounts are skipped entirely when the variable
// is unset.
func SeedDealerAccounts() error {
	seedPassword := os.Getenv("DEALER_SEED_PASSWORD")
	if seedPassword == "" {
		return nil
	}

	dealers := []models.User{
		{CompanyName: "JAIME", Email: "jrodriguezrepresentacion@gmail.com"},
		{CompanyName: "SUSANA", Email: "susana.delgado1@yahoo.es"},
		{CompanyName: "FAMILIA FALO", Email: "koneri@koneri.es"},
		{CompanyName: "JAVIER", Email: "javier.tey@aqgbathrooms.com"},
	}

	hash, err := utils.HashPassword(seedPassword)
	if err != nil {
		return err
	}

	for _, dealer := range dealers {
		var count int64
		if err := config.DB.Model(&models.User{}).Where("email = ?", dealer.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		dealer.Password = hash
		if err := config.DB.Create(&dealer).Error; err != nil {
			return err
		}
		utils.LogInfo("Seeded dealer account: %s", dealer.Email)
	}

	return nil
}
