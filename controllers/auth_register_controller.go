package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/pjrivas16-ctrl/datos-aqg-app/config"
	"github.com/pjrivas16-ctrl/datos-aqg-app/models"
	"github.com/pjrivas16-ctrl/datos-aqg-app/utils"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PreparedBy  string `json:"prepared_by"`
	FiscalName  string `json:"fiscal_name"`
	Branch      string `json:"branch"`
}

// RegisterUser creates a new dealer account
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Registration failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	req.Email = utils.SanitizeString(req.Email)
	req.CompanyName = utils.SanitizeString(req.CompanyName)

	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.BadRequest(c, "Invalid email", msg)
		return
	}
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.LogError("Registration failed - Email already registered: %s", req.Email)
		utils.Conflict(c, "Email already registered", nil)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Registration failed - Could not hash password: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	user := models.User{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Password:    hash,
		PreparedBy:  utils.SanitizeString(req.PreparedBy),
		FiscalName:  utils.SanitizeString(req.FiscalName),
		Branch:      utils.SanitizeString(req.Branch),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Registration failed - Could not create user: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	utils.LogInfo("User registered successfully: %s", user.Email)
	utils.Created(c, utils.MsgRegisterSuccess, gin.H{
		"id":           user.ID,
		"company_name": user.CompanyName,
		"email":        user.Email,
	})
}
