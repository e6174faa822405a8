package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pjrivas16-ctrl/datos-aqg-app/config"
	"github.com/pjrivas16-ctrl/datos-aqg-app/pricing"
	"github.com/pjrivas16-ctrl/datos-aqg-app/utils"
)

// GetProfile returns the acting user's profile and promotion state
func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	promo := user.Promotion()
	utils.Success(c, "Profile retrieved", gin.H{
		"user":             user,
		"promotion":        promo,
		"promotion_active": promo.ActiveAt(time.Now()),
	})
}

// UpdateProfileRequest represents the profile update request body
type UpdateProfileRequest struct {
	CompanyName string `json:"company_name"`
	PreparedBy  string `json:"prepared_by"`
	FiscalName  string `json:"fiscal_name"`
	Branch      string `json:"branch"`
}

// UpdateProfile updates the quote header fields of the acting user
func UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.CompanyName != "" {
		user.CompanyName = utils.SanitizeString(req.CompanyName)
	}
	user.PreparedBy = utils.SanitizeString(req.PreparedBy)
	user.FiscalName = utils.SanitizeString(req.FiscalName)
	user.Branch = utils.SanitizeString(req.Branch)

	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to update profile for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update profile", nil)
		return
	}

	utils.Success(c, utils.MsgUpdateSuccess, gin.H{"user": user})
}

// ActivatePromotion activates the welcome promotion for the acting user once
func ActivatePromotion(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if user.PromotionID != "" {
		utils.Conflict(c, "Promotion already activated", gin.H{
			"promotion":        user.Promotion(),
			"promotion_active": user.Promotion().ActiveAt(time.Now()),
		})
		return
	}

	now := time.Now()
	user.PromotionID = pricing.PromoID
	user.PromotionActivatedAt = &now
	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to activate promotion for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to activate promotion", nil)
		return
	}

	utils.LogInfo("Promotion %s activated for user %d", pricing.PromoID, user.ID)
	utils.Success(c, "Promotion activated", gin.H{
		"promotion":     user.Promotion(),
		"duration_days": pricing.PromoDurationDays,
	})
}
