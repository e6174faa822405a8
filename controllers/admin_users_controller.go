package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pjrivas16-ctrl/datos-aqg-app/config"
	"github.com/pjrivas16-ctrl/datos-aqg-app/models"
	"github.com/pjrivas16-ctrl/datos-aqg-app/utils"
)

// AdminListUsers returns the registered dealer accounts, newest first
func AdminListUsers(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.User{})
	if search := utils.SanitizeString(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("email ILIKE ? OR company_name ILIKE ? OR fiscal_name ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch users", nil)
		return
	}
	pagination.SetTotal(total)

	var users []models.User
	if err := query.Order("created_at DESC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&users).Error; err != nil {
		utils.LogError("Failed to list users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", nil)
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, user := range users {
		out = append(out, gin.H{
			"id":               user.ID,
			"email":            user.Email,
			"company_name":     user.CompanyName,
			"fiscal_name":      user.FiscalName,
			"branch":           user.Branch,
			"is_admin":         user.IsAdmin,
			"is_blocked":       user.IsBlocked,
			"promotion_active": user.Promotion().ActiveAt(time.Now()),
			"last_login_at":    user.LastLoginAt,
			"created_at":       user.CreatedAt,
		})
	}

	utils.SendPaginatedResponse(c, out, pagination)
}

// AdminBlockUser toggles the blocked flag of a dealer account
func AdminBlockUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	if user.IsAdmin {
		utils.Forbidden(c, "Admin accounts cannot be blocked")
		return
	}

	user.IsBlocked = !user.IsBlocked
	if err := config.DB.Model(&user).Update("is_blocked", user.IsBlocked).Error; err != nil {
		utils.LogError("Failed to update block state for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update user", nil)
		return
	}

	action := "unblocked"
	if user.IsBlocked {
		action = "blocked"
	}
	utils.LogInfo("User %d %s", user.ID, action)
	utils.Success(c, "User "+action, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"is_blocked": user.IsBlocked,
	})
}
