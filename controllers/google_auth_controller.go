package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pjrivas16-ctrl/datos-aqg-app/config"
	"github.com/pjrivas16-ctrl/datos-aqg-app/models"
	"github.com/pjrivas16-ctrl/datos-aqg-app/utils"
)

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleLogin redirects the dealer to Google's consent screen
func GoogleLogin(c *gin.Context) {
	if config.GoogleOAuthConfig == nil || config.GoogleOAuthConfig.ClientID == "" {
		utils.InternalServerError(c, "Google login is not configured", nil)
		return
	}
	url := config.GoogleOAuthConfig.AuthCodeURL("state")
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback exchanges the authorization code and signs the dealer in
func GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "Missing authorization code", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c.Request.Context(), code)
	if err != nil {
		utils.LogError("Google code exchange failed: %v", err)
		utils.Unauthorized(c, "Google authentication failed")
		return
	}

	client := config.GoogleOAuthConfig.Client(c.Request.Context(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		utils.LogError("Failed to fetch Google user info: %v", err)
		utils.Unauthorized(c, "Google authentication failed")
		return
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		utils.LogError("Failed to decode Google user info: %v", err)
		utils.Unauthorized(c, "Google authentication failed")
		return
	}

	var user models.User
	err = config.DB.Where("email = ?", info.Email).First(&user).Error
	if err != nil {
		// First Google sign-in creates the dealer account.
		user = models.User{
			CompanyName: info.Name,
			Email:       info.Email,
			GoogleID:    &info.ID,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			utils.LogError("Failed to create Google user: %v", err)
			utils.InternalServerError(c, "Failed to create account", nil)
			return
		}
		utils.LogInfo("Created account via Google login: %s", user.Email)
	} else if user.GoogleID == nil {
		user.GoogleID = &info.ID
		if err := config.DB.Save(&user).Error; err != nil {
			utils.LogError("Failed to link Google account: %v", err)
		}
	}

	if user.IsBlocked {
		utils.Forbidden(c, utils.ErrUserBlocked)
		return
	}

	jwtToken, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate JWT for Google user: %s", user.Email)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.Success(c, utils.MsgLoginSuccess, gin.H{
		"token": jwtToken,
		"user": gin.H{
			"id":           user.ID,
			"company_name": user.CompanyName,
			"email":        user.Email,
		},
	})
}
