package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pjrivas16-ctrl/datos-aqg-app/config"
	"github.com/pjrivas16-ctrl/datos-aqg-app/models"
	"github.com/pjrivas16-ctrl/datos-aqg-app/pricing"
	"github.com/pjrivas16-ctrl/datos-aqg-app/utils"
)

// currentUser extracts the authenticated user set by the auth middleware
func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.InternalServerError(c, "Invalid user type", nil)
		return models.User{}, false
	}
	return user, true
}

// getQuoteForUser loads a quote with items and discounts, scoped to its owner
func getQuoteForUser(quoteID string, userID uint) (*models.Quote, error) {
	var quote models.Quote
	err := config.DB.Preload("Items").Preload("Discounts").
		Where("id = ? AND user_id = ?", quoteID, userID).
		First(&quote).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// recalcQuoteTotals recomputes the quote's totals snapshot through the
// pricing engine and persists it.
func recalcQuoteTotals(quote *models.Quote, user *models.User) error {
	now := time.Now()
	pvp, discounted := pricing.AggregateQuoteTotals(
		quote.PricingConfigs(), quote.DiscountMap(), user.Promotion(), now)

	quote.PVPTotal = pvp
	quote.DiscountedTotal = discounted
	quote.FinalTotal = discounted * (1 + pricing.VATRate)

	return config.DB.Model(quote).Updates(map[string]interface{}{
		"pvp_total":        quote.PVPTotal,
		"discounted_total": quote.DiscountedTotal,
		"final_total":      quote.FinalTotal,
	}).Error
}

// quoteItemDetails prices every line of a quote for API responses
func quoteItemDetails(quote *models.Quote, user *models.User) []gin.H {
	now := time.Now()
	discounts := quote.DiscountMap()
	promo := user.Promotion()

	out := make([]gin.H, 0, len(quote.Items))
	for i := range quote.Items {
		item := &quote.Items[i]
		details := pricing.CalculatePriceDetails(item.PricingConfig(), discounts, promo, now)
		out = append(out, gin.H{
			"item":          item,
			"price_details": details,
		})
	}
	return out
}
