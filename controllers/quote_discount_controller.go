package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/pjrivas16-ctrl/datos-aqg-app/config"
	"github.com/pjrivas16-ctrl/datos-aqg-app/models"
	"github.com/pjrivas16-ctrl/datos-aqg-app/pricing"
	"github.com/pjrivas16-ctrl/datos-aqg-app/utils"
)

// clampDiscountPercent keeps a line discount inside [0,100]. The engine
// itself does not clamp, so out-of-range input would invert into a surcharge;
// the boundary is the place to stop that.
func clampDiscountPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// SetQuoteDiscountsRequest represents the discount map replacement body
type SetQuoteDiscountsRequest struct {
	Discounts map[string]float64 `json:"discounts" binding:"required"`
}

// SetQuoteDiscounts replaces the per-product-line discount map of a quote
func SetQuoteDiscounts(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	quote, err := getQuoteForUser(c.Param("id"), user.ID)
	if err != nil {
		utils.NotFound(c, "Quote not found")
		return
	}

	var req SetQuoteDiscountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	for line := range req.Discounts {
		if !pricing.LineSupported(line) {
			utils.BadRequest(c, "Unknown product line: "+line, nil)
			return
		}
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}
	if err := tx.Where("quote_id = ?", quote.ID).Delete(&models.QuoteDiscount{}).Error; err != nil {
		tx.Rollback()
		utils.InternalServerError(c, "Failed to update discounts", nil)
		return
	}

	quote.Discounts = nil
	for line, percent := range req.Discounts {
		discount := models.QuoteDiscount{
			QuoteID:     quote.ID,
			ProductLine: line,
			Percent:     clampDiscountPercent(percent),
		}
		if err := tx.Create(&discount).Error; err != nil {
			tx.Rollback()
			utils.InternalServerError(c, "Failed to update discounts", nil)
			return
		}
		quote.Discounts = append(quote.Discounts, discount)
	}

	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to update discounts", nil)
		return
	}

	if err := recalcQuoteTotals(quote, &user); err != nil {
		utils.LogError("Failed to recalculate totals for quote %d: %v", quote.ID, err)
		utils.InternalServerError(c, "Failed to update totals", nil)
		return
	}

	utils.LogInfo("Discounts updated for quote %d", quote.ID)
	utils.Success(c, utils.MsgUpdateSuccess, gin.H{
		"quote": quote,
		"lines": quoteItemDetails(quote, &user),
	})
}
