package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pjrivas16-ctrl/datos-aqg-app/config"
	"github.com/pjrivas16-ctrl/datos-aqg-app/models"
	"github.com/pjrivas16-ctrl/datos-aqg-app/utils"
)

// CreateQuoteRequest represents the quote creation request body
type CreateQuoteRequest struct {
	Type             string             `json:"type"`
	CustomerName     string             `json:"customer_name"`
	ProjectReference string             `json:"project_reference"`
	FiscalName       string             `json:"fiscal_name"`
	Branch           string             `json:"branch"`
	DeliveryAddress  string             `json:"delivery_address"`
	Items            []ItemRequest      `json:"items"`
	Discounts        map[string]float64 `json:"discounts"`
}

// CreateQuote saves a new quote with its items and discounts
func CreateQuote(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Type == "" {
		req.Type = models.QuoteTypeInternal
	}
	if req.Type != models.QuoteTypeInternal && req.Type != models.QuoteTypeCustomer {
		utils.BadRequest(c, "Quote type must be internal or customer", nil)
		return
	}
	if len(req.Items) == 0 {
		utils.BadRequest(c, "A quote needs at least one item", nil)
		return
	}
	if len(req.Items) > utils.MaxQuoteItems {
		utils.BadRequest(c, "Too many items", nil)
		return
	}

	quote := models.Quote{
		UserID:           user.ID,
		Type:             req.Type,
		CustomerName:     utils.SanitizeString(req.CustomerName),
		ProjectReference: utils.SanitizeString(req.ProjectReference),
		FiscalName:       utils.SanitizeString(req.FiscalName),
		Branch:           utils.SanitizeString(req.Branch),
		DeliveryAddress:  utils.SanitizeString(req.DeliveryAddress),
	}

	for _, itemReq := range req.Items {
		item, appErr := buildQuoteItem(itemReq)
		if appErr != nil {
			utils.Error(c, appErr.Code, appErr.Message, nil)
			return
		}
		quote.Items = append(quote.Items, *item)
	}

	for line, percent := range req.Discounts {
		quote.Discounts = append(quote.Discounts, models.QuoteDiscount{
			ProductLine: line,
			Percent:     clampDiscountPercent(percent),
		})
	}

	if err := config.DB.Create(&quote).Error; err != nil {
		utils.LogError("Failed to create quote for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to save quote", nil)
		return
	}

	if err := recalcQuoteTotals(&quote, &user); err != nil {
		utils.LogError("Failed to calculate totals for quote %d: %v", quote.ID, err)
		utils.InternalServerError(c, "Failed to calculate totals", nil)
		return
	}

	utils.LogInfo("Quote %d created for user %d with %d items", quote.ID, user.ID, len(quote.Items))
	utils.Created(c, utils.MsgCreateSuccess, gin.H{"quote": quote})
}

// ListQuotes returns the acting user's quotes, newest first
func ListQuotes(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	pagination := utils.NewPagination(c)

	var total int64
	query := config.DB.Model(&models.Quote{}).Where("user_id = ?", user.ID)
	if quoteType := c.Query("type"); quoteType != "" {
		query = query.Where("type = ?", quoteType)
	}
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch quotes", nil)
		return
	}
	pagination.SetTotal(total)

	var quotes []models.Quote
	if err := query.Preload("Items").Preload("Discounts").
		Order("created_at DESC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&quotes).Error; err != nil {
		utils.LogError("Failed to list quotes for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch quotes", nil)
		return
	}

	utils.SendPaginatedResponse(c, quotes, pagination)
}

// GetQuote returns one quote with per-item price details
func GetQuote(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	quote, err := getQuoteForUser(c.Param("id"), user.ID)
	if err != nil {
		utils.NotFound(c, "Quote not found")
		return
	}

	utils.Success(c, "Quote retrieved", gin.H{
		"quote": quote,
		"lines": quoteItemDetails(quote, &user),
	})
}

// UpdateQuoteDetailsRequest represents the client details update body
type UpdateQuoteDetailsRequest struct {
	CustomerName     string `json:"customer_name"`
	ProjectReference string `json:"project_reference"`
	FiscalName       string `json:"fiscal_name"`
	Branch           string `json:"branch"`
	DeliveryAddress  string `json:"delivery_address"`
}

// UpdateQuoteDetails saves the client-facing header fields of a quote
func UpdateQuoteDetails(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	quote, err := getQuoteForUser(c.Param("id"), user.ID)
	if err != nil {
		utils.NotFound(c, "Quote not found")
		return
	}

	var req UpdateQuoteDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	quote.CustomerName = utils.SanitizeString(req.CustomerName)
	quote.ProjectReference = utils.SanitizeString(req.ProjectReference)
	quote.FiscalName = utils.SanitizeString(req.FiscalName)
	quote.Branch = utils.SanitizeString(req.Branch)
	quote.DeliveryAddress = utils.SanitizeString(req.DeliveryAddress)

	if err := config.DB.Save(quote).Error; err != nil {
		utils.LogError("Failed to update quote %d details: %v", quote.ID, err)
		utils.InternalServerError(c, "Failed to update quote", nil)
		return
	}

	utils.Success(c, utils.MsgUpdateSuccess, gin.H{"quote": quote})
}

// MarkQuoteOrdered stamps a quote as placed with the factory
func MarkQuoteOrdered(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	quote, err := getQuoteForUser(c.Param("id"), user.ID)
	if err != nil {
		utils.NotFound(c, "Quote not found")
		return
	}

	if quote.OrderedAt != nil {
		utils.Conflict(c, "Quote already ordered", gin.H{"ordered_at": quote.OrderedAt})
		return
	}

	now := time.Now()
	quote.OrderedAt = &now
	if err := config.DB.Save(quote).Error; err != nil {
		utils.LogError("Failed to mark quote %d as ordered: %v", quote.ID, err)
		utils.InternalServerError(c, "Failed to update quote", nil)
		return
	}

	utils.LogInfo("Quote %d marked as ordered", quote.ID)
	utils.Success(c, "Quote marked as ordered", gin.H{"quote": quote})
}

// DuplicateQuote copies a quote into a new editable one with fresh item keys
func DuplicateQuote(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	source, err := getQuoteForUser(c.Param("id"), user.ID)
	if err != nil {
		utils.NotFound(c, "Quote not found")
		return
	}

	copyQuote := models.Quote{
		UserID:           user.ID,
		Type:             source.Type,
		CustomerName:     source.CustomerName,
		ProjectReference: source.ProjectReference,
		FiscalName:       source.FiscalName,
		Branch:           source.Branch,
		DeliveryAddress:  source.DeliveryAddress,
	}
	for _, item := range source.Items {
		dup := item
		dup.ID = 0
		dup.QuoteID = 0
		dup.ItemKey = uuid.New().String()
		copyQuote.Items = append(copyQuote.Items, dup)
	}
	for _, discount := range source.Discounts {
		copyQuote.Discounts = append(copyQuote.Discounts, models.QuoteDiscount{
			ProductLine: discount.ProductLine,
			Percent:     discount.Percent,
		})
	}

	if err := config.DB.Create(&copyQuote).Error; err != nil {
		utils.LogError("Failed to duplicate quote %d: %v", source.ID, err)
		utils.InternalServerError(c, "Failed to duplicate quote", nil)
		return
	}

	if err := recalcQuoteTotals(&copyQuote, &user); err != nil {
		utils.LogError("Failed to calculate totals for quote %d: %v", copyQuote.ID, err)
		utils.InternalServerError(c, "Failed to calculate totals", nil)
		return
	}

	utils.LogInfo("Quote %d duplicated as %d", source.ID, copyQuote.ID)
	utils.Created(c, "Quote duplicated", gin.H{"quote": copyQuote})
}

// DeleteQuote removes a quote and its lines
func DeleteQuote(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	quote, err := getQuoteForUser(c.Param("id"), user.ID)
	if err != nil {
		utils.NotFound(c, "Quote not found")
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}
	if err := tx.Where("quote_id = ?", quote.ID).Delete(&models.QuoteItem{}).Error; err != nil {
		tx.Rollback()
		utils.InternalServerError(c, "Failed to delete quote", nil)
		return
	}
	if err := tx.Where("quote_id = ?", quote.ID).Delete(&models.QuoteDiscount{}).Error; err != nil {
		tx.Rollback()
		utils.InternalServerError(c, "Failed to delete quote", nil)
		return
	}
	if err := tx.Delete(quote).Error; err != nil {
		tx.Rollback()
		utils.InternalServerError(c, "Failed to delete quote", nil)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to delete quote", nil)
		return
	}

	utils.LogInfo("Quote %d deleted by user %d", quote.ID, user.ID)
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
