package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pjrivas16-ctrl/datos-aqg-app/config"
	"github.com/pjrivas16-ctrl/datos-aqg-app/models"
	"github.com/pjrivas16-ctrl/datos-aqg-app/pricing"
	"github.com/pjrivas16-ctrl/datos-aqg-app/utils"
)

// ItemRequest represents one configured item in a request body
type ItemRequest struct {
	ProductLine      string   `json:"product_line" binding:"required"`
	Width            int      `json:"width"`
	Length           int      `json:"length"`
	Quantity         int      `json:"quantity"`
	ModelID          string   `json:"model_id"`
	ColorID          string   `json:"color_id"`
	RALCode          string   `json:"ral_code"`
	BitonoColorID    string   `json:"bitono_color_id"`
	BitonoRALCode    string   `json:"bitono_ral_code"`
	StructFrames     int      `json:"struct_frames"`
	CutWidth         int      `json:"cut_width"`
	CutLength        int      `json:"cut_length"`
	ExtraIDs         []string `json:"extra_ids"`
	KitProductID     string   `json:"kit_product_id"`
	InvoiceReference string   `json:"invoice_reference"`
}

// buildQuoteItem validates an item request and converts it into a model.
// The wizard-level exclusivity rules live here, never in the pricing engine.
func buildQuoteItem(req ItemRequest) (*models.QuoteItem, *utils.AppError) {
	if !pricing.LineSupported(req.ProductLine) {
		return nil, utils.BadRequestError("Unknown product line", nil)
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 {
		return nil, utils.BadRequestError("Quantity must be at least 1", nil)
	}

	if req.ProductLine == pricing.LineKits {
		if req.KitProductID == "" || pricing.KitProductByID(req.KitProductID) == nil {
			return nil, utils.BadRequestError("Unknown kit product", nil)
		}
	} else {
		if req.Width <= 0 || req.Length <= 0 {
			return nil, utils.BadRequestError("Width and length are required", nil)
		}
		if req.KitProductID != "" {
			return nil, utils.BadRequestError("Kit products only apply to the KITS line", nil)
		}
	}

	if req.ModelID != "" && pricing.ModelByID(req.ModelID) == nil {
		return nil, utils.BadRequestError("Unknown model", nil)
	}

	// A custom RAL finish replaces the standard color; both at once is a
	// contradiction the wizard never produces.
	if req.RALCode != "" {
		if req.ColorID != "" {
			return nil, utils.BadRequestError("Choose either a standard color or a RAL code, not both", nil)
		}
		if valid, msg := utils.ValidateRALCode(req.RALCode); !valid {
			return nil, utils.BadRequestError(msg, nil)
		}
	}
	if req.ColorID != "" && pricing.ColorByID(req.ColorID) == nil {
		return nil, utils.BadRequestError("Unknown color", nil)
	}
	if req.BitonoColorID != "" && pricing.ColorByID(req.BitonoColorID) == nil {
		return nil, utils.BadRequestError("Unknown bitone color", nil)
	}

	if req.StructFrames != 0 {
		if req.ProductLine != pricing.LineStructDetail {
			return nil, utils.BadRequestError("Frame count only applies to STRUCT DETAIL", nil)
		}
		if req.StructFrames < 1 || req.StructFrames > 4 {
			return nil, utils.BadRequestError("Frame count must be between 1 and 4", nil)
		}
	}

	seen := make(map[string]bool, len(req.ExtraIDs))
	extras := make([]string, 0, len(req.ExtraIDs))
	for _, id := range req.ExtraIDs {
		if pricing.ExtraByID(id) == nil {
			return nil, utils.BadRequestError("Unknown extra: "+id, nil)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		extras = append(extras, id)
	}

	return &models.QuoteItem{
		ItemKey:          uuid.New().String(),
		ProductLine:      req.ProductLine,
		Width:            req.Width,
		Length:           req.Length,
		Quantity:         req.Quantity,
		ModelID:          req.ModelID,
		ColorID:          req.ColorID,
		RALCode:          utils.SanitizeString(req.RALCode),
		BitonoColorID:    req.BitonoColorID,
		BitonoRALCode:    utils.SanitizeString(req.BitonoRALCode),
		StructFrames:     req.StructFrames,
		CutWidth:         req.CutWidth,
		CutLength:        req.CutLength,
		ExtraIDs:         extras,
		KitProductID:     req.KitProductID,
		InvoiceReference: utils.SanitizeString(req.InvoiceReference),
	}, nil
}

// AddQuoteItem appends a configured item to a quote
func AddQuoteItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	quote, err := getQuoteForUser(c.Param("id"), user.ID)
	if err != nil {
		utils.NotFound(c, "Quote not found")
		return
	}

	if len(quote.Items) >= utils.MaxQuoteItems {
		utils.BadRequest(c, "Quote is full", nil)
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	item, appErr := buildQuoteItem(req)
	if appErr != nil {
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}
	item.QuoteID = quote.ID

	if err := config.DB.Create(item).Error; err != nil {
		utils.LogError("Failed to add item to quote %d: %v", quote.ID, err)
		utils.InternalServerError(c, "Failed to add item", nil)
		return
	}
	quote.Items = append(quote.Items, *item)

	if err := recalcQuoteTotals(quote, &user); err != nil {
		utils.LogError("Failed to recalculate totals for quote %d: %v", quote.ID, err)
		utils.InternalServerError(c, "Failed to update totals", nil)
		return
	}

	utils.LogInfo("Item %s added to quote %d", item.ItemKey, quote.ID)
	utils.Created(c, "Item added", gin.H{"item": item, "quote": quote})
}

// UpdateQuoteItem replaces the configuration of an item, keeping its key
func UpdateQuoteItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	quote, err := getQuoteForUser(c.Param("id"), user.ID)
	if err != nil {
		utils.NotFound(c, "Quote not found")
		return
	}

	itemKey := c.Param("itemKey")
	var existing models.QuoteItem
	if err := config.DB.Where("quote_id = ? AND item_key = ?", quote.ID, itemKey).First(&existing).Error; err != nil {
		utils.NotFound(c, "Item not found")
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	item, appErr := buildQuoteItem(req)
	if appErr != nil {
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}

	// Edits re-open the configuration but the line keeps its identity.
	item.ID = existing.ID
	item.QuoteID = existing.QuoteID
	item.ItemKey = existing.ItemKey

	if err := config.DB.Save(item).Error; err != nil {
		utils.LogError("Failed to update item %s: %v", itemKey, err)
		utils.InternalServerError(c, "Failed to update item", nil)
		return
	}

	for i := range quote.Items {
		if quote.Items[i].ItemKey == itemKey {
			quote.Items[i] = *item
		}
	}
	if err := recalcQuoteTotals(quote, &user); err != nil {
		utils.LogError("Failed to recalculate totals for quote %d: %v", quote.ID, err)
		utils.InternalServerError(c, "Failed to update totals", nil)
		return
	}

	utils.Success(c, utils.MsgUpdateSuccess, gin.H{"item": item, "quote": quote})
}

// RemoveQuoteItem deletes an item from a quote by its key
func RemoveQuoteItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	quote, err := getQuoteForUser(c.Param("id"), user.ID)
	if err != nil {
		utils.NotFound(c, "Quote not found")
		return
	}

	itemKey := c.Param("itemKey")
	result := config.DB.Where("quote_id = ? AND item_key = ?", quote.ID, itemKey).Delete(&models.QuoteItem{})
	if result.Error != nil {
		utils.LogError("Failed to remove item %s: %v", itemKey, result.Error)
		utils.InternalServerError(c, "Failed to remove item", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Item not found")
		return
	}

	remaining := quote.Items[:0]
	for _, item := range quote.Items {
		if item.ItemKey != itemKey {
			remaining = append(remaining, item)
		}
	}
	quote.Items = remaining

	if err := recalcQuoteTotals(quote, &user); err != nil {
		utils.LogError("Failed to recalculate totals for quote %d: %v", quote.ID, err)
		utils.InternalServerError(c, "Failed to update totals", nil)
		return
	}

	utils.Success(c, utils.MsgDeleteSuccess, gin.H{"quote": quote})
}
