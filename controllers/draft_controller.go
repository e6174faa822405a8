package controllers

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/pjrivas16-ctrl/datos-aqg-app/models"
	"github.com/pjrivas16-ctrl/datos-aqg-app/pricing"
	"github.com/pjrivas16-ctrl/datos-aqg-app/utils"
)

const draftSessionKey = "draft_item"

// SaveDraft stores the wizard's in-progress item in the session. Unlike a
// committed quote line, a draft may still be missing dimensions or options;
// it only has to name a valid product line.
func SaveDraft(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !pricing.LineSupported(req.ProductLine) {
		utils.BadRequest(c, "Unknown product line", nil)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	session := sessions.Default(c)
	session.Set(draftSessionKey, req)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save draft session: %v", err)
		utils.InternalServerError(c, "Failed to save draft", nil)
		return
	}

	utils.Success(c, "Draft saved", gin.H{
		"draft":         req,
		"price_details": previewDetails(req, &user),
	})
}

// GetDraft returns the working item with a live price preview
func GetDraft(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	session := sessions.Default(c)
	val := session.Get(draftSessionKey)
	if val == nil {
		utils.NotFound(c, "No draft in progress")
		return
	}

	req, ok := val.(ItemRequest)
	if !ok {
		session.Delete(draftSessionKey)
		_ = session.Save()
		utils.NotFound(c, "No draft in progress")
		return
	}

	utils.Success(c, "Draft retrieved", gin.H{
		"draft":         req,
		"price_details": previewDetails(req, &user),
	})
}

// ClearDraft discards the working item
func ClearDraft(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(draftSessionKey)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear draft session: %v", err)
		utils.InternalServerError(c, "Failed to clear draft", nil)
		return
	}
	utils.Success(c, "Draft cleared", nil)
}

// previewDetails prices a draft as the live preview panel would: no line
// discounts yet, promotion taken from the acting user.
func previewDetails(req ItemRequest, user *models.User) pricing.PriceDetails {
	cfg := pricing.ItemConfig{
		ProductLine:      req.ProductLine,
		Width:            req.Width,
		Length:           req.Length,
		Quantity:         req.Quantity,
		RALCode:          req.RALCode,
		BitonoRALCode:    req.BitonoRALCode,
		StructFrames:     req.StructFrames,
		CutWidth:         req.CutWidth,
		CutLength:        req.CutLength,
		InvoiceReference: req.InvoiceReference,
	}
	if req.ModelID != "" {
		cfg.Model = pricing.ModelByID(req.ModelID)
	}
	if req.ColorID != "" {
		cfg.Color = pricing.ColorByID(req.ColorID)
	}
	if req.BitonoColorID != "" {
		cfg.BitonoColor = pricing.ColorByID(req.BitonoColorID)
	}
	if req.KitProductID != "" {
		cfg.KitProduct = pricing.KitProductByID(req.KitProductID)
	}
	for _, id := range req.ExtraIDs {
		if extra := pricing.ExtraByID(id); extra != nil {
			cfg.Extras = append(cfg.Extras, *extra)
		}
	}

	return pricing.CalculatePriceDetails(cfg, nil, user.Promotion(), time.Now())
}
