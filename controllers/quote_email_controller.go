package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pjrivas16-ctrl/datos-aqg-app/utils"
)

// EmailQuoteRequest represents the send-by-email request body
type EmailQuoteRequest struct {
	To      string `json:"to" binding:"required"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// EmailQuote sends the quote PDF to a recipient
func EmailQuote(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	quote, err := getQuoteForUser(c.Param("id"), user.ID)
	if err != nil {
		utils.NotFound(c, "Quote not found")
		return
	}

	var req EmailQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if valid, msg := utils.ValidateEmail(req.To); !valid {
		utils.BadRequest(c, msg, nil)
		return
	}

	pdfBytes, err := buildQuotePDF(quote, &user)
	if err != nil {
		utils.LogError("Failed to generate PDF for quote %d: %v", quote.ID, err)
		utils.InternalServerError(c, "Failed to generate PDF", nil)
		return
	}

	subject := utils.SanitizeString(req.Subject)
	if subject == "" {
		subject = fmt.Sprintf("Presupuesto %d - %s", quote.ID, utils.AppName)
	}

	body := utils.SanitizeString(req.Message)
	if body == "" {
		body = fmt.Sprintf(
			"Adjunto encontrará el presupuesto %d.<br><br>Validez: %d días desde la fecha de emisión.<br><br>%s",
			quote.ID, utils.QuoteValidityDays, utils.AppName)
	}

	filename := fmt.Sprintf("presupuesto-%d.pdf", quote.ID)
	if err := utils.SendQuoteEmail(req.To, subject, body, filename, pdfBytes); err != nil {
		utils.LogError("Failed to email quote %d to %s: %v", quote.ID, req.To, err)
		utils.InternalServerError(c, "Failed to send email", nil)
		return
	}

	utils.LogInfo("Quote %d emailed to %s", quote.ID, req.To)
	utils.Success(c, "Quote sent", gin.H{"to": req.To})
}
