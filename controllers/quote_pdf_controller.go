package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/pjrivas16-ctrl/datos-aqg-app/models"
	"github.com/pjrivas16-ctrl/datos-aqg-app/pricing"
	"github.com/pjrivas16-ctrl/datos-aqg-app/utils"
)

// DownloadQuotePDF generates and returns the quote document as a PDF
func DownloadQuotePDF(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	quote, err := getQuoteForUser(c.Param("id"), user.ID)
	if err != nil {
		utils.NotFound(c, "Quote not found")
		return
	}

	pdfBytes, err := buildQuotePDF(quote, &user)
	if err != nil {
		utils.LogError("Failed to generate PDF for quote %d: %v", quote.ID, err)
		utils.InternalServerError(c, "Failed to generate PDF", nil)
		return
	}
	utils.LogInfo("PDF generated for quote %d", quote.ID)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=presupuesto-%d.pdf", quote.ID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// buildQuotePDF renders a quote into the printable document handed to clients
func buildQuotePDF(quote *models.Quote, user *models.User) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "AQG Bathrooms")
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(90, 10, "PRESUPUESTO", "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// Salesperson block
	pdf.SetFont("Arial", "", 11)
	seller := user.FiscalName
	if seller == "" {
		seller = user.CompanyName
	}
	pdf.Cell(100, 6, tr(seller))
	pdf.CellFormat(90, 6, tr("Presupuesto Nº: "+strconv.Itoa(int(quote.ID))), "", 1, "R", false, 0, "")
	if user.PreparedBy != "" {
		pdf.Cell(100, 6, tr("Comercial: "+user.PreparedBy))
	} else {
		pdf.Cell(100, 6, "")
	}
	pdf.CellFormat(90, 6, "Fecha: "+quote.CreatedAt.Format("02/01/2006"), "", 1, "R", false, 0, "")
	if user.Branch != "" {
		pdf.Cell(100, 6, tr("Sucursal: "+user.Branch))
	} else {
		pdf.Cell(100, 6, "")
	}
	pdf.CellFormat(90, 6, tr(fmt.Sprintf("Válido por %d días", utils.QuoteValidityDays)), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	// Client block
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(100, 7, "Preparado para:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 11)
	client := quote.FiscalName
	if client == "" {
		client = quote.CustomerName
	}
	if client != "" {
		pdf.Cell(100, 6, tr(client))
		pdf.Ln(6)
	}
	if quote.ProjectReference != "" {
		pdf.Cell(100, 6, tr("Ref. obra: "+quote.ProjectReference))
		pdf.Ln(6)
	}
	if quote.Branch != "" {
		pdf.Cell(100, 6, tr(quote.Branch))
		pdf.Ln(6)
	}
	if quote.DeliveryAddress != "" {
		pdf.Cell(100, 6, tr("Entrega: "+quote.DeliveryAddress))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Items table header
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(75, 8, tr("Descripción"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(15, 8, "Cant.", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "PVP/ud", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "Total PVP", "1", 0, "C", false, 0, "")
	pdf.CellFormat(15, 8, "Dto.", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Base Imp.", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	now := time.Now()
	discounts := quote.DiscountMap()
	promo := user.Promotion()
	for i := range quote.Items {
		item := &quote.Items[i]
		details := pricing.CalculatePriceDetails(item.PricingConfig(), discounts, promo, now)

		unitPVP := details.BasePrice
		if item.Quantity > 0 {
			unitPVP = details.BasePrice / float64(item.Quantity)
		}

		lines := formatItemDescription(item)
		rowHeight := float64(len(lines)) * 5

		x, y := pdf.GetXY()
		pdf.MultiCell(75, 5, tr(strings.Join(lines, "\n")), "1", "L", false)
		cellBottom := pdf.GetY()
		if cellBottom-y > rowHeight {
			rowHeight = cellBottom - y
		}
		pdf.SetXY(x+75, y)
		pdf.CellFormat(15, rowHeight, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, rowHeight, fmt.Sprintf("%.2f EUR", unitPVP), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, rowHeight, fmt.Sprintf("%.2f EUR", details.BasePrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(15, rowHeight, fmt.Sprintf("%.1f%%", details.DiscountPercent), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, rowHeight, fmt.Sprintf("%.2f EUR", details.DiscountedPrice), "1", 0, "R", false, 0, "")
		pdf.SetXY(x, y+rowHeight)
	}

	// Totals
	pdf.Ln(4)
	vatAmount := quote.FinalTotal - quote.DiscountedTotal
	discountAmount := quote.PVPTotal - quote.DiscountedTotal

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(155, 7, "Subtotal (PVP):", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("%.2f EUR", quote.PVPTotal), "", 1, "R", false, 0, "")
	if discountAmount > 0.004 {
		pdf.CellFormat(155, 7, "Descuentos:", "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("-%.2f EUR", discountAmount), "", 1, "R", false, 0, "")
	}
	pdf.CellFormat(155, 7, "Base Imponible:", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("%.2f EUR", quote.DiscountedTotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(155, 7, fmt.Sprintf("IVA (%.0f%%):", pricing.VATRate*100), "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("%.2f EUR", vatAmount), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(155, 9, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 9, fmt.Sprintf("%.2f EUR", quote.FinalTotal), "", 1, "R", false, 0, "")

	// Footer
	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 10)
	if user.PreparedBy != "" {
		pdf.Cell(0, 8, tr("Presupuesto preparado por "+user.PreparedBy))
	} else {
		pdf.Cell(0, 8, tr("Presupuesto preparado por "+seller))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatItemDescription renders an item's configuration as the description
// lines printed on the quote document.
func formatItemDescription(item *models.QuoteItem) []string {
	var lines []string

	if item.ProductLine == pricing.LineKits {
		name := item.KitProductID
		if kit := pricing.KitProductByID(item.KitProductID); kit != nil {
			name = kit.Name
		}
		lines = append(lines, name)
		if color := colorLabel(item.ColorID, item.RALCode); color != "" {
			lines = append(lines, "Color: "+color)
		}
		if item.InvoiceReference != "" {
			lines = append(lines, "Ref. Factura: "+item.InvoiceReference)
		}
		return lines
	}

	title := item.ProductLine
	if model := pricing.ModelByID(item.ModelID); model != nil {
		title += " - " + model.Name
	}
	lines = append(lines, title)

	dims := fmt.Sprintf("Medidas: %dx%dcm", item.Width, item.Length)
	if item.CutWidth > 0 && item.CutLength > 0 {
		dims += fmt.Sprintf(" (Corte a %dx%dcm)", item.CutWidth, item.CutLength)
	}
	lines = append(lines, dims)

	if color := colorLabel(item.ColorID, item.RALCode); color != "" {
		lines = append(lines, "Color: "+color)
	}

	var extras []string
	for _, id := range item.ExtraIDs {
		extra := pricing.ExtraByID(id)
		if extra == nil {
			continue
		}
		label := extra.Name
		if id == "bitono" {
			if bitono := colorLabel(item.BitonoColorID, item.BitonoRALCode); bitono != "" {
				label = "Tapa bitono: " + bitono
			}
		}
		extras = append(extras, label)
	}
	if len(extras) > 0 {
		lines = append(lines, "Extras: "+strings.Join(extras, ", "))
	}

	if item.ProductLine == pricing.LineStructDetail && item.StructFrames > 0 {
		lines = append(lines, fmt.Sprintf("Marcos: %d", item.StructFrames))
	}

	return lines
}

// colorLabel resolves a color selection to a printable name
func colorLabel(colorID, ralCode string) string {
	if ralCode != "" {
		if strings.HasPrefix(strings.ToUpper(ralCode), "RAL") {
			return ralCode
		}
		return "RAL " + ralCode
	}
	if color := pricing.ColorByID(colorID); color != nil {
		return color.Name
	}
	return ""
}
