package controllers

import (
	"fmt"
	"math"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/pjrivas16-ctrl/datos-aqg-app/config"
	"github.com/pjrivas16-ctrl/datos-aqg-app/models"
	"github.com/pjrivas16-ctrl/datos-aqg-app/utils"
)

// reportWindow translates a period query into a date range
func reportWindow(period string, now time.Time) (time.Time, time.Time, bool) {
	switch period {
	case "day":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		return start, end, true
	case "week":
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		start := end.AddDate(0, 0, -6)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		return start, end, true
	case "month":
		start := now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
		end := now.Add(24 * time.Hour)
		return start, end, true
	}
	return time.Time{}, time.Time{}, false
}

// AdminDownloadQuoteReport exports the period's quotes as an Excel workbook
func AdminDownloadQuoteReport(c *gin.Context) {
	period := c.DefaultQuery("period", "day")
	startDate, endDate, ok := reportWindow(period, time.Now())
	if !ok {
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}
	utils.LogDebug("Generating quote report for period: %s", period)

	var quotes []models.Quote
	query := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Preload("User").
		Preload("Items").
		Order("created_at DESC")
	if err := query.Find(&quotes).Error; err != nil {
		utils.LogError("Failed to fetch quotes for report: %v", err)
		utils.InternalServerError(c, "Failed to fetch quotes", nil)
		return
	}

	var summary struct {
		TotalQuotes    int
		OrderedQuotes  int
		TotalItems     int
		TotalDealers   int
		TotalPVP       float64
		TotalDiscounts float64
		TotalNet       float64
		AverageQuote   float64
	}
	dealerSet := make(map[uint]bool)
	for _, quote := range quotes {
		summary.TotalQuotes++
		summary.TotalPVP += quote.PVPTotal
		summary.TotalDiscounts += quote.PVPTotal - quote.DiscountedTotal
		summary.TotalNet += quote.DiscountedTotal
		dealerSet[quote.UserID] = true
		if quote.OrderedAt != nil {
			summary.OrderedQuotes++
		}
		for _, item := range quote.Items {
			summary.TotalItems += item.Quantity
		}
	}
	summary.TotalDealers = len(dealerSet)
	if summary.TotalQuotes > 0 {
		summary.AverageQuote = math.Round((summary.TotalNet/float64(summary.TotalQuotes))*100) / 100
	}
	summary.TotalPVP = math.Round(summary.TotalPVP*100) / 100
	summary.TotalDiscounts = math.Round(summary.TotalDiscounts*100) / 100
	summary.TotalNet = math.Round(summary.TotalNet*100) / 100

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Quote Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create report", nil)
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString(utils.AppName + " - Quote Report")
	periodRow := sheet.AddRow()
	periodRow.AddCell().SetString("Period: " + period + " | " + startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow()

	headers := []string{"Quote ID", "Dealer", "Type", "Customer", "Date", "Items", "PVP Total", "Discount", "Net Total", "Final (VAT)", "Ordered"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, quote := range quotes {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(quote.ID))
		row.AddCell().SetString(quote.User.CompanyName)
		row.AddCell().SetString(quote.Type)
		row.AddCell().SetString(quote.CustomerName)
		row.AddCell().SetString(quote.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetInt(len(quote.Items))
		row.AddCell().SetFloat(quote.PVPTotal)
		row.AddCell().SetFloat(quote.PVPTotal - quote.DiscountedTotal)
		row.AddCell().SetFloat(quote.DiscountedTotal)
		row.AddCell().SetFloat(quote.FinalTotal)
		if quote.OrderedAt != nil {
			row.AddCell().SetString(quote.OrderedAt.Format("2006-01-02"))
		} else {
			row.AddCell().SetString("-")
		}
	}

	sheet.AddRow()
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Quotes", fmt.Sprintf("%d", summary.TotalQuotes)},
		{"Ordered Quotes", fmt.Sprintf("%d", summary.OrderedQuotes)},
		{"Total Items", fmt.Sprintf("%d", summary.TotalItems)},
		{"Active Dealers", fmt.Sprintf("%d", summary.TotalDealers)},
		{"Total PVP", fmt.Sprintf("%.2f", summary.TotalPVP)},
		{"Total Discounts", fmt.Sprintf("%.2f", summary.TotalDiscounts)},
		{"Net Total", fmt.Sprintf("%.2f", summary.TotalNet)},
		{"Avg. Quote Value", fmt.Sprintf("%.2f", summary.AverageQuote)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=quote_report_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write report", nil)
		return
	}
	utils.LogInfo("Quote report generated for period %s", period)
}
