package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pjrivas16-ctrl/datos-aqg-app/pricing"
	"github.com/pjrivas16-ctrl/datos-aqg-app/utils"
)

// GetProductLines lists every selectable product line
func GetProductLines(c *gin.Context) {
	utils.Success(c, "Product lines retrieved", gin.H{"product_lines": pricing.ProductLines})
}

// GetDimensions returns the selectable widths for a line, and the lengths for
// a width when one is given
func GetDimensions(c *gin.Context) {
	line := c.Query("line")
	if !pricing.LineSupported(line) {
		utils.NotFound(c, "Unknown product line")
		return
	}

	data := gin.H{
		"line":   line,
		"widths": pricing.WidthsForLine(line),
	}
	if widthStr := c.Query("width"); widthStr != "" {
		width, err := strconv.Atoi(widthStr)
		if err != nil {
			utils.BadRequest(c, "Invalid width", nil)
			return
		}
		data["lengths"] = pricing.LengthsForLine(line, width)
	}

	utils.Success(c, "Dimensions retrieved", data)
}

// GetBasePrice looks up the tariff price for a line/width/length triple.
// Unpriced combinations are a 404, not a free product.
func GetBasePrice(c *gin.Context) {
	line := c.Query("line")
	width, err := strconv.Atoi(c.Query("width"))
	if err != nil {
		utils.BadRequest(c, "Invalid width", nil)
		return
	}
	length, err := strconv.Atoi(c.Query("length"))
	if err != nil {
		utils.BadRequest(c, "Invalid length", nil)
		return
	}

	price, ok := pricing.LookupBasePrice(line, width, length)
	if !ok {
		utils.NotFound(c, "No tariff price for this combination")
		return
	}

	utils.Success(c, "Price retrieved", gin.H{
		"line":   line,
		"width":  width,
		"length": length,
		"price":  price,
	})
}

// GetCatalogOptions returns the selectable models, colors, extras and kits
func GetCatalogOptions(c *gin.Context) {
	utils.Success(c, "Catalog retrieved", gin.H{
		"models":           pricing.ShowerModels,
		"colors":           pricing.StandardColors,
		"cut_extras":       pricing.CutExtras,
		"accessory_extras": pricing.AccessoryExtras,
		"softum_extras":    pricing.SoftumExtras,
		"kit_products":     pricing.KitProducts,
		"vat_rate":         pricing.VATRate,
	})
}
