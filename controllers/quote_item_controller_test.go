package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pjrivas16-ctrl/datos-aqg-app/models"
	"github.com/pjrivas16-ctrl/datos-aqg-app/pricing"
)

func TestBuildQuoteItemDefaults(t *testing.T) {
	item, appErr := buildQuoteItem(ItemRequest{
		ProductLine: pricing.LineClassic,
		Width:       70,
		Length:      100,
	})
	require.Nil(t, appErr)
	assert.Equal(t, 1, item.Quantity)
	assert.NotEmpty(t, item.ItemKey)
	assert.Equal(t, pricing.LineClassic, item.ProductLine)
}

func TestBuildQuoteItemUnknownLine(t *testing.T) {
	_, appErr := buildQuoteItem(ItemRequest{ProductLine: "GOLD"})
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Message, "product line")
}

func TestBuildQuoteItemKitRules(t *testing.T) {
	// KITS needs a kit product
	_, appErr := buildQuoteItem(ItemRequest{ProductLine: pricing.LineKits})
	assert.NotNil(t, appErr)

	item, appErr := buildQuoteItem(ItemRequest{
		ProductLine:  pricing.LineKits,
		KitProductID: "kit-reparacion",
	})
	require.Nil(t, appErr)
	assert.Equal(t, "kit-reparacion", item.KitProductID)

	// Kit products never attach to a shower tray line
	_, appErr = buildQuoteItem(ItemRequest{
		ProductLine:  pricing.LineClassic,
		Width:        70,
		Length:       100,
		KitProductID: "kit-reparacion",
	})
	assert.NotNil(t, appErr)
}

func TestBuildQuoteItemDimensionsRequired(t *testing.T) {
	_, appErr := buildQuoteItem(ItemRequest{ProductLine: pricing.LineClassic, Width: 70})
	assert.NotNil(t, appErr)
}

func TestBuildQuoteItemColorExclusivity(t *testing.T) {
	_, appErr := buildQuoteItem(ItemRequest{
		ProductLine: pricing.LineClassic,
		Width:       70,
		Length:      100,
		ColorID:     "white",
		RALCode:     "3020",
	})
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Message, "RAL")

	item, appErr := buildQuoteItem(ItemRequest{
		ProductLine: pricing.LineClassic,
		Width:       70,
		Length:      100,
		RALCode:     "RAL 3020",
	})
	require.Nil(t, appErr)
	assert.Equal(t, "RAL 3020", item.RALCode)

	_, appErr = buildQuoteItem(ItemRequest{
		ProductLine: pricing.LineClassic,
		Width:       70,
		Length:      100,
		RALCode:     "not-a-ral",
	})
	assert.NotNil(t, appErr)
}

func TestBuildQuoteItemFrameRules(t *testing.T) {
	_, appErr := buildQuoteItem(ItemRequest{
		ProductLine:  pricing.LineClassic,
		Width:        70,
		Length:       100,
		StructFrames: 2,
	})
	assert.NotNil(t, appErr)

	_, appErr = buildQuoteItem(ItemRequest{
		ProductLine:  pricing.LineStructDetail,
		Width:        70,
		Length:       100,
		StructFrames: 5,
	})
	assert.NotNil(t, appErr)

	item, appErr := buildQuoteItem(ItemRequest{
		ProductLine:  pricing.LineStructDetail,
		Width:        70,
		Length:       100,
		StructFrames: 3,
	})
	require.Nil(t, appErr)
	assert.Equal(t, 3, item.StructFrames)
}

func TestBuildQuoteItemExtras(t *testing.T) {
	_, appErr := buildQuoteItem(ItemRequest{
		ProductLine: pricing.LineClassic,
		Width:       70,
		Length:      100,
		ExtraIDs:    []string{"no-such-extra"},
	})
	assert.NotNil(t, appErr)

	item, appErr := buildQuoteItem(ItemRequest{
		ProductLine: pricing.LineClassic,
		Width:       70,
		Length:      100,
		ExtraIDs:    []string{"corte-simple-acabado", "corte-simple-acabado", "ral"},
	})
	require.Nil(t, appErr)
	assert.Equal(t, []string{"corte-simple-acabado", "ral"}, item.ExtraIDs)
}

func TestClampDiscountPercent(t *testing.T) {
	assert.Equal(t, 0.0, clampDiscountPercent(-5))
	assert.Equal(t, 0.0, clampDiscountPercent(0))
	assert.Equal(t, 42.5, clampDiscountPercent(42.5))
	assert.Equal(t, 100.0, clampDiscountPercent(100))
	assert.Equal(t, 100.0, clampDiscountPercent(150))
}

func TestFormatItemDescriptionKit(t *testing.T) {
	lines := formatItemDescription(&models.QuoteItem{
		ProductLine:      pricing.LineKits,
		KitProductID:     "kit-pintura",
		ColorID:          "white",
		InvoiceReference: "FAC-2024-001",
	})
	require.Len(t, lines, 3)
	assert.Equal(t, "Color: White", lines[1])
	assert.Equal(t, "Ref. Factura: FAC-2024-001", lines[2])
}

func TestFormatItemDescriptionShowerTray(t *testing.T) {
	lines := formatItemDescription(&models.QuoteItem{
		ProductLine: pricing.LineClassic,
		Width:       70,
		Length:      100,
		CutWidth:    65,
		CutLength:   95,
		ModelID:     "pizarra",
		RALCode:     "3020",
		ExtraIDs:    []string{"corte-simple-acabado"},
	})
	require.NotEmpty(t, lines)
	assert.Equal(t, "CLASSIC - Textura Pizarra", lines[0])
	assert.Equal(t, "Medidas: 70x100cm (Corte a 65x95cm)", lines[1])
	assert.Equal(t, "Color: RAL 3020", lines[2])
	assert.Contains(t, lines[3], "Corte simple con acabado")
}

func TestFormatItemDescriptionBitonoAndFrames(t *testing.T) {
	lines := formatItemDescription(&models.QuoteItem{
		ProductLine:   pricing.LineStructDetail,
		Width:         70,
		Length:        100,
		StructFrames:  2,
		BitonoColorID: "black",
		ExtraIDs:      []string{"bitono"},
	})
	assert.Contains(t, lines, "Extras: Tapa bitono: Black")
	assert.Contains(t, lines, "Marcos: 2")
}

func TestColorLabel(t *testing.T) {
	assert.Equal(t, "White", colorLabel("white", ""))
	assert.Equal(t, "RAL 3020", colorLabel("", "3020"))
	assert.Equal(t, "RAL 3020", colorLabel("", "RAL 3020"))
	assert.Equal(t, "", colorLabel("", ""))
	assert.Equal(t, "", colorLabel("unknown", ""))
}
