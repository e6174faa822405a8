package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupBasePrice(t *testing.T) {
	price, ok := LookupBasePrice(LineClassic, 70, 100)
	assert.True(t, ok)
	assert.Equal(t, 237.0, price)

	price, ok = LookupBasePrice(LineClassic, 70, 75)
	assert.False(t, ok)
	assert.Zero(t, price)

	_, ok = LookupBasePrice(LineDrainer, 70, 100)
	assert.False(t, ok)
}

func TestLineSupported(t *testing.T) {
	assert.True(t, LineSupported(LineSoftum))
	assert.True(t, LineSupported(LineKits))
	assert.False(t, LineSupported("softum"))
	assert.False(t, LineSupported(""))
}

func TestWidthsForLine(t *testing.T) {
	assert.Equal(t, SoftumWidths, WidthsForLine(LineSoftum))
	assert.Equal(t, []int{70, 75, 80, 90, 100}, WidthsForLine(LineClassic))
	// Lines without a price grid fall back to the standard widths.
	assert.Equal(t, StandardWidths, WidthsForLine(LineCustom))
}

func TestLengthsForLine(t *testing.T) {
	assert.Equal(t, SoftumLengths, LengthsForLine(LineSoftum, 70))
	assert.Equal(t, []int{70}, LengthsForLine(LineRatio, 70))
	assert.Nil(t, LengthsForLine(LineClassic, 33))
	assert.Equal(t, StandardLengths, LengthsForLine(LineCustom, 70))
}

func TestOptionLookups(t *testing.T) {
	model := ModelByID("pizarra")
	assert.NotNil(t, model)
	assert.Equal(t, 1.0, model.PriceFactor)
	assert.Nil(t, ModelByID("terrazzo"))

	kit := KitProductByID("kit-reparacion")
	assert.NotNil(t, kit)
	assert.Equal(t, 20.0, kit.Price)

	assert.NotNil(t, ExtraByID("corte-especial-acabado"))
	assert.NotNil(t, ExtraByID("ral"))
	assert.NotNil(t, ExtraByID("bitono"))
	assert.Nil(t, ExtraByID("no-such-extra"))

	color := ColorByID("graf")
	assert.NotNil(t, color)
	assert.Equal(t, "#343434", color.Hex)
	assert.Zero(t, color.Price)
	assert.Nil(t, ColorByID("neon"))
}

func TestStandardColorsCarryNoSurcharge(t *testing.T) {
	for _, c := range StandardColors {
		assert.Zero(t, c.Price, c.ID)
	}
}

func TestCatalogModelsAreFactorNeutral(t *testing.T) {
	for _, m := range ShowerModels {
		assert.Equal(t, 1.0, m.PriceFactor, m.ID)
	}
}
