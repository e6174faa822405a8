package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pjrivas16-ctrl/datos-aqg-app/pricing"
)

func TestQuoteItemPricingConfig(t *testing.T) {
	item := QuoteItem{
		ItemKey:     "k1",
		ProductLine: pricing.LineClassic,
		Width:       70,
		Length:      100,
		Quantity:    2,
		ModelID:     "pizarra",
		ColorID:     "white",
		ExtraIDs:    []string{"corte-simple-acabado", "rejilla-lacada-standard"},
	}

	cfg := item.PricingConfig()
	assert.Equal(t, pricing.LineClassic, cfg.ProductLine)
	assert.NotNil(t, cfg.Model)
	assert.NotNil(t, cfg.Color)
	assert.Len(t, cfg.Extras, 2)

	// 237 + 40 + 9.10, model factor neutral
	assert.InDelta(t, 286.10, pricing.ResolveUnitPrice(cfg), 1e-9)
}

func TestQuoteItemPricingConfigUnknownIDs(t *testing.T) {
	item := QuoteItem{
		ProductLine: pricing.LineClassic,
		Width:       70,
		Length:      100,
		Quantity:    1,
		ModelID:     "gone",
		ColorID:     "gone",
		ExtraIDs:    []string{"gone"},
	}
	cfg := item.PricingConfig()
	assert.Nil(t, cfg.Model)
	assert.Nil(t, cfg.Color)
	assert.Empty(t, cfg.Extras)
	assert.Equal(t, 237.0, pricing.ResolveUnitPrice(cfg))
}

func TestQuoteItemPricingConfigRAL(t *testing.T) {
	item := QuoteItem{
		ProductLine: pricing.LineFlat,
		Width:       80,
		Length:      120,
		Quantity:    1,
		RALCode:     "RAL 7016",
		ExtraIDs:    []string{"ral"},
	}
	cfg := item.PricingConfig()
	assert.Nil(t, cfg.Color)
	assert.Equal(t, "RAL 7016", cfg.RALCode)
	assert.InDelta(t, 295+65, pricing.ResolveUnitPrice(cfg), 1e-9)
}

func TestQuoteDiscountMap(t *testing.T) {
	q := Quote{Discounts: []QuoteDiscount{
		{ProductLine: pricing.LineClassic, Percent: 10},
		{ProductLine: pricing.LineSoftum, Percent: 5},
	}}
	m := q.DiscountMap()
	assert.Equal(t, map[string]float64{pricing.LineClassic: 10, pricing.LineSoftum: 5}, m)
}

func TestUserPromotion(t *testing.T) {
	var u User
	assert.Nil(t, u.Promotion())

	activated := time.Now()
	u.PromotionID = pricing.PromoID
	u.PromotionActivatedAt = &activated

	promo := u.Promotion()
	assert.NotNil(t, promo)
	assert.True(t, promo.ActiveAt(activated.Add(time.Hour)))
	assert.False(t, promo.ActiveAt(activated.Add(pricing.PromoDurationDays*24*time.Hour)))
}
