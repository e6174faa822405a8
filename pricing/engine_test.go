package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func classicItem(quantity int) ItemConfig {
	return ItemConfig{
		ProductLine: LineClassic,
		Width:       70,
		Length:      100,
		Quantity:    quantity,
	}
}

func activePromo(now time.Time) *Promotion {
	return &Promotion{ID: PromoID, ActivatedAt: now.Add(-time.Hour)}
}

func TestResolveUnitPriceTableLookup(t *testing.T) {
	// Every priced triple resolves to exactly its tabulated value when no
	// model, color or extra contributes.
	for line, widths := range PriceList {
		for width, lengths := range widths {
			for length, want := range lengths {
				got := ResolveUnitPrice(ItemConfig{
					ProductLine: line,
					Width:       width,
					Length:      length,
					Quantity:    1,
				})
				assert.Equal(t, want, got, "%s %dx%d", line, width, length)
			}
		}
	}
}

func TestResolveUnitPriceMissingEntry(t *testing.T) {
	assert.Zero(t, ResolveUnitPrice(ItemConfig{ProductLine: LineClassic, Width: 70, Length: 999, Quantity: 1}))
	assert.Zero(t, ResolveUnitPrice(ItemConfig{ProductLine: LineClassic, Width: 33, Length: 100, Quantity: 1}))
	assert.Zero(t, ResolveUnitPrice(ItemConfig{ProductLine: "NO SUCH LINE", Width: 70, Length: 100, Quantity: 1}))
	assert.Zero(t, ResolveUnitPrice(ItemConfig{ProductLine: LineClassic, Width: -70, Length: 100, Quantity: 1}))
}

func TestResolveUnitPriceUnconfiguredDimensions(t *testing.T) {
	assert.Zero(t, ResolveUnitPrice(ItemConfig{ProductLine: LineClassic, Quantity: 1}))
	assert.Zero(t, ResolveUnitPrice(ItemConfig{Quantity: 1}))
}

func TestResolveUnitPriceKits(t *testing.T) {
	kit := KitProductByID("kit-pintura")
	assert.NotNil(t, kit)
	assert.Equal(t, 45.0, ResolveUnitPrice(ItemConfig{ProductLine: LineKits, KitProduct: kit, Quantity: 1}))
	// No kit selected is a valid degenerate state, not an error.
	assert.Zero(t, ResolveUnitPrice(ItemConfig{ProductLine: LineKits, Quantity: 1}))
}

func TestResolveUnitPriceExtrasAccumulate(t *testing.T) {
	base := classicItem(1)
	p := ResolveUnitPrice(base)

	e1 := *ExtraByID("corte-simple-acabado")       // 40
	e2 := *ExtraByID("rejilla-lacada-standard")    // 9.10

	one := base
	one.Extras = []ProductOption{e1}
	assert.InDelta(t, p+40, ResolveUnitPrice(one), 1e-9)

	both := base
	both.Extras = []ProductOption{e1, e2}
	assert.InDelta(t, p+40+9.10, ResolveUnitPrice(both), 1e-9)

	// Order-independent.
	swapped := base
	swapped.Extras = []ProductOption{e2, e1}
	assert.Equal(t, ResolveUnitPrice(both), ResolveUnitPrice(swapped))
}

func TestResolveUnitPriceModelFactorBeforeAdditives(t *testing.T) {
	item := classicItem(1)
	item.Model = &ProductOption{ID: "future-texture", PriceFactor: 1.2}
	item.Color = &ColorOption{ID: "custom", Price: 10}
	item.Extras = []ProductOption{{ID: "extra", Price: 5}}

	// (P*f) + color + extras, not (P + color + extras)*f.
	want := 237*1.2 + 10 + 5
	assert.InDelta(t, want, ResolveUnitPrice(item), 1e-9)
}

func TestResolveUnitPriceStructFrames(t *testing.T) {
	base, ok := LookupBasePrice(LineStructDetail, 70, 100)
	assert.True(t, ok)

	cases := map[int]float64{
		0: base,
		4: base,
		3: base * 0.95,
		2: base * 0.90,
		1: base * 0.85,
	}
	for frames, want := range cases {
		item := ItemConfig{
			ProductLine:  LineStructDetail,
			Width:        70,
			Length:       100,
			Quantity:     1,
			StructFrames: frames,
		}
		assert.InDelta(t, want, ResolveUnitPrice(item), 1e-9, "frames=%d", frames)
	}

	// Frame counts leave other lines untouched.
	other := classicItem(1)
	other.StructFrames = 1
	assert.Equal(t, 237.0, ResolveUnitPrice(other))
}

func TestCalculatePriceDetailsNoDiscounts(t *testing.T) {
	now := time.Now()
	details := CalculatePriceDetails(classicItem(1), nil, nil, now)

	assert.Equal(t, 237.0, details.BasePrice)
	assert.Equal(t, details.BasePrice, details.DiscountedPrice)
	assert.InDelta(t, 237*1.21, details.FinalPrice, 1e-9)
	assert.Zero(t, details.DiscountPercent)
}

func TestCalculatePriceDetailsQuantityLinearity(t *testing.T) {
	now := time.Now()
	one := CalculatePriceDetails(classicItem(1), nil, nil, now)
	three := CalculatePriceDetails(classicItem(3), nil, nil, now)
	assert.Equal(t, 3*one.BasePrice, three.BasePrice)
}

func TestCalculatePriceDetailsLineDiscount(t *testing.T) {
	now := time.Now()
	discounts := map[string]float64{LineClassic: 10}
	details := CalculatePriceDetails(classicItem(2), discounts, nil, now)

	assert.Equal(t, 474.0, details.BasePrice)
	assert.InDelta(t, 426.6, details.DiscountedPrice, 1e-9)
	assert.InDelta(t, 516.186, details.FinalPrice, 1e-9)
	assert.InDelta(t, 10, details.DiscountPercent, 1e-9)
}

func TestCalculatePriceDetailsMultiplicativeStacking(t *testing.T) {
	now := time.Now()
	discounts := map[string]float64{LineClassic: 20}
	details := CalculatePriceDetails(classicItem(1), discounts, activePromo(now), now)

	// 0.375 promo retention x 0.8 line retention = 0.3 combined retention,
	// a 70% effective discount rather than the additive 82.5%.
	assert.InDelta(t, 70, details.DiscountPercent, 1e-9)
	assert.InDelta(t, 237*0.3, details.DiscountedPrice, 1e-9)
}

func TestCalculatePriceDetailsPromoOnly(t *testing.T) {
	now := time.Now()
	details := CalculatePriceDetails(classicItem(1), nil, activePromo(now), now)
	assert.InDelta(t, 62.5, details.DiscountPercent, 1e-9)
	assert.InDelta(t, 237*WelcomePromoRetentionFactor, details.DiscountedPrice, 1e-9)
}

func TestPromotionExpiryBoundary(t *testing.T) {
	activation := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	promo := &Promotion{ID: PromoID, ActivatedAt: activation}
	expiry := activation.Add(PromoDurationDays * 24 * time.Hour)

	assert.True(t, promo.ActiveAt(activation))
	assert.True(t, promo.ActiveAt(expiry.Add(-time.Millisecond)))
	assert.False(t, promo.ActiveAt(expiry))
	assert.False(t, promo.ActiveAt(expiry.Add(time.Millisecond)))
}

func TestPromotionWrongOrMissingID(t *testing.T) {
	now := time.Now()
	var none *Promotion
	assert.False(t, none.ActiveAt(now))
	other := &Promotion{ID: "summer_sale", ActivatedAt: now}
	assert.False(t, other.ActiveAt(now))

	details := CalculatePriceDetails(classicItem(1), nil, other, now)
	assert.Zero(t, details.DiscountPercent)
}

func TestAggregateQuoteTotals(t *testing.T) {
	now := time.Now()
	kit := KitProductByID("kit-reparacion")
	items := []ItemConfig{
		classicItem(2),
		{ProductLine: LineSoftum, Width: 80, Length: 120, Quantity: 1},
		{ProductLine: LineKits, KitProduct: kit, Quantity: 3},
	}
	discounts := map[string]float64{LineClassic: 10, LineSoftum: 5}

	var wantPVP, wantDiscounted float64
	for _, item := range items {
		d := CalculatePriceDetails(item, discounts, nil, now)
		wantPVP += d.BasePrice
		wantDiscounted += d.DiscountedPrice
	}

	pvp, discounted := AggregateQuoteTotals(items, discounts, nil, now)
	assert.InDelta(t, wantPVP, pvp, 1e-9)
	assert.InDelta(t, wantDiscounted, discounted, 1e-9)
	assert.GreaterOrEqual(t, pvp, discounted)
}

func TestDiscountPercentStaysInRange(t *testing.T) {
	now := time.Now()
	for _, pct := range []float64{0, 1, 25, 50, 99, 100} {
		for _, promo := range []*Promotion{nil, activePromo(now)} {
			details := CalculatePriceDetails(classicItem(1), map[string]float64{LineClassic: pct}, promo, now)
			assert.GreaterOrEqual(t, details.DiscountPercent, 0.0)
			assert.LessOrEqual(t, details.DiscountPercent, 100.0)
			assert.GreaterOrEqual(t, details.BasePrice, details.DiscountedPrice)
			assert.InDelta(t, details.DiscountedPrice*(1+VATRate), details.FinalPrice, 1e-9)
		}
	}
}
