package pricing

import "time"

// PriceDetails is the fully resolved price breakdown for one quote line.
type PriceDetails struct {
	BasePrice       float64 `json:"base_price"`       // PVP x quantity, before discounts and VAT
	DiscountedPrice float64 `json:"discounted_price"` // after discounts, before VAT
	FinalPrice      float64 `json:"final_price"`      // after discounts and VAT
	DiscountPercent float64 `json:"discount_percent"` // effective combined discount
}

// ItemConfig is the configurable state of one quote line, with every catalog
// reference already resolved. The engine prices whatever combination it is
// given; field exclusivity (RAL vs. standard color) is a caller concern.
type ItemConfig struct {
	ProductLine      string
	Width            int
	Length           int
	Quantity         int
	Model            *ProductOption
	Color            *ColorOption
	Extras           []ProductOption
	RALCode          string
	BitonoColor      *ColorOption
	BitonoRALCode    string
	StructFrames     int // 1-4, only meaningful on STRUCT DETAIL; 0 = unset
	CutWidth         int
	CutLength        int
	KitProduct       *ProductOption
	InvoiceReference string
}

// Promotion is a user-level, time-boxed discount.
type Promotion struct {
	ID          string    `json:"id"`
	ActivatedAt time.Time `json:"activated_at"`
}

// ActiveAt reports whether the promotion applies at the given instant. The
// window is [activation, activation+90d): the last millisecond before expiry
// is still active, the expiry instant itself is not.
func (p *Promotion) ActiveAt(now time.Time) bool {
	if p == nil || p.ID != PromoID {
		return false
	}
	expiry := p.ActivatedAt.Add(PromoDurationDays * 24 * time.Hour)
	return now.Before(expiry)
}

// ResolveUnitPrice computes the PVP for exactly one unit of the configured
// item. Missing lines, dimensions or table entries contribute 0 rather than
// erroring: a partially configured item simply has no price yet.
func ResolveUnitPrice(item ItemConfig) float64 {
	if item.ProductLine == LineKits {
		if item.KitProduct == nil {
			return 0
		}
		return item.KitProduct.Price
	}

	if item.ProductLine == "" || item.Width == 0 || item.Length == 0 {
		return 0
	}

	base, _ := LookupBasePrice(item.ProductLine, item.Width, item.Length)

	// Fewer frames on STRUCT DETAIL means a cheaper tray. Applied to the
	// table price before any other adjustment; 4 frames is the full price.
	if item.ProductLine == LineStructDetail {
		switch item.StructFrames {
		case 3:
			base *= 0.95
		case 2:
			base *= 0.90
		case 1:
			base *= 0.85
		}
	}

	total := base

	if item.Model != nil && item.Model.PriceFactor != 0 {
		total *= item.Model.PriceFactor
	}

	if item.Color != nil {
		total += item.Color.Price
	}

	for _, extra := range item.Extras {
		total += extra.Price
	}

	return total
}

// CalculatePriceDetails resolves the full breakdown for a quote line given
// the per-line discount map and the acting user's promotion snapshot.
// Promotion and line discount stack multiplicatively: a 62.5% promo over a
// 20% line discount retains 0.375*0.8 = 0.3 of the PVP, a 70% effective
// discount, not 82.5%.
func CalculatePriceDetails(item ItemConfig, lineDiscounts map[string]float64, promo *Promotion, now time.Time) PriceDetails {
	pvpTotal := ResolveUnitPrice(item) * float64(item.Quantity)

	promoFactor := 1.0
	if promo.ActiveAt(now) {
		promoFactor = WelcomePromoRetentionFactor
	}

	lineFactor := 1 - lineDiscounts[item.ProductLine]/100
	retention := promoFactor * lineFactor

	discounted := pvpTotal * retention

	return PriceDetails{
		BasePrice:       pvpTotal,
		DiscountedPrice: discounted,
		FinalPrice:      discounted * (1 + VATRate),
		DiscountPercent: (1 - retention) * 100,
	}
}

// AggregateQuoteTotals sums the pre-tax base and discounted totals across a
// quote. The caller derives the tax-inclusive total as discounted*(1+VATRate);
// with a single flat rate that equals summing per-item final prices.
func AggregateQuoteTotals(items []ItemConfig, lineDiscounts map[string]float64, promo *Promotion, now time.Time) (pvpTotal, discountedTotal float64) {
	for _, item := range items {
		details := CalculatePriceDetails(item, lineDiscounts, promo, now)
		pvpTotal += details.BasePrice
		discountedTotal += details.DiscountedPrice
	}
	return pvpTotal, discountedTotal
}
