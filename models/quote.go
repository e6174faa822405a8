package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/pjrivas16-ctrl/datos-aqg-app/pricing"
)

// Quote type constants
const (
	QuoteTypeInternal = "internal"
	QuoteTypeCustomer = "customer"
)

// Quote is a saved configuration of one or more priced items. Totals are a
// snapshot recomputed through the pricing engine on every mutation.
type Quote struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	UserID           uint            `json:"user_id"`
	User             User            `json:"-" gorm:"foreignKey:UserID"`
	Type             string          `gorm:"default:'internal'" json:"type"`
	CustomerName     string          `json:"customer_name,omitempty"`
	ProjectReference string          `json:"project_reference,omitempty"`
	FiscalName       string          `json:"fiscal_name,omitempty"`
	Branch           string          `json:"branch,omitempty"`
	DeliveryAddress  string          `json:"delivery_address,omitempty"`
	PVPTotal         float64         `json:"pvp_total"`
	DiscountedTotal  float64         `json:"discounted_total"`
	FinalTotal       float64         `json:"final_total"`
	OrderedAt        *time.Time      `json:"ordered_at,omitempty"`
	Items            []QuoteItem     `json:"items" gorm:"foreignKey:QuoteID"`
	Discounts        []QuoteDiscount `json:"discounts" gorm:"foreignKey:QuoteID"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}

// QuoteItem is one committed line of a quote. Catalog selections are stored
// by id and resolved against the static catalog when pricing.
type QuoteItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	QuoteID uint `json:"quote_id"`
	// ItemKey is the stable identifier an item keeps across edits.
	ItemKey          string   `gorm:"index;not null" json:"item_key"`
	ProductLine      string   `gorm:"not null" json:"product_line"`
	Width            int      `json:"width,omitempty"`
	Length           int      `json:"length,omitempty"`
	Quantity         int      `gorm:"default:1" json:"quantity"`
	ModelID          string   `json:"model_id,omitempty"`
	ColorID          string   `json:"color_id,omitempty"`
	RALCode          string   `json:"ral_code,omitempty"`
	BitonoColorID    string   `json:"bitono_color_id,omitempty"`
	BitonoRALCode    string   `json:"bitono_ral_code,omitempty"`
	StructFrames     int      `json:"struct_frames,omitempty"`
	CutWidth         int      `json:"cut_width,omitempty"`
	CutLength        int      `json:"cut_length,omitempty"`
	ExtraIDs         []string `gorm:"serializer:json" json:"extra_ids"`
	KitProductID     string   `json:"kit_product_id,omitempty"`
	InvoiceReference string   `json:"invoice_reference,omitempty"`
}

// QuoteDiscount is the per-product-line discount percentage for one quote.
type QuoteDiscount struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	QuoteID     uint    `gorm:"index" json:"quote_id"`
	ProductLine string  `gorm:"not null" json:"product_line"`
	Percent     float64 `json:"percent"`
}

// PricingConfig resolves the stored catalog ids into the engine's input.
// Unknown ids resolve to nil selections, which price as zero contributions.
func (qi *QuoteItem) PricingConfig() pricing.ItemConfig {
	cfg := pricing.ItemConfig{
		ProductLine:      qi.ProductLine,
		Width:            qi.Width,
		Length:           qi.Length,
		Quantity:         qi.Quantity,
		RALCode:          qi.RALCode,
		BitonoRALCode:    qi.BitonoRALCode,
		StructFrames:     qi.StructFrames,
		CutWidth:         qi.CutWidth,
		CutLength:        qi.CutLength,
		InvoiceReference: qi.InvoiceReference,
	}
	if qi.ModelID != "" {
		cfg.Model = pricing.ModelByID(qi.ModelID)
	}
	if qi.ColorID != "" {
		cfg.Color = pricing.ColorByID(qi.ColorID)
	}
	if qi.BitonoColorID != "" {
		cfg.BitonoColor = pricing.ColorByID(qi.BitonoColorID)
	}
	if qi.KitProductID != "" {
		cfg.KitProduct = pricing.KitProductByID(qi.KitProductID)
	}
	for _, id := range qi.ExtraIDs {
		if extra := pricing.ExtraByID(id); extra != nil {
			cfg.Extras = append(cfg.Extras, *extra)
		}
	}
	return cfg
}

// PricingConfigs maps a quote's items into engine inputs.
func (q *Quote) PricingConfigs() []pricing.ItemConfig {
	configs := make([]pricing.ItemConfig, 0, len(q.Items))
	for i := range q.Items {
		configs = append(configs, q.Items[i].PricingConfig())
	}
	return configs
}

// DiscountMap flattens a quote's discount rows into the engine's map form.
func (q *Quote) DiscountMap() map[string]float64 {
	m := make(map[string]float64, len(q.Discounts))
	for _, d := range q.Discounts {
		m[d.ProductLine] = d.Percent
	}
	return m
}
