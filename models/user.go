package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/pjrivas16-ctrl/datos-aqg-app/pricing"
)

// User represents a dealer account in the system
type User struct {
	gorm.Model
	CompanyName string  `gorm:"not null" json:"company_name"`
	Email       string  `gorm:"uniqueIndex;not null" json:"email"`
	Password    string  `json:"-"`
	PreparedBy  string  `json:"prepared_by"`
	FiscalName  string  `json:"fiscal_name"`
	Branch      string  `json:"branch"`
	GoogleID    *string `gorm:"uniqueIndex;default:null" json:"-"`
	IsAdmin     bool    `gorm:"default:false" json:"is_admin"`
	IsBlocked   bool    `gorm:"default:false" json:"is_blocked"`

	// Welcome promotion state; empty/nil when never activated.
	PromotionID          string     `json:"promotion_id,omitempty"`
	PromotionActivatedAt *time.Time `json:"promotion_activated_at,omitempty"`

	LastLoginAt time.Time `json:"last_login_at"`

	Quotes []Quote `json:"quotes,omitempty" gorm:"foreignKey:UserID"`
}

// Promotion returns the pricing snapshot of the user's promotion, or nil when
// none was ever activated. Expiry is judged by the engine, not here.
func (u *User) Promotion() *pricing.Promotion {
	if u.PromotionID == "" || u.PromotionActivatedAt == nil {
		return nil
	}
	return &pricing.Promotion{
		ID:          u.PromotionID,
		ActivatedAt: *u.PromotionActivatedAt,
	}
}

// BlacklistedToken stores JWTs invalidated by logout until they expire
type BlacklistedToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
