package models

import "time"

// Deal types offered by the dashboard. DealType is free text so "Other"
// entries pass through unchanged.
const (
	DealTypePercentage    = "Percentage Discount"
	DealTypeFixedAmount   = "Fixed Amount Discount"
	DealTypeBuyOneTakeOne = "Buy 1 Take 1"
	DealTypeFreeDelivery  = "Free Delivery"
	DealTypeBundle        = "Bundle Deal"
)

// Deal is a time-limited promotion.
type Deal struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	MerchantID    string     `gorm:"index;not null" json:"merchantId"`
	Name          string     `gorm:"not null" json:"name"`
	Description   string     `json:"description"`
	DealType      string     `gorm:"not null" json:"dealType"`
	DiscountValue float64    `gorm:"default:0" json:"discountValue"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       time.Time  `json:"endDate"`
	Active        bool       `gorm:"default:true" json:"active"`
	Image         string     `json:"image"`
	ProductIDs    StringList `gorm:"type:jsonb" json:"productIds"`
	CategoryIDs   StringList `gorm:"type:jsonb" json:"categoryIds"`
	OwnerID       uint       `gorm:"index" json:"ownerId"`
	Version       int        `gorm:"default:1" json:"version"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// IsActive reports whether the deal is live at t: the flag is set and t
// falls within [StartDate, EndDate].
func (d *Deal) IsActive(t time.Time) bool {
	return d.Active && !t.Before(d.StartDate) && !t.After(d.EndDate)
}

// IsExpired reports whether the deal's window has passed at t.
func (d *Deal) IsExpired(t time.Time) bool {
	return t.After(d.EndDate)
}
