package models

// MerchantStats backs the dashboard overview cards. StoreViews is a
// placeholder value until real storefront analytics exist.
type MerchantStats struct {
	TotalCategories int64 `json:"totalCategories"`
	TotalProducts   int64 `json:"totalProducts"`
	ActiveDeals     int64 `json:"activeDeals"`
	StoreViews      int   `json:"storeViews"`
}

// StorePreview is the customer-facing aggregate: only enabled categories,
// available products and live deals appear.
type StorePreview struct {
	Store      *StoreInfo `json:"store"`
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
	Deals      []Deal     `json:"deals"`
}
