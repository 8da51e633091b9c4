package catalog

import "github.com/shopspring/decimal"

// PartnerDTO is the partner read shape exposed by the API.
type PartnerDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	ContactInfo *string `json:"contact_info"`
}

// ProductDTO is the product read shape exposed by the API.
type ProductDTO struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	MinPrice decimal.Decimal `json:"min_price"`
}
