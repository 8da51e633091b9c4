package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. MinPrice is the authoritative unit price at
// order time; callers never supply a price of their own.
type Product struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string          `gorm:"column:name;not null"`
	MinPrice  decimal.Decimal `gorm:"column:min_price;type:numeric(10,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}
