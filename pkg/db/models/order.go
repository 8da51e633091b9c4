package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the committed purchase header. TotalAmount is computed once at
// creation from the item snapshots and never recomputed.
type Order struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	PartnerID   int64           `gorm:"column:partner_id;not null"`
	OrderDate   time.Time       `gorm:"column:order_date;type:date;not null"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:numeric(10,2);not null"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}
