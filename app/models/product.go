package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Product is one row of the inventory table.
type Product struct {
	ID          int64           `gorm:"primaryKey;type:serial" json:"id"`
	Name        string          `gorm:"type:text;not null" json:"name"`
	Description *string         `gorm:"type:text" json:"description"`
	SKU         string          `gorm:"type:text;not null;unique;index:idx_products_sku" json:"sku"`
	Quantity    int64           `gorm:"type:integer;default:0" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	CreatedAt   time.Time       `gorm:"type:timestamp;default:now()" json:"created_at"`
}

// TableName pins the table name so raw SQL and AutoMigrate agree.
func (Product) TableName() string { return "products" }

// ProductColumns is the select list shared by every statement that returns rows.
const ProductColumns = "id, name, description, sku, quantity, price, created_at"

// NewProduct holds the fields accepted when a product is created.
type NewProduct struct {
	Name        string
	Description *string
	SKU         string
	Quantity    int64
	Price       decimal.Decimal
}

// ProductPatch is a partial update. A nil field is left untouched; a non-nil
// Description with Valid=false clears the column.
type ProductPatch struct {
	Name        *string
	Description *sql.NullString
	SKU         *string
	Quantity    *int64
	Price       *decimal.Decimal
}

// IsEmpty reports whether the patch sets no field at all.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.SKU == nil && p.Quantity == nil && p.Price == nil
}
