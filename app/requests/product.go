// Package requests defines the request bodies of the product API and turns
// them into repository input.
package requests

import (
	"database/sql"
	"encoding/json"

	"github.com/shashiranjanraj/inventory/app/models"
)

// CreateProduct is the body of POST /products. Pointer fields distinguish a
// missing value from a zero one, so price 0 and quantity 0 are accepted.
type CreateProduct struct {
	Name        *string   `json:"name"        validate:"required,min=1"`
	Description *string   `json:"description"`
	SKU         *string   `json:"sku"         validate:"required,min=1"`
	Quantity    *Quantity `json:"quantity"`
	Price       *Price    `json:"price"       validate:"required"`
}

// Input converts a validated request. Quantity defaults to 0.
func (c CreateProduct) Input() models.NewProduct {
	in := models.NewProduct{
		Name:        *c.Name,
		Description: c.Description,
		SKU:         *c.SKU,
		Price:       c.Price.Decimal,
	}
	if c.Quantity != nil {
		in.Quantity = int64(*c.Quantity)
	}
	return in
}

// UpdateProduct is the body of PUT /products/{id}. Keys other than the five
// mutable fields are ignored.
type UpdateProduct struct {
	Patch models.ProductPatch
}

func (u *UpdateProduct) UnmarshalJSON(b []byte) error {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(b, &body); err != nil {
		return err
	}

	var p models.ProductPatch

	if raw, ok := body["name"]; ok {
		s, err := requiredText("name", raw)
		if err != nil {
			return err
		}
		p.Name = &s
	}

	if raw, ok := body["description"]; ok {
		desc := sql.NullString{}
		if !isNull(raw) {
			s, err := parseText("description", raw)
			if err != nil {
				return err
			}
			desc = sql.NullString{String: s, Valid: true}
		}
		p.Description = &desc
	}

	if raw, ok := body["sku"]; ok {
		s, err := requiredText("sku", raw)
		if err != nil {
			return err
		}
		p.SKU = &s
	}

	if raw, ok := body["quantity"]; ok {
		if isNull(raw) {
			return fieldErr("quantity", "quantity cannot be null")
		}
		n, err := parseQuantity(raw)
		if err != nil {
			return err
		}
		p.Quantity = &n
	}

	if raw, ok := body["price"]; ok {
		if isNull(raw) {
			return fieldErr("price", "price cannot be null")
		}
		d, err := parsePrice(raw)
		if err != nil {
			return err
		}
		p.Price = &d
	}

	u.Patch = p
	return nil
}

func requiredText(field string, raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", fieldErr(field, "%s cannot be null", field)
	}
	s, err := parseText(field, raw)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fieldErr(field, "%s cannot be empty", field)
	}
	return s, nil
}
