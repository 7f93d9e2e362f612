package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/inventory/app/models"
)

func TestBuildUpdate_AllFieldsInFixedOrder(t *testing.T) {
	name, sku := "Laptop Pro", "LAP-002"
	qty := int64(0)
	price := decimal.RequireFromString("0")
	desc := sql.NullString{String: "", Valid: true}

	query, args, err := buildUpdate(7, models.ProductPatch{
		Price:       &price,
		Quantity:    &qty,
		SKU:         &sku,
		Description: &desc,
		Name:        &name,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE products SET name = ?, description = ?, sku = ?, quantity = ?, price = ? WHERE id = ? RETURNING "+models.ProductColumns,
		query)
	assert.Equal(t, []any{name, desc, sku, qty, price, int64(7)}, args)
}

func TestBuildUpdate_SingleField(t *testing.T) {
	qty := int64(5)

	query, args, err := buildUpdate(42, models.ProductPatch{Quantity: &qty})
	require.NoError(t, err)

	assert.Equal(t, "UPDATE products SET quantity = ? WHERE id = ? RETURNING "+models.ProductColumns, query)
	assert.Equal(t, []any{int64(5), int64(42)}, args)
}

func TestBuildUpdate_ClearDescription(t *testing.T) {
	cleared := sql.NullString{}

	query, args, err := buildUpdate(1, models.ProductPatch{Description: &cleared})
	require.NoError(t, err)

	assert.Contains(t, query, "SET description = ? WHERE")
	assert.Equal(t, []any{sql.NullString{}, int64(1)}, args)
}

func TestBuildUpdate_IsDeterministic(t *testing.T) {
	name := "x"
	qty := int64(1)
	patch := models.ProductPatch{Name: &name, Quantity: &qty}

	first, _, err := buildUpdate(3, patch)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, _, err := buildUpdate(3, patch)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestBuildUpdate_EmptyPatch(t *testing.T) {
	query, args, err := buildUpdate(1, models.ProductPatch{})

	assert.True(t, errors.Is(err, ErrNoFields))
	assert.Empty(t, query)
	assert.Nil(t, args)
}
