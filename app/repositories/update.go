package repositories

import (
	"strings"

	"github.com/shashiranjanraj/inventory/app/models"
)

// updatable is the fixed allow-list of columns an update may touch, in the
// order their assignments appear in the SET clause.
var updatable = []struct {
	column string
	value  func(models.ProductPatch) (any, bool)
}{
	{"name", func(p models.ProductPatch) (any, bool) {
		if p.Name == nil {
			return nil, false
		}
		return *p.Name, true
	}},
	{"description", func(p models.ProductPatch) (any, bool) {
		if p.Description == nil {
			return nil, false
		}
		return *p.Description, true
	}},
	{"sku", func(p models.ProductPatch) (any, bool) {
		if p.SKU == nil {
			return nil, false
		}
		return *p.SKU, true
	}},
	{"quantity", func(p models.ProductPatch) (any, bool) {
		if p.Quantity == nil {
			return nil, false
		}
		return *p.Quantity, true
	}},
	{"price", func(p models.ProductPatch) (any, bool) {
		if p.Price == nil {
			return nil, false
		}
		return *p.Price, true
	}},
}

// buildUpdate renders the UPDATE statement for patch. The id is always the
// last bound argument. Returns ErrNoFields when patch sets nothing.
func buildUpdate(id int64, patch models.ProductPatch) (string, []any, error) {
	sets := make([]string, 0, len(updatable))
	args := make([]any, 0, len(updatable)+1)

	for _, col := range updatable {
		v, ok := col.value(patch)
		if !ok {
			continue
		}
		sets = append(sets, col.column+" = ?")
		args = append(args, v)
	}
	if len(sets) == 0 {
		return "", nil, ErrNoFields
	}
	args = append(args, id)

	query := "UPDATE products SET " + strings.Join(sets, ", ") +
		" WHERE id = ? RETURNING " + models.ProductColumns
	return query, args, nil
}
