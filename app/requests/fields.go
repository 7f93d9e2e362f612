package requests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// maxPrice is the first value numeric(10,2) cannot hold once rounded to
// two places.
var maxPrice = decimal.New(1, 8)

// FieldError reports a field the client sent in an unusable form.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

func fieldErr(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

var null = []byte("null")

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), null)
}

// scalar returns the text of a JSON number or string.
func scalar(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return strings.TrimSpace(s), true
	}
	if raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9') {
		return string(raw), true
	}
	return "", false
}

// Price accepts a JSON number or a numeric string.
type Price struct {
	decimal.Decimal
}

func (p *Price) UnmarshalJSON(raw []byte) error {
	d, err := parsePrice(raw)
	if err != nil {
		return err
	}
	p.Decimal = d
	return nil
}

func parsePrice(raw json.RawMessage) (decimal.Decimal, error) {
	s, ok := scalar(raw)
	if !ok || s == "" {
		return decimal.Decimal{}, fieldErr("price", "price must be a number")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fieldErr("price", "price must be a number")
	}
	if d.Round(2).Abs().GreaterThanOrEqual(maxPrice) {
		return decimal.Decimal{}, fieldErr("price", "price is out of range")
	}
	return d, nil
}

// Quantity accepts a JSON integer or an integer string.
type Quantity int64

func (q *Quantity) UnmarshalJSON(raw []byte) error {
	n, err := parseQuantity(raw)
	if err != nil {
		return err
	}
	*q = Quantity(n)
	return nil
}

func parseQuantity(raw json.RawMessage) (int64, error) {
	s, ok := scalar(raw)
	if !ok || s == "" {
		return 0, fieldErr("quantity", "quantity must be an integer")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fieldErr("quantity", "quantity must be an integer")
	}
	// The column is a 4-byte integer.
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fieldErr("quantity", "quantity is out of range")
	}
	return n, nil
}

func parseText(field string, raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fieldErr(field, "%s must be a string", field)
	}
	return s, nil
}
