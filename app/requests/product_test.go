package requests_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/inventory/app/requests"
)

func TestCreateProduct_Input(t *testing.T) {
	var req requests.CreateProduct
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Laptop","sku":"LAP-001","price":"999.99"}`), &req))

	in := req.Input()
	assert.Equal(t, "Laptop", in.Name)
	assert.Equal(t, "LAP-001", in.SKU)
	assert.Nil(t, in.Description)
	assert.Equal(t, int64(0), in.Quantity, "quantity defaults to 0")
	assert.True(t, in.Price.Equal(decimal.RequireFromString("999.99")))
}

func TestCreateProduct_Coercion(t *testing.T) {
	tests := []struct {
		body    string
		wantErr string
	}{
		{`{"quantity":12}`, ""},
		{`{"quantity":"12"}`, ""},
		{`{"quantity":-4}`, ""},
		{`{"quantity":"1e3"}`, "quantity must be an integer"},
		{`{"quantity":true}`, "quantity must be an integer"},
		{`{"price":-1.25}`, ""},
		{`{"price":" 3.10 "}`, ""},
		{`{"price":""}`, "price must be a number"},
		{`{"price":"NaN"}`, "price must be a number"},
		{`{"price":[1]}`, "price must be a number"},
		{`{"price":-100000000}`, "price is out of range"},
		{`{"price":99999999.995}`, "price is out of range"},
		{`{"price":"99999999.999"}`, "price is out of range"},
		{`{"price":99999999.994}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req requests.CreateProduct
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var fe *requests.FieldError
			require.True(t, errors.As(err, &fe), "got %v", err)
			assert.Equal(t, tt.wantErr, fe.Message)
		})
	}
}

func TestUpdateProduct_OnlyAllowListedKeys(t *testing.T) {
	var req requests.UpdateProduct
	require.NoError(t, json.Unmarshal([]byte(`{"id":9,"created_at":"2020-01-01","name":"New"}`), &req))

	require.NotNil(t, req.Patch.Name)
	assert.Equal(t, "New", *req.Patch.Name)
	assert.Nil(t, req.Patch.Description)
	assert.Nil(t, req.Patch.SKU)
	assert.Nil(t, req.Patch.Quantity)
	assert.Nil(t, req.Patch.Price)
	assert.False(t, req.Patch.IsEmpty())
}

func TestUpdateProduct_Description(t *testing.T) {
	var cleared requests.UpdateProduct
	require.NoError(t, json.Unmarshal([]byte(`{"description":null}`), &cleared))
	require.NotNil(t, cleared.Patch.Description)
	assert.False(t, cleared.Patch.Description.Valid)

	var set requests.UpdateProduct
	require.NoError(t, json.Unmarshal([]byte(`{"description":""}`), &set))
	require.NotNil(t, set.Patch.Description)
	assert.True(t, set.Patch.Description.Valid)
	assert.Equal(t, "", set.Patch.Description.String)
}

func TestUpdateProduct_ZeroValuesArePresent(t *testing.T) {
	var req requests.UpdateProduct
	require.NoError(t, json.Unmarshal([]byte(`{"quantity":0,"price":0}`), &req))

	require.NotNil(t, req.Patch.Quantity)
	require.NotNil(t, req.Patch.Price)
	assert.Equal(t, int64(0), *req.Patch.Quantity)
	assert.True(t, req.Patch.Price.IsZero())
}

func TestUpdateProduct_Rejects(t *testing.T) {
	tests := map[string]string{
		`{"name":null}`:     "name cannot be null",
		`{"sku":""}`:        "sku cannot be empty",
		`{"sku":7}`:         "sku must be a string",
		`{"quantity":null}`: "quantity cannot be null",
		`{"price":null}`:    "price cannot be null",
		`{"price":"ten"}`:   "price must be a number",
		`{"description":1}`: "description must be a string",
	}

	for body, want := range tests {
		t.Run(body, func(t *testing.T) {
			var req requests.UpdateProduct
			err := json.Unmarshal([]byte(body), &req)

			var fe *requests.FieldError
			require.True(t, errors.As(err, &fe), "got %v", err)
			assert.Equal(t, want, fe.Message)
		})
	}
}

func TestUpdateProduct_Empty(t *testing.T) {
	var req requests.UpdateProduct
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.True(t, req.Patch.IsEmpty())
}
