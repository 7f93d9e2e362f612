package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/inventory/app/models"
	"github.com/shashiranjanraj/inventory/app/repositories"
	"github.com/shashiranjanraj/inventory/app/requests"
	"github.com/shashiranjanraj/inventory/pkg/bind"
	"github.com/shashiranjanraj/inventory/pkg/logger"
	"github.com/shashiranjanraj/inventory/pkg/response"
)

const (
	msgNotFound     = "Product not found"
	msgDuplicateSKU = "A product with this SKU already exists"
	msgRequired     = "Name, SKU, and price are required"
	msgNoFields     = "No fields to update"
	msgInvalidID    = "Invalid product ID"
	msgInvalidBody  = "Invalid JSON body"
	msgBodyTooLarge = "Request body too large"
	msgDeleted      = "Product deleted successfully"
)

// ProductStore is the persistence the controller needs.
// *repositories.ProductRepository satisfies it.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Find(ctx context.Context, id int64) (models.Product, error)
	Create(ctx context.Context, in models.NewProduct) (models.Product, error)
	Update(ctx context.Context, id int64, patch models.ProductPatch) (models.Product, error)
	Delete(ctx context.Context, id int64) (models.Product, error)
}

type ProductController struct {
	store  ProductStore
	locate func(id int64) (string, error)
}

func NewProductController(store ProductStore) *ProductController {
	return &ProductController{store: store}
}

// LocateWith sets how Store builds the Location header of a created product.
func (c *ProductController) LocateWith(fn func(id int64) (string, error)) {
	c.locate = fn
}

type deletedProduct struct {
	Message string         `json:"message"`
	Product models.Product `json:"product"`
}

// Index handles GET /products.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.store.List(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	response.Success(w, products)
}

// Show handles GET /products/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	p, err := c.store.Find(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	response.Success(w, p)
}

// Store handles POST /products.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var req requests.CreateProduct
	errs, err := bind.JSON(w, r, &req)
	if err != nil {
		badBody(w, err)
		return
	}
	if len(errs) > 0 {
		response.BadRequest(w, msgRequired)
		return
	}

	p, err := c.store.Create(r.Context(), req.Input())
	if err != nil {
		c.fail(w, r, err)
		return
	}

	if c.locate != nil {
		if loc, err := c.locate(p.ID); err == nil {
			w.Header().Set("Location", loc)
		}
	}
	logger.WithCtx(r.Context()).Info("product created", "id", p.ID, "sku", p.SKU)
	response.Created(w, p)
}

// Update handles PUT /products/{id}. Only the fields present in the body
// are written.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req requests.UpdateProduct
	if err := bind.Decode(w, r, &req); err != nil {
		badBody(w, err)
		return
	}
	if req.Patch.IsEmpty() {
		response.BadRequest(w, msgNoFields)
		return
	}

	p, err := c.store.Update(r.Context(), id, req.Patch)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("product updated", "id", p.ID)
	response.Success(w, p)
}

// Destroy handles DELETE /products/{id} and echoes the removed row.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	p, err := c.store.Delete(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("product deleted", "id", p.ID, "sku", p.SKU)
	response.Success(w, deletedProduct{Message: msgDeleted, Product: p})
}

// fail maps a repository error to a status. Anything unclassified is logged
// and reported as a bare 500.
func (c *ProductController) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		response.NotFound(w, msgNotFound)
	case errors.Is(err, repositories.ErrDuplicateKey):
		response.Conflict(w, msgDuplicateSKU)
	case errors.Is(err, repositories.ErrNoFields):
		response.BadRequest(w, msgNoFields)
	case errors.Is(err, repositories.ErrStorageUnavailable):
		logger.WithCtx(r.Context()).Error("storage unavailable", "error", err)
		response.InternalError(w)
	default:
		logger.WithCtx(r.Context()).Error("storage error", "error", err)
		response.InternalError(w)
	}
}

func badBody(w http.ResponseWriter, err error) {
	var fe *requests.FieldError
	switch {
	case errors.Is(err, bind.ErrBodyTooLarge):
		response.Error(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
	case errors.As(err, &fe):
		response.BadRequest(w, fe.Message)
	default:
		response.BadRequest(w, msgInvalidBody)
	}
}

func productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, msgInvalidID)
		return 0, false
	}
	return id, true
}
