package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/inventory/app/models"
	"github.com/shashiranjanraj/inventory/pkg/metrics"
)

const (
	selectProducts = "SELECT " + models.ProductColumns + " FROM products ORDER BY id ASC"
	selectProduct  = "SELECT " + models.ProductColumns + " FROM products WHERE id = ?"
	insertProduct  = "INSERT INTO products (name, description, sku, quantity, price) VALUES (?, ?, ?, ?, ?) RETURNING " + models.ProductColumns
	deleteProduct  = "DELETE FROM products WHERE id = ? RETURNING " + models.ProductColumns
)

// ProductRepository runs the SQL for the products table. Each method issues a
// single statement bounded by the configured timeout.
type ProductRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewProductRepository returns a repository over db. A non-positive timeout
// leaves statements bounded only by the caller's context.
func NewProductRepository(db *gorm.DB, timeout time.Duration) *ProductRepository {
	return &ProductRepository{db: db, timeout: timeout}
}

// List returns every product ordered by id. The result is never nil.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if _, err := r.scan(ctx, "list", &products, selectProducts); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Find returns the product with the given id or ErrNotFound.
func (r *ProductRepository) Find(ctx context.Context, id int64) (models.Product, error) {
	return r.one(ctx, "find", selectProduct, id)
}

// Create inserts a product and returns the stored row, including the
// generated id and created_at.
func (r *ProductRepository) Create(ctx context.Context, in models.NewProduct) (models.Product, error) {
	return r.one(ctx, "create", insertProduct, in.Name, in.Description, in.SKU, in.Quantity, in.Price)
}

// Update applies patch to the product with the given id. An empty patch fails
// with ErrNoFields without touching the database.
func (r *ProductRepository) Update(ctx context.Context, id int64, patch models.ProductPatch) (models.Product, error) {
	query, args, err := buildUpdate(id, patch)
	if err != nil {
		return models.Product{}, newError("update", ErrNoFields)
	}
	return r.one(ctx, "update", query, args...)
}

// Delete removes the product and returns the row as it was.
func (r *ProductRepository) Delete(ctx context.Context, id int64) (models.Product, error) {
	return r.one(ctx, "delete", deleteProduct, id)
}

// Ping checks that a pooled connection can reach the database.
func (r *ProductRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	sqlDB, err := r.db.DB()
	if err != nil {
		return classify("ping", err)
	}
	return classify("ping", sqlDB.PingContext(ctx))
}

func (r *ProductRepository) one(ctx context.Context, op, query string, args ...any) (models.Product, error) {
	var p models.Product
	n, err := r.scan(ctx, op, &p, query, args...)
	if err != nil {
		return models.Product{}, err
	}
	if n == 0 {
		return models.Product{}, newError(op, ErrNotFound)
	}
	return p, nil
}

func (r *ProductRepository) scan(ctx context.Context, op string, dest any, query string, args ...any) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery(op, time.Now())

	res := r.db.WithContext(ctx).Raw(query, args...).Scan(dest)
	if res.Error != nil {
		return 0, classify(op, res.Error)
	}
	return res.RowsAffected, nil
}

func (r *ProductRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}
