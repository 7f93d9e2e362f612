package controllers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shashiranjanraj/inventory/app/models"
	"github.com/shashiranjanraj/inventory/app/repositories"
)

// fakeStore is an in-memory ProductStore that enforces SKU uniqueness and
// counts how often it was reached.
type fakeStore struct {
	mu      sync.Mutex
	rows    map[int64]models.Product
	nextID  int64
	calls   int
	failErr error
	pingErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[int64]models.Product{}, nextID: 1}
}

func (s *fakeStore) enter() error {
	s.mu.Lock()
	s.calls++
	return s.failErr
}

func (s *fakeStore) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *fakeStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func (s *fakeStore) List(context.Context) ([]models.Product, error) {
	err := s.enter()
	defer s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	out := make([]models.Product, 0, len(s.rows))
	for _, p := range s.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStore) Find(_ context.Context, id int64) (models.Product, error) {
	err := s.enter()
	defer s.mu.Unlock()
	if err != nil {
		return models.Product{}, err
	}

	p, ok := s.rows[id]
	if !ok {
		return models.Product{}, &repositories.Error{Op: "find", Kind: repositories.ErrNotFound}
	}
	return p, nil
}

func (s *fakeStore) Create(_ context.Context, in models.NewProduct) (models.Product, error) {
	err := s.enter()
	defer s.mu.Unlock()
	if err != nil {
		return models.Product{}, err
	}

	if s.skuTaken(in.SKU, 0) {
		return models.Product{}, &repositories.Error{Op: "create", Kind: repositories.ErrDuplicateKey}
	}

	p := models.Product{
		ID:          s.nextID,
		Name:        in.Name,
		Description: in.Description,
		SKU:         in.SKU,
		Quantity:    in.Quantity,
		Price:       in.Price,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	s.nextID++
	s.rows[p.ID] = p
	return p, nil
}

func (s *fakeStore) Update(_ context.Context, id int64, patch models.ProductPatch) (models.Product, error) {
	err := s.enter()
	defer s.mu.Unlock()
	if err != nil {
		return models.Product{}, err
	}

	if patch.IsEmpty() {
		return models.Product{}, &repositories.Error{Op: "update", Kind: repositories.ErrNoFields}
	}
	p, ok := s.rows[id]
	if !ok {
		return models.Product{}, &repositories.Error{Op: "update", Kind: repositories.ErrNotFound}
	}
	if patch.SKU != nil && s.skuTaken(*patch.SKU, id) {
		return models.Product{}, &repositories.Error{Op: "update", Kind: repositories.ErrDuplicateKey}
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		if patch.Description.Valid {
			d := patch.Description.String
			p.Description = &d
		} else {
			p.Description = nil
		}
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	s.rows[id] = p
	return p, nil
}

func (s *fakeStore) Delete(_ context.Context, id int64) (models.Product, error) {
	err := s.enter()
	defer s.mu.Unlock()
	if err != nil {
		return models.Product{}, err
	}

	p, ok := s.rows[id]
	if !ok {
		return models.Product{}, &repositories.Error{Op: "delete", Kind: repositories.ErrNotFound}
	}
	delete(s.rows, id)
	return p, nil
}

func (s *fakeStore) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pingErr
}

// skuTaken must be called with mu held.
func (s *fakeStore) skuTaken(sku string, except int64) bool {
	for id, p := range s.rows {
		if id != except && p.SKU == sku {
			return true
		}
	}
	return false
}
