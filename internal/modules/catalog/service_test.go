package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/shoplite-backend/internal/apperr"
)

type fakeRepo struct {
	products map[int64]*Product
	nextID   int64
}

func newFakeRepo() *fakeRepo { return &fakeRepo{products: map[int64]*Product{}} }

func (f *fakeRepo) Create(ctx context.Context, p *Product) error {
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, p *Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64, forAdmin bool) (*Product, error) {
	p, ok := f.products[id]
	if !ok || (!forAdmin && p.Quantity == 0) {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepo) List(ctx context.Context, forAdmin bool) ([]*Product, error) {
	var list []*Product
	for _, p := range f.products {
		if forAdmin || p.Quantity > 0 {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func kindOf(t *testing.T, err error) apperr.Kind {
	t.Helper()
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae), "expected apperr, got %v", err)
	return ae.Kind
}

func TestAddValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateProductRequest
	}{
		{"missing name", CreateProductRequest{RetailPrice: 1, WholesalePrice: 1, Quantity: 1}},
		{"negative retail", CreateProductRequest{Name: "x", RetailPrice: -1, Quantity: 1}},
		{"negative wholesale", CreateProductRequest{Name: "x", WholesalePrice: -1, Quantity: 1}},
		{"zero quantity", CreateProductRequest{Name: "x", Quantity: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tt.req)
			assert.Equal(t, apperr.KindValidation, kindOf(t, err))
		})
	}

	p, err := svc.Add(ctx, CreateProductRequest{Name: "Widget", WholesalePrice: 4, RetailPrice: 10, Quantity: 5})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
}

func TestPatchPartialUpdate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Add(ctx, CreateProductRequest{Name: "Widget", Description: "d", WholesalePrice: 4, RetailPrice: 10, Quantity: 5})
	require.NoError(t, err)

	retail := 12.5
	updated, err := svc.Patch(ctx, p.ID, UpdateProductRequest{RetailPrice: &retail})
	require.NoError(t, err)
	assert.Equal(t, 12.5, updated.RetailPrice)
	// Untouched fields keep their values.
	assert.Equal(t, "Widget", updated.Name)
	assert.Equal(t, 4.0, updated.WholesalePrice)
	assert.Equal(t, 5, updated.Quantity)
}

func TestPatchEmptyBodyIsNoOp(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Add(ctx, CreateProductRequest{Name: "Widget", WholesalePrice: 4, RetailPrice: 10, Quantity: 5})
	require.NoError(t, err)

	updated, err := svc.Patch(ctx, p.ID, UpdateProductRequest{})
	require.NoError(t, err)
	assert.Equal(t, *p, *updated)
}

func TestPatchInvalidLeavesRecordUntouched(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Add(ctx, CreateProductRequest{Name: "Widget", WholesalePrice: 4, RetailPrice: 10, Quantity: 5})
	require.NoError(t, err)

	bad := -3.0
	_, err = svc.Patch(ctx, p.ID, UpdateProductRequest{RetailPrice: &bad})
	assert.Equal(t, apperr.KindValidation, kindOf(t, err))

	current, err := svc.Get(ctx, p.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 10.0, current.RetailPrice)
}

func TestPatchUnknownProduct(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.Patch(context.Background(), 404, UpdateProductRequest{})
	assert.Equal(t, apperr.KindNotFound, kindOf(t, err))
}

func TestGetPublicHidesOutOfStock(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Add(ctx, CreateProductRequest{Name: "Widget", WholesalePrice: 4, RetailPrice: 10, Quantity: 1})
	require.NoError(t, err)
	repo.products[p.ID].Quantity = 0

	_, err = svc.Get(ctx, p.ID, false)
	assert.Equal(t, apperr.KindNotFound, kindOf(t, err))

	// The admin view still sees it.
	got, err := svc.Get(ctx, p.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)
}

func TestPublicViewOmitsSensitiveFields(t *testing.T) {
	p := &Product{ID: 1, Name: "Widget", Description: "d", WholesalePrice: 4, RetailPrice: 10, Quantity: 5}

	raw, err := json.Marshal(p.PublicView())
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "wholesalePrice")
	assert.NotContains(t, fields, "quantity")
	assert.Equal(t, "Widget", fields["name"])
	assert.Equal(t, 10.0, fields["retailPrice"])
}
