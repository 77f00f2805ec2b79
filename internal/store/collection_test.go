package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpointcnc/xpoint-backend/internal/domain"
)

func newCustomerCollection(t *testing.T) *Collection[domain.Customer] {
	t.Helper()
	s := Open(NewFileBackend(filepath.Join(t.TempDir(), "data.json"), false))
	return NewCollection(s, func(db *domain.Database) *[]domain.Customer {
		return &db.Customers
	})
}

func TestCreateAssignsIDOneOnEmptyCollection(t *testing.T) {
	ctx := context.Background()
	c := newCustomerCollection(t)

	created, err := c.Create(ctx, domain.Customer{
		Name:        "Ayşe Demir",
		Company:     "Demir Ltd",
		TotalAmount: decimal.NewFromInt(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	got, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateNeverRefillsIdentityGaps(t *testing.T) {
	ctx := context.Background()
	c := newCustomerCollection(t)

	for _, name := range []string{"a", "b", "c"} {
		_, err := c.Create(ctx, domain.Customer{Name: name})
		require.NoError(t, err)
	}
	require.NoError(t, c.Delete(ctx, 2))

	created, err := c.Create(ctx, domain.Customer{Name: "d"})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID, "gap left by id 2 must not be refilled")
}

func TestCreateReturnsStoredFields(t *testing.T) {
	ctx := context.Background()
	c := newCustomerCollection(t)

	in := domain.Customer{
		Name:        "Kemal Us",
		Company:     "Us Makina",
		Phone:       "0500 000 0000",
		TotalOrders: 2,
		TotalAmount: decimal.RequireFromString("1250.75"),
	}
	created, err := c.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, in.WithID(created.ID), created)
}

func TestUpdateReplacesAllFieldsExceptID(t *testing.T) {
	ctx := context.Background()
	c := newCustomerCollection(t)

	created, err := c.Create(ctx, domain.Customer{Name: "old", Company: "old co", TotalOrders: 9})
	require.NoError(t, err)

	updated, err := c.Update(ctx, created.ID, domain.Customer{Name: "new", TotalAmount: decimal.NewFromInt(0)})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "new", updated.Name)
	assert.Empty(t, updated.Company)
	assert.Zero(t, updated.TotalOrders)

	got, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateAndDeleteMissingIDFailAlike(t *testing.T) {
	ctx := context.Background()
	c := newCustomerCollection(t)

	created, err := c.Create(ctx, domain.Customer{Name: "only", TotalAmount: decimal.NewFromInt(0)})
	require.NoError(t, err)

	_, err = c.Update(ctx, 99, domain.Customer{Name: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, c.Delete(ctx, 99), ErrNotFound)

	// failed operations must leave the collection unchanged
	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
}

func TestDeleteRemovesExactlyOneRecord(t *testing.T) {
	ctx := context.Background()
	c := newCustomerCollection(t)

	var ids []int
	for _, name := range []string{"a", "b", "c"} {
		created, err := c.Create(ctx, domain.Customer{Name: name})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	require.NoError(t, c.Delete(ctx, ids[1]))

	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[0], list[0].ID)
	assert.Equal(t, ids[2], list[1].ID)

	_, err = c.Get(ctx, ids[1])
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	c := newCustomerCollection(t)

	names := []string{"first", "second", "third"}
	for _, name := range names {
		_, err := c.Create(ctx, domain.Customer{Name: name})
		require.NoError(t, err)
	}

	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(names))
	for i, name := range names {
		assert.Equal(t, name, list[i].Name)
	}
}

func TestCollectionsShareOneStoreButNotIdentities(t *testing.T) {
	ctx := context.Background()
	s := Open(NewFileBackend(filepath.Join(t.TempDir(), "data.json"), false))
	customers := NewCollection(s, func(db *domain.Database) *[]domain.Customer {
		return &db.Customers
	})
	products := NewCollection(s, func(db *domain.Database) *[]domain.Product {
		return &db.Products
	})

	cu, err := customers.Create(ctx, domain.Customer{Name: "c"})
	require.NoError(t, err)
	pr, err := products.Create(ctx, domain.Product{Name: "p"})
	require.NoError(t, err)

	// identity sequences are per collection, both start at 1
	assert.Equal(t, 1, cu.ID)
	assert.Equal(t, 1, pr.ID)

	// mutating one collection must not disturb the other
	list, err := customers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateOnReadOnlyStoreFails(t *testing.T) {
	ctx := context.Background()
	s := Open(NewFileBackend(filepath.Join(t.TempDir(), "data.json"), true))
	c := NewCollection(s, func(db *domain.Database) *[]domain.Customer {
		return &db.Customers
	})

	_, err := c.Create(ctx, domain.Customer{Name: "nope"})
	assert.ErrorIs(t, err, ErrReadOnly)

	list, err := c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
