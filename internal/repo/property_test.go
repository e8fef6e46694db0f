package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/casalista/backend/internal/model"
	"github.com/casalista/backend/internal/pkg/apperr"
	"github.com/casalista/backend/internal/pkg/codec"
)

func TestPropertyCreateAndGet(t *testing.T) {
	db := testDB(t)
	r := NewProperty(db)
	ctx := context.Background()

	p := &model.Property{
		Title:    "Apto Centro",
		Address:  "Rua A, 10",
		Price:    mustPrice(t, "250000.00"),
		Bedrooms: 2, Bathrooms: 1,
	}
	require.NoError(t, r.CreateProperty(ctx, p))
	require.NotEmpty(t, p.PropertyID)

	got, err := r.GetPropertyByID(ctx, p.PropertyID)
	require.NoError(t, err)
	assert.Equal(t, "Apto Centro", got.Title)
	assert.Equal(t, "250000.00", codec.EncodePrice(got.Price))
	assert.False(t, got.ImageURL.Valid)
	assert.Nil(t, got.OwnerID)
	assert.Nil(t, got.Owner)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestPropertyGetByIDNotFound(t *testing.T) {
	db := testDB(t)
	r := NewProperty(db)

	_, err := r.GetPropertyByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPropertyListNewestFirst(t *testing.T) {
	db := testDB(t)
	r := NewProperty(db)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		p := &model.Property{
			Title:    title,
			Address:  "Rua A, 10",
			Price:    mustPrice(t, "1000.00"),
			Bedrooms: 1, Bathrooms: 1,
		}
		require.NoError(t, r.CreateProperty(ctx, p))
		time.Sleep(2 * time.Millisecond)
	}

	list, err := r.GetProperties(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Title)
	assert.Equal(t, "first", list[2].Title)
}

func TestPropertyUpdate(t *testing.T) {
	db := testDB(t)
	r := NewProperty(db)
	ctx := context.Background()

	p := &model.Property{
		Title:    "Apto Centro",
		Address:  "Rua A, 10",
		Price:    mustPrice(t, "250000.00"),
		Bedrooms: 2, Bathrooms: 1,
	}
	require.NoError(t, r.CreateProperty(ctx, p))

	p.Title = "Apto Centro Reformado"
	p.Price = mustPrice(t, "275000.00")
	p.Area = null.FloatFrom(72.5)
	require.NoError(t, r.UpdateProperty(ctx, p))

	got, err := r.GetPropertyByID(ctx, p.PropertyID)
	require.NoError(t, err)
	assert.Equal(t, "Apto Centro Reformado", got.Title)
	assert.Equal(t, "275000.00", codec.EncodePrice(got.Price))
	assert.Equal(t, 72.5, got.Area.Float64)

	missing := &model.Property{PropertyID: "missing", Title: "x", Address: "y", Price: mustPrice(t, "1.00")}
	assert.ErrorIs(t, r.UpdateProperty(ctx, missing), apperr.ErrNotFound)
}

func TestPropertyDelete(t *testing.T) {
	db := testDB(t)
	r := NewProperty(db)
	ctx := context.Background()

	p := &model.Property{
		Title:    "Apto Centro",
		Address:  "Rua A, 10",
		Price:    mustPrice(t, "250000.00"),
		Bedrooms: 2, Bathrooms: 1,
	}
	require.NoError(t, r.CreateProperty(ctx, p))
	require.NoError(t, r.DeleteProperty(ctx, p.PropertyID))

	_, err := r.GetPropertyByID(ctx, p.PropertyID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.ErrorIs(t, r.DeleteProperty(ctx, p.PropertyID), apperr.ErrNotFound)
}

func TestPropertyLinkOwner(t *testing.T) {
	db := testDB(t)
	properties := NewProperty(db)
	owners := NewOwner(db)
	ctx := context.Background()

	owner := &model.Owner{Name: "Ana"}
	require.NoError(t, owners.CreateOwner(ctx, owner))

	p := &model.Property{
		Title:    "Apto Centro",
		Address:  "Rua A, 10",
		Price:    mustPrice(t, "250000.00"),
		Bedrooms: 2, Bathrooms: 1,
	}
	require.NoError(t, properties.CreateProperty(ctx, p))
	require.NoError(t, properties.LinkOwner(ctx, p.PropertyID, owner.OwnerID))

	got, err := properties.GetPropertyByID(ctx, p.PropertyID)
	require.NoError(t, err)
	require.NotNil(t, got.Owner)
	assert.Equal(t, "Ana", got.Owner.Name)

	assert.ErrorIs(t, properties.LinkOwner(ctx, "missing", owner.OwnerID), apperr.ErrNotFound)
}
