package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/casalista/backend/internal/model"
	"github.com/casalista/backend/internal/pkg/apperr"
)

func TestOwnerCreateStoresBlanksAsAbsent(t *testing.T) {
	db := testDB(t)
	r := NewOwner(db)
	ctx := context.Background()

	owner := &model.Owner{Name: "Ana"}
	require.NoError(t, r.CreateOwner(ctx, owner))
	require.NotEmpty(t, owner.OwnerID)

	got, err := r.GetOwnerByID(ctx, owner.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.False(t, got.Address.Valid)
	assert.False(t, got.Phone.Valid)
	assert.False(t, got.Email.Valid)
	assert.False(t, got.ImageURL.Valid)
}

func TestOwnerGetByIDNotFound(t *testing.T) {
	db := testDB(t)
	r := NewOwner(db)

	_, err := r.GetOwnerByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestOwnerUpdate(t *testing.T) {
	db := testDB(t)
	r := NewOwner(db)
	ctx := context.Background()

	owner := &model.Owner{Name: "Ana"}
	require.NoError(t, r.CreateOwner(ctx, owner))

	owner.Name = "Ana Paula"
	owner.Phone = null.StringFrom("+55 11 98888-0000")
	require.NoError(t, r.UpdateOwner(ctx, owner))

	got, err := r.GetOwnerByID(ctx, owner.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Paula", got.Name)
	assert.Equal(t, "+55 11 98888-0000", got.Phone.String)

	missing := &model.Owner{OwnerID: "missing", Name: "x"}
	assert.ErrorIs(t, r.UpdateOwner(ctx, missing), apperr.ErrNotFound)
}

func TestOwnerDeleteUnlinksProperties(t *testing.T) {
	db := testDB(t)
	owners := NewOwner(db)
	properties := NewProperty(db)
	ctx := context.Background()

	owner := &model.Owner{Name: "Ana"}
	require.NoError(t, owners.CreateOwner(ctx, owner))

	var ids []string
	for i := 0; i < 3; i++ {
		p := &model.Property{
			Title:    "Apto",
			Address:  "Rua A, 10",
			Price:    mustPrice(t, "1000.00"),
			Bedrooms: 1, Bathrooms: 1,
			OwnerID: &owner.OwnerID,
		}
		require.NoError(t, properties.CreateProperty(ctx, p))
		ids = append(ids, p.PropertyID)
	}

	require.NoError(t, owners.DeleteOwner(ctx, owner.OwnerID))

	_, err := owners.GetOwnerByID(ctx, owner.OwnerID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	for _, id := range ids {
		p, err := properties.GetPropertyByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, p.OwnerID, "property %s should be unlinked", id)
		assert.Nil(t, p.Owner)
	}
}

func TestOwnerDeleteWithoutPropertiesRemovesRow(t *testing.T) {
	db := testDB(t)
	r := NewOwner(db)
	ctx := context.Background()

	owner := &model.Owner{Name: "Bruno"}
	require.NoError(t, r.CreateOwner(ctx, owner))
	require.NoError(t, r.DeleteOwner(ctx, owner.OwnerID))

	_, err := r.GetOwnerByID(ctx, owner.OwnerID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestOwnerDeleteNotFoundRollsBack(t *testing.T) {
	db := testDB(t)
	owners := NewOwner(db)
	properties := NewProperty(db)
	ctx := context.Background()

	owner := &model.Owner{Name: "Ana"}
	require.NoError(t, owners.CreateOwner(ctx, owner))
	p := &model.Property{
		Title:    "Apto",
		Address:  "Rua A, 10",
		Price:    mustPrice(t, "1000.00"),
		Bedrooms: 1, Bathrooms: 1,
		OwnerID: &owner.OwnerID,
	}
	require.NoError(t, properties.CreateProperty(ctx, p))

	// deleting a different, missing owner must not touch anything
	assert.ErrorIs(t, owners.DeleteOwner(ctx, "missing"), apperr.ErrNotFound)

	got, err := properties.GetPropertyByID(ctx, p.PropertyID)
	require.NoError(t, err)
	require.NotNil(t, got.OwnerID)
	assert.Equal(t, owner.OwnerID, *got.OwnerID)
}

func TestOwnerListIncludesProperties(t *testing.T) {
	db := testDB(t)
	owners := NewOwner(db)
	properties := NewProperty(db)
	ctx := context.Background()

	owner := &model.Owner{Name: "Ana"}
	require.NoError(t, owners.CreateOwner(ctx, owner))
	p := &model.Property{
		Title:    "Apto Centro",
		Address:  "Rua A, 10",
		Price:    mustPrice(t, "250000.00"),
		Bedrooms: 2, Bathrooms: 1,
		OwnerID: &owner.OwnerID,
	}
	require.NoError(t, properties.CreateProperty(ctx, p))

	list, err := owners.GetOwners(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Properties, 1)
	assert.Equal(t, "Apto Centro", list[0].Properties[0].Title)
}
