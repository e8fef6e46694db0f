package repo

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/uptrace/bun"

	"github.com/casalista/backend/internal/model"
	"github.com/casalista/backend/internal/pkg/apperr"
	"github.com/casalista/backend/internal/repo/selector"
)

type Property struct {
	db  *bun.DB
	sel selector.S[model.Property]
}

func NewProperty(db *bun.DB) *Property {
	return &Property{db: db, sel: selector.New[model.Property](db)}
}

func (r *Property) GetProperties(ctx context.Context) ([]*model.Property, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("created_at DESC")
	})
}

// GetPropertyByID loads one property together with its owner, if linked, and
// its enquiries, newest first.
func (r *Property) GetPropertyByID(ctx context.Context, propertyID string) (*model.Property, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("p.id = ?", propertyID).
			Relation("Owner").
			Relation("Enquiries", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Order("created_at DESC")
			})
	})
}

// CreateProperty inserts a new property. The id and timestamps are assigned
// here; an owner id, when present, is written as-is without an existence
// check, matching the resolution policy applied by the caller.
func (r *Property) CreateProperty(ctx context.Context, property *model.Property) error {
	now := time.Now().UTC()
	property.PropertyID = strings.ToLower(ulid.Make().String())
	property.CreatedAt = now
	property.UpdatedAt = now

	if _, err := r.db.NewInsert().Model(property).Exec(ctx); err != nil {
		return err
	}
	return nil
}

func (r *Property) UpdateProperty(ctx context.Context, property *model.Property) error {
	property.UpdatedAt = time.Now().UTC()

	res, err := r.db.NewUpdate().
		Model(property).
		Column("title", "description", "address", "price", "bedrooms", "bathrooms", "area", "image_url", "updated_at").
		Where("id = ?", property.PropertyID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *Property) DeleteProperty(ctx context.Context, propertyID string) error {
	res, err := r.db.NewDelete().
		Model((*model.Property)(nil)).
		Where("id = ?", propertyID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// LinkOwner points an existing property at an owner.
func (r *Property) LinkOwner(ctx context.Context, propertyID, ownerID string) error {
	res, err := r.db.NewUpdate().
		Model((*model.Property)(nil)).
		Set("owner_id = ?", ownerID).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", propertyID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
