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

type Owner struct {
	db  *bun.DB
	sel selector.S[model.Owner]
}

func NewOwner(db *bun.DB) *Owner {
	return &Owner{db: db, sel: selector.New[model.Owner](db)}
}

func (r *Owner) GetOwners(ctx context.Context) ([]*model.Owner, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Order("created_at DESC").
			Relation("Properties")
	})
}

func (r *Owner) GetOwnerByID(ctx context.Context, ownerID string) (*model.Owner, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("o.id = ?", ownerID).
			Relation("Properties")
	})
}

func (r *Owner) CreateOwner(ctx context.Context, owner *model.Owner) error {
	now := time.Now().UTC()
	owner.OwnerID = strings.ToLower(ulid.Make().String())
	owner.CreatedAt = now
	owner.UpdatedAt = now

	if _, err := r.db.NewInsert().Model(owner).Exec(ctx); err != nil {
		return err
	}
	return nil
}

func (r *Owner) UpdateOwner(ctx context.Context, owner *model.Owner) error {
	owner.UpdatedAt = time.Now().UTC()

	res, err := r.db.NewUpdate().
		Model(owner).
		Column("name", "address", "phone", "email", "image_url", "updated_at").
		Where("id = ?", owner.OwnerID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// DeleteOwner removes an owner in two steps inside one transaction: every
// property pointing at the owner gets its owner reference cleared, then the
// owner row is deleted. Readers never observe a property pointing at a
// deleted owner, and a delete failure rolls the unlink back.
func (r *Owner) DeleteOwner(ctx context.Context, ownerID string) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().
			Model((*model.Property)(nil)).
			Set("owner_id = NULL").
			Set("updated_at = ?", time.Now().UTC()).
			Where("owner_id = ?", ownerID).
			Exec(ctx); err != nil {
			return err
		}

		res, err := tx.NewDelete().
			Model((*model.Owner)(nil)).
			Where("id = ?", ownerID).
			Exec(ctx)
		if err != nil {
			return err
		}
		if rows, err := res.RowsAffected(); err == nil && rows == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
}
