package repo

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/uptrace/bun"

	"github.com/casalista/backend/internal/model"
	"github.com/casalista/backend/internal/repo/selector"
)

type Enquiry struct {
	db  *bun.DB
	sel selector.S[model.Enquiry]
}

func NewEnquiry(db *bun.DB) *Enquiry {
	return &Enquiry{db: db, sel: selector.New[model.Enquiry](db)}
}

// GetEnquiries returns all enquiries, newest first, each carrying its
// property's id and title for display.
func (r *Enquiry) GetEnquiries(ctx context.Context) ([]*model.Enquiry, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Order("e.created_at DESC").
			Relation("Property", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Column("id", "title")
			})
	})
}

func (r *Enquiry) CreateEnquiry(ctx context.Context, enquiry *model.Enquiry) error {
	enquiry.EnquiryID = strings.ToLower(ulid.Make().String())
	enquiry.CreatedAt = time.Now().UTC()

	if _, err := r.db.NewInsert().Model(enquiry).Exec(ctx); err != nil {
		return err
	}
	return nil
}
