package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Owner struct {
	bun.BaseModel `bun:"owners,alias:o"`

	OwnerID  string      `bun:"id,pk" json:"id"`
	Name     string      `json:"name"`
	Address  null.String `json:"address"`
	Phone    null.String `json:"phone"`
	Email    null.String `json:"email"`
	ImageURL null.String `bun:"image_url" json:"imageUrl"`

	CreatedAt time.Time `bun:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at" json:"updatedAt"`

	Properties []*Property `bun:"rel:has-many,join:id=owner_id" json:"properties,omitempty"`
}
