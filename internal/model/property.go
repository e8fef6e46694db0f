package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"github.com/casalista/backend/internal/pkg/codec"
)

type Property struct {
	bun.BaseModel `bun:"properties,alias:p"`

	PropertyID  string      `bun:"id,pk" json:"id"`
	Title       string      `json:"title"`
	Description null.String `json:"description"`
	Address     string      `json:"address"`

	// Price is an exact decimal; it travels the wire as a quoted
	// fixed-scale string so no precision is lost to binary floats and no
	// trailing zeros are trimmed.
	Price codec.Price `bun:"price,type:numeric(14,2)" json:"price"`

	Bedrooms  int         `json:"bedrooms"`
	Bathrooms int         `json:"bathrooms"`
	Area      null.Float  `json:"area"`
	ImageURL  null.String `bun:"image_url" json:"imageUrl"`

	// OwnerID is a nullable reference; it stays a plain string pointer so
	// bun can match it against the owner pk in the has-many join. Clearing
	// it detaches the property from its owner without touching the row.
	OwnerID *string `bun:"owner_id" json:"ownerId"`

	CreatedAt time.Time `bun:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at" json:"updatedAt"`

	Owner     *Owner     `bun:"rel:belongs-to,join:owner_id=id" json:"owner,omitempty"`
	Enquiries []*Enquiry `bun:"rel:has-many,join:id=property_id" json:"enquiries,omitempty"`
}
