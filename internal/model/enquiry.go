package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Enquiry is append-only: rows are never updated or deleted through the API.
type Enquiry struct {
	bun.BaseModel `bun:"enquiries,alias:e"`

	EnquiryID  string      `bun:"id,pk" json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      null.String `json:"phone"`
	Message    string      `json:"message"`
	PropertyID string      `bun:"property_id" json:"propertyId"`

	CreatedAt time.Time `bun:"created_at" json:"createdAt"`

	Property *Property `bun:"rel:belongs-to,join:property_id=id" json:"property,omitempty"`
}
