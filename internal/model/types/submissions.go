package types

import "mime/multipart"

// PropertySubmission is the flat field set a property create/update form
// carries. Numeric-looking fields arrive as strings and are decoded at the
// orchestration layer; file parts are attached by the controller.
type PropertySubmission struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	Address     string `form:"address" validate:"required"`
	Price       string `form:"price" validate:"required"`
	Bedrooms    int    `form:"bedrooms" validate:"min=0"`
	Bathrooms   int    `form:"bathrooms" validate:"min=0"`
	Area        string `form:"area"`
	ImageURL    string `form:"imageUrl"`

	// Owner resolution: an existing owner id wins over new-owner fields;
	// a new owner is created only when OwnerName is set and OwnerID is not.
	OwnerID      string `form:"ownerId"`
	OwnerName    string `form:"ownerName"`
	OwnerAddress string `form:"ownerAddress"`
	OwnerPhone   string `form:"ownerPhone"`
	OwnerEmail   string `form:"ownerEmail"`

	Image      *multipart.FileHeader `form:"-"`
	OwnerImage *multipart.FileHeader `form:"-"`
}

// OwnerSubmission is the flat field set an owner create/update form carries.
type OwnerSubmission struct {
	Name    string `form:"name" validate:"required"`
	Address string `form:"address"`
	Phone   string `form:"phone"`
	Email   string `form:"email"`

	ImageURL string `form:"imageUrl"`

	// PropertyID optionally links an existing property to the owner being
	// created, on a best-effort basis.
	PropertyID string `form:"propertyId"`

	Image *multipart.FileHeader `form:"-"`
}

// EnquirySubmission is the JSON body of an enquiry creation request.
type EnquirySubmission struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Message    string `json:"message" validate:"required"`
	PropertyID string `json:"propertyId" validate:"required"`
}
