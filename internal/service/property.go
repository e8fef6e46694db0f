package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/guregu/null.v3"

	"github.com/casalista/backend/internal/model"
	"github.com/casalista/backend/internal/model/cache"
	"github.com/casalista/backend/internal/model/types"
	"github.com/casalista/backend/internal/pkg/apperr"
	"github.com/casalista/backend/internal/pkg/codec"
	"github.com/casalista/backend/internal/repo"
)

type Property struct {
	PropertyRepo *repo.Property
	OwnerRepo    *repo.Owner
	AssetService *Asset
	Auth         Authorizer
}

func NewProperty(propertyRepo *repo.Property, ownerRepo *repo.Owner, assetService *Asset, auth Authorizer) *Property {
	return &Property{
		PropertyRepo: propertyRepo,
		OwnerRepo:    ownerRepo,
		AssetService: assetService,
		Auth:         auth,
	}
}

// Cache: property list, 5 min
func (s *Property) GetProperties(ctx context.Context) ([]*model.Property, error) {
	var properties []*model.Property
	err := cache.Properties.MutexGetSet(&properties, func() ([]*model.Property, error) {
		return s.PropertyRepo.GetProperties(ctx)
	}, time.Minute*5)
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (s *Property) GetPropertyByID(ctx context.Context, propertyID string) (*model.Property, error) {
	return s.PropertyRepo.GetPropertyByID(ctx, propertyID)
}

// CreateProperty runs the full creation pipeline: upload resolution, owner
// resolution, persistence. Any upload or validation failure aborts the
// operation before anything is persisted.
func (s *Property) CreateProperty(ctx context.Context, submission *types.PropertySubmission) (*model.Property, error) {
	if err := s.Auth.CanMutate(ctx); err != nil {
		return nil, err
	}

	price, err := codec.DecodePrice(submission.Price)
	if err != nil {
		return nil, err
	}
	area, err := parseArea(submission.Area)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.AssetService.ResolveImage(ctx, submission.Image, submission.ImageURL)
	if err != nil {
		return nil, err
	}

	ownerID, ownerCreated, err := s.resolveOwner(ctx, submission)
	if err != nil {
		return nil, err
	}

	property := &model.Property{
		Title:       submission.Title,
		Description: nullIfBlank(submission.Description),
		Address:     submission.Address,
		Price:       price,
		Bedrooms:    submission.Bedrooms,
		Bathrooms:   submission.Bathrooms,
		Area:        area,
		ImageURL:    imageURL,
		OwnerID:     ownerID,
	}
	if err := s.PropertyRepo.CreateProperty(ctx, property); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to persist property")
		return nil, apperr.ErrPersistenceFailed
	}

	cache.FlushProperties()
	if ownerCreated {
		cache.FlushOwners()
	}

	return property, nil
}

// UpdateProperty replaces the mutable fields of an existing property. The
// stored image is kept when the submission carries neither a file nor a URL;
// owner linkage is not touched here.
func (s *Property) UpdateProperty(ctx context.Context, propertyID string, submission *types.PropertySubmission) (*model.Property, error) {
	if err := s.Auth.CanMutate(ctx); err != nil {
		return nil, err
	}

	property, err := s.PropertyRepo.GetPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	price, err := codec.DecodePrice(submission.Price)
	if err != nil {
		return nil, err
	}
	area, err := parseArea(submission.Area)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.AssetService.ResolveImage(ctx, submission.Image, submission.ImageURL)
	if err != nil {
		return nil, err
	}
	if imageURL.Valid {
		property.ImageURL = imageURL
	}

	property.Title = submission.Title
	property.Description = nullIfBlank(submission.Description)
	property.Address = submission.Address
	property.Price = price
	property.Bedrooms = submission.Bedrooms
	property.Bathrooms = submission.Bathrooms
	property.Area = area

	if err := s.PropertyRepo.UpdateProperty(ctx, property); err != nil {
		return nil, err
	}

	cache.FlushProperties()

	return property, nil
}

func (s *Property) DeleteProperty(ctx context.Context, propertyID string) error {
	if err := s.Auth.CanMutate(ctx); err != nil {
		return err
	}

	if err := s.PropertyRepo.DeleteProperty(ctx, propertyID); err != nil {
		return err
	}

	cache.FlushProperties()
	cache.FlushEnquiries()

	return nil
}

// resolveOwner performs the three-way owner resolution for a property
// creation: an existing owner id is used as-is (no existence check), else a
// new owner is created when a name was supplied, else the property stays
// unlinked. The reported bool is true when a new owner row was created.
func (s *Property) resolveOwner(ctx context.Context, submission *types.PropertySubmission) (*string, bool, error) {
	if ownerID := strings.TrimSpace(submission.OwnerID); ownerID != "" {
		return &ownerID, false, nil
	}

	name := strings.TrimSpace(submission.OwnerName)
	if name == "" {
		return nil, false, nil
	}

	var imageURL null.String
	if submission.OwnerImage != nil && submission.OwnerImage.Size > 0 {
		ref, err := s.AssetService.SaveMultipart(ctx, submission.OwnerImage)
		if err != nil {
			return nil, false, err
		}
		imageURL = null.StringFrom(ref)
	}

	owner := &model.Owner{
		Name:     name,
		Address:  nullIfBlank(submission.OwnerAddress),
		Phone:    nullIfBlank(submission.OwnerPhone),
		Email:    nullIfBlank(submission.OwnerEmail),
		ImageURL: imageURL,
	}
	if err := s.OwnerRepo.CreateOwner(ctx, owner); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to persist owner for property creation")
		return nil, false, apperr.ErrPersistenceFailed
	}

	return &owner.OwnerID, true, nil
}

func parseArea(s string) (null.Float, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.Float{}, nil
	}
	area, err := strconv.ParseFloat(s, 64)
	if err != nil || area <= 0 {
		return null.Float{}, apperr.ErrValidationFailed.Msg("invalid area %q: not a positive number", s)
	}
	return null.FloatFrom(area), nil
}

func nullIfBlank(s string) null.String {
	s = strings.TrimSpace(s)
	return null.NewString(s, s != "")
}
