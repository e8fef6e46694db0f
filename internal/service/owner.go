package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/casalista/backend/internal/model"
	"github.com/casalista/backend/internal/model/cache"
	"github.com/casalista/backend/internal/model/types"
	"github.com/casalista/backend/internal/pkg/apperr"
	"github.com/casalista/backend/internal/repo"
)

type Owner struct {
	OwnerRepo    *repo.Owner
	PropertyRepo *repo.Property
	AssetService *Asset
	Auth         Authorizer
}

func NewOwner(ownerRepo *repo.Owner, propertyRepo *repo.Property, assetService *Asset, auth Authorizer) *Owner {
	return &Owner{
		OwnerRepo:    ownerRepo,
		PropertyRepo: propertyRepo,
		AssetService: assetService,
		Auth:         auth,
	}
}

// Cache: owner list, 5 min
func (s *Owner) GetOwners(ctx context.Context) ([]*model.Owner, error) {
	var owners []*model.Owner
	err := cache.Owners.MutexGetSet(&owners, func() ([]*model.Owner, error) {
		return s.OwnerRepo.GetOwners(ctx)
	}, time.Minute*5)
	if err != nil {
		return nil, err
	}
	return owners, nil
}

func (s *Owner) GetOwnerByID(ctx context.Context, ownerID string) (*model.Owner, error) {
	return s.OwnerRepo.GetOwnerByID(ctx, ownerID)
}

// CreateOwner persists a new owner and, when the submission names an existing
// property, links that property to the owner on a best-effort basis: a link
// failure is logged but never fails the creation.
func (s *Owner) CreateOwner(ctx context.Context, submission *types.OwnerSubmission) (*model.Owner, error) {
	if err := s.Auth.CanMutate(ctx); err != nil {
		return nil, err
	}

	imageURL, err := s.AssetService.ResolveImage(ctx, submission.Image, submission.ImageURL)
	if err != nil {
		return nil, err
	}

	owner := &model.Owner{
		Name:     strings.TrimSpace(submission.Name),
		Address:  nullIfBlank(submission.Address),
		Phone:    nullIfBlank(submission.Phone),
		Email:    nullIfBlank(submission.Email),
		ImageURL: imageURL,
	}
	if err := s.OwnerRepo.CreateOwner(ctx, owner); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to persist owner")
		return nil, apperr.ErrPersistenceFailed
	}

	if propertyID := strings.TrimSpace(submission.PropertyID); propertyID != "" {
		if err := s.PropertyRepo.LinkOwner(ctx, propertyID, owner.OwnerID); err != nil {
			log.Ctx(ctx).Warn().
				Err(err).
				Str("ownerId", owner.OwnerID).
				Str("propertyId", propertyID).
				Msg("failed to link property to new owner")
		} else {
			cache.FlushProperties()
		}
	}

	cache.FlushOwners()

	return owner, nil
}

// UpdateOwner replaces the mutable fields of an existing owner. The stored
// image is kept when the submission carries neither a file nor a URL.
func (s *Owner) UpdateOwner(ctx context.Context, ownerID string, submission *types.OwnerSubmission) (*model.Owner, error) {
	if err := s.Auth.CanMutate(ctx); err != nil {
		return nil, err
	}

	owner, err := s.OwnerRepo.GetOwnerByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.AssetService.ResolveImage(ctx, submission.Image, submission.ImageURL)
	if err != nil {
		return nil, err
	}
	if imageURL.Valid {
		owner.ImageURL = imageURL
	}

	owner.Name = strings.TrimSpace(submission.Name)
	owner.Address = nullIfBlank(submission.Address)
	owner.Phone = nullIfBlank(submission.Phone)
	owner.Email = nullIfBlank(submission.Email)

	if err := s.OwnerRepo.UpdateOwner(ctx, owner); err != nil {
		return nil, err
	}

	cache.FlushOwners()

	return owner, nil
}

// DeleteOwner removes an owner; properties that pointed at it survive
// unlinked, so both views go stale.
func (s *Owner) DeleteOwner(ctx context.Context, ownerID string) error {
	if err := s.Auth.CanMutate(ctx); err != nil {
		return err
	}

	if err := s.OwnerRepo.DeleteOwner(ctx, ownerID); err != nil {
		return err
	}

	cache.FlushOwners()
	cache.FlushProperties()

	return nil
}
