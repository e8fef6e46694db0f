package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/casalista/backend/internal/model"
	"github.com/casalista/backend/internal/model/cache"
	"github.com/casalista/backend/internal/model/types"
	"github.com/casalista/backend/internal/pkg/apperr"
	"github.com/casalista/backend/internal/repo"
)

type Enquiry struct {
	EnquiryRepo *repo.Enquiry
}

func NewEnquiry(enquiryRepo *repo.Enquiry) *Enquiry {
	return &Enquiry{EnquiryRepo: enquiryRepo}
}

// Cache: enquiry list, 5 min
func (s *Enquiry) GetEnquiries(ctx context.Context) ([]*model.Enquiry, error) {
	var enquiries []*model.Enquiry
	err := cache.Enquiries.MutexGetSet(&enquiries, func() ([]*model.Enquiry, error) {
		return s.EnquiryRepo.GetEnquiries(ctx)
	}, time.Minute*5)
	if err != nil {
		return nil, err
	}
	return enquiries, nil
}

// CreateEnquiry records a visitor enquiry against a property. Enquiries are
// append-only and require no mutation capability.
func (s *Enquiry) CreateEnquiry(ctx context.Context, submission *types.EnquirySubmission) (*model.Enquiry, error) {
	enquiry := &model.Enquiry{
		Name:       submission.Name,
		Email:      submission.Email,
		Phone:      nullIfBlank(submission.Phone),
		Message:    submission.Message,
		PropertyID: submission.PropertyID,
	}
	if err := s.EnquiryRepo.CreateEnquiry(ctx, enquiry); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to persist enquiry")
		return nil, apperr.ErrPersistenceFailed
	}

	cache.FlushEnquiries()
	cache.FlushProperties()

	return enquiry, nil
}
