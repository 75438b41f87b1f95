package services

import (
	"context"

	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/repositories"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/pkg/apperrors"
)

// Template sets per plan. Premium unlocks everything.
var (
	basicTemplates   = []string{"01"}
	premiumTemplates = []string{"01", "02", "03"}
)

type TemplatesService interface {
	Access(ctx context.Context, userID string) (*dto.TemplateAccessResponse, error)
}

type TemplatesServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewTemplatesService(userRepo repositories.UserRepository) TemplatesService {
	return &TemplatesServiceImpl{userRepo: userRepo}
}

// Access reports which template IDs the user's current plan unlocks.
func (s *TemplatesServiceImpl) Access(ctx context.Context, userID string) (*dto.TemplateAccessResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, err
		}
		return nil, apperrors.InternalError(err)
	}

	templates := basicTemplates
	if user.SubscriptionPlan == models.PlanPremium {
		templates = premiumTemplates
	}

	return &dto.TemplateAccessResponse{
		SubscriptionPlan:   user.SubscriptionPlan,
		IsPremium:          user.IsPremium(),
		AvailableTemplates: templates,
	}, nil
}
