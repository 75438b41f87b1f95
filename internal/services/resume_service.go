package services

import (
	"context"

	"resumebuilder_backend/internal/logger"
	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/repositories"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/pkg/apperrors"
)

type ResumeService interface {
	Create(ctx context.Context, userID string, req *dto.CreateResumeRequest) (*models.Resume, error)
	List(ctx context.Context, userID string) ([]models.Resume, error)
	Get(ctx context.Context, userID, resumeID string) (*models.Resume, error)
	Update(ctx context.Context, userID, resumeID string, req *dto.UpdateResumeRequest) (*models.Resume, error)
	Delete(ctx context.Context, userID, resumeID string) error
}

type ResumeServiceImpl struct {
	resumeRepo repositories.ResumeRepository
}

func NewResumeService(resumeRepo repositories.ResumeRepository) ResumeService {
	return &ResumeServiceImpl{resumeRepo: resumeRepo}
}

func (s *ResumeServiceImpl) Create(ctx context.Context, userID string, req *dto.CreateResumeRequest) (*models.Resume, error) {
	resume := &models.Resume{
		UserID:   userID,
		Title:    req.Title,
		Template: req.Template,
	}

	if err := s.resumeRepo.Create(resume); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "resume created", "resume_id", resume.ID, "user_id", userID)
	return resume, nil
}

func (s *ResumeServiceImpl) List(ctx context.Context, userID string) ([]models.Resume, error) {
	resumes, err := s.resumeRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resumes, nil
}

// Get fetches a resume scoped to its owner. A resume belonging to another
// user is indistinguishable from one that does not exist.
func (s *ResumeServiceImpl) Get(ctx context.Context, userID, resumeID string) (*models.Resume, error) {
	resume, err := s.resumeRepo.FindByUserIDAndID(userID, resumeID)
	if err != nil {
		return nil, err
	}
	return resume, nil
}

func (s *ResumeServiceImpl) Update(ctx context.Context, userID, resumeID string, req *dto.UpdateResumeRequest) (*models.Resume, error) {
	resume, err := s.resumeRepo.FindByUserIDAndID(userID, resumeID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		resume.Title = *req.Title
	}
	if req.ThumbnailLink != nil {
		resume.ThumbnailLink = *req.ThumbnailLink
	}
	if req.Template != nil {
		resume.Template = req.Template
	}
	if req.ProfileInfo != nil {
		resume.ProfileInfo = *req.ProfileInfo
	}
	if req.ContactInfo != nil {
		resume.ContactInfo = *req.ContactInfo
	}
	if req.WorkExperiences != nil {
		resume.WorkExperiences = req.WorkExperiences
	}
	if req.Educations != nil {
		resume.Educations = req.Educations
	}
	if req.Skills != nil {
		resume.Skills = req.Skills
	}
	if req.Projects != nil {
		resume.Projects = req.Projects
	}
	if req.Certifications != nil {
		resume.Certifications = req.Certifications
	}
	if req.Languages != nil {
		resume.Languages = req.Languages
	}
	if req.Interests != nil {
		resume.Interests = req.Interests
	}

	if err := s.resumeRepo.Update(resume); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "resume updated", "resume_id", resume.ID, "user_id", userID)
	return resume, nil
}

func (s *ResumeServiceImpl) Delete(ctx context.Context, userID, resumeID string) error {
	resume, err := s.resumeRepo.FindByUserIDAndID(userID, resumeID)
	if err != nil {
		return err
	}

	if err := s.resumeRepo.Delete(resume); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "resume deleted", "resume_id", resumeID, "user_id", userID)
	return nil
}
