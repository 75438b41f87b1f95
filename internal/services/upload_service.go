package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumebuilder_backend/internal/logger"
	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/repositories"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/internal/storage"
	"resumebuilder_backend/pkg/apperrors"
)

// UploadConfig limits what the service accepts before touching storage.
type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

type UploadService interface {
	UploadProfileImage(ctx context.Context, userID string, file *multipart.FileHeader) (*dto.UploadResponse, error)
	UploadResumeImages(ctx context.Context, userID, resumeID string, thumbnail, profileImage *multipart.FileHeader) (*models.Resume, error)
}

type UploadServiceImpl struct {
	userRepo   repositories.UserRepository
	resumeRepo repositories.ResumeRepository
	store      storage.Storage
	cfg        UploadConfig
}

func NewUploadService(
	userRepo repositories.UserRepository,
	resumeRepo repositories.ResumeRepository,
	store storage.Storage,
	cfg UploadConfig,
) UploadService {
	return &UploadServiceImpl{
		userRepo:   userRepo,
		resumeRepo: resumeRepo,
		store:      store,
		cfg:        cfg,
	}
}

// UploadProfileImage stores the image and points the user's profile at it.
func (s *UploadServiceImpl) UploadProfileImage(ctx context.Context, userID string, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	url, err := s.saveImage(ctx, "profile", file)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateProfileImage(userID, url); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "profile image uploaded", "user_id", userID)
	return &dto.UploadResponse{ImageURL: url}, nil
}

// UploadResumeImages attaches a thumbnail and a profile preview to the
// resume. Either file may be absent.
func (s *UploadServiceImpl) UploadResumeImages(ctx context.Context, userID, resumeID string, thumbnail, profileImage *multipart.FileHeader) (*models.Resume, error) {
	resume, err := s.resumeRepo.FindByUserIDAndID(userID, resumeID)
	if err != nil {
		return nil, err
	}

	if thumbnail != nil {
		url, err := s.saveImage(ctx, "thumbnails", thumbnail)
		if err != nil {
			return nil, err
		}
		resume.ThumbnailLink = url
	}

	if profileImage != nil {
		url, err := s.saveImage(ctx, "profile", profileImage)
		if err != nil {
			return nil, err
		}
		resume.ProfileInfo.ProfilePreviewURL = url
	}

	if err := s.resumeRepo.Update(resume); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "resume images uploaded", "resume_id", resumeID, "user_id", userID)
	return resume, nil
}

func (s *UploadServiceImpl) saveImage(ctx context.Context, prefix string, file *multipart.FileHeader) (string, error) {
	if file.Size > s.cfg.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if !s.typeAllowed(contentType) {
		return "", apperrors.ErrInvalidFileType
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	path := fmt.Sprintf("%s/%d_%s%s", prefix, time.Now().UnixNano(), uuid.NewString()[:8], ext)

	if err := s.store.Save(ctx, path, src, contentType); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeExternalServiceError, "upload",
			"Failed to store uploaded file", 502)
	}

	return s.store.GetURL(path), nil
}

func (s *UploadServiceImpl) typeAllowed(contentType string) bool {
	for _, t := range s.cfg.AllowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}
