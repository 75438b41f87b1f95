package repositories

import (
	"errors"

	"resumebuilder_backend/internal/models"

	"gorm.io/gorm"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByUserID(userID string) ([]models.Resume, error)
	FindByUserIDAndID(userID, resumeID string) (*models.Resume, error)
	Update(resume *models.Resume) error
	Delete(resume *models.Resume) error
}

type ResumeRepositoryImpl struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &ResumeRepositoryImpl{db: db}
}

func (r *ResumeRepositoryImpl) Create(resume *models.Resume) error {
	return r.db.Create(resume).Error
}

func (r *ResumeRepositoryImpl) FindByUserID(userID string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&resumes).Error
	return resumes, err
}

// FindByUserIDAndID scopes the lookup by owner, so one user can never read
// another user's resume by guessing ids.
func (r *ResumeRepositoryImpl) FindByUserIDAndID(userID, resumeID string) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.First(&resume, "user_id = ? AND id = ?", userID, resumeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) Update(resume *models.Resume) error {
	return r.db.Save(resume).Error
}

func (r *ResumeRepositoryImpl) Delete(resume *models.Resume) error {
	result := r.db.Delete(resume)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResumeNotFound
	}
	return nil
}
