package dto

import (
	"gorm.io/datatypes"

	"resumebuilder_backend/internal/models"
)

// CreateResumeRequest starts a new resume. Everything beyond the title is
// optional and gets filled in later through updates.
type CreateResumeRequest struct {
	Title    string         `json:"title" validate:"required,min=1,max=100"`
	Template datatypes.JSON `json:"template"`
}

// UpdateResumeRequest replaces the mutable parts of a resume. Pointer fields
// distinguish "absent" from "set to zero value".
type UpdateResumeRequest struct {
	Title           *string                 `json:"title" validate:"omitempty,min=1,max=100"`
	ThumbnailLink   *string                 `json:"thumbnailLink"`
	Template        datatypes.JSON          `json:"template"`
	ProfileInfo     *models.ProfileInfo     `json:"profileInfo"`
	ContactInfo     *models.ContactInfo     `json:"contactInfo"`
	WorkExperiences []models.WorkExperience `json:"workExperiences"`
	Educations      []models.Education      `json:"educations"`
	Skills          []models.Skill          `json:"skills"`
	Projects        []models.Project        `json:"projects"`
	Certifications  []models.Certification  `json:"certifications"`
	Languages       []models.Language       `json:"languages"`
	Interests       []string                `json:"interests"`
}
