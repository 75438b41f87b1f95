package models

import "gorm.io/datatypes"

// Resume is the stored document. The section slices are persisted as jsonb
// via the gorm json serializer; Template stays raw json because its shape
// (theme, color palette) is owned by the frontend.
type Resume struct {
	BaseModel
	UserID        string         `gorm:"type:uuid;not null;index" json:"userId"`
	Title         string         `gorm:"not null" json:"title"`
	ThumbnailLink string         `json:"thumbnailLink"`
	Template      datatypes.JSON `gorm:"type:jsonb" json:"template"`

	ProfileInfo     ProfileInfo      `gorm:"serializer:json" json:"profileInfo"`
	ContactInfo     ContactInfo      `gorm:"serializer:json" json:"contactInfo"`
	WorkExperiences []WorkExperience `gorm:"serializer:json" json:"workExperiences"`
	Educations      []Education      `gorm:"serializer:json" json:"educations"`
	Skills          []Skill          `gorm:"serializer:json" json:"skills"`
	Projects        []Project        `gorm:"serializer:json" json:"projects"`
	Certifications  []Certification  `gorm:"serializer:json" json:"certifications"`
	Languages       []Language       `gorm:"serializer:json" json:"languages"`
	Interests       []string         `gorm:"serializer:json" json:"interests"`
}

type ProfileInfo struct {
	ProfilePreviewURL string `json:"profilePreviewUrl"`
	FullName          string `json:"fullName"`
	Designation       string `json:"designation"`
	Summary           string `json:"summary"`
}

type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Github   string `json:"github"`
	Website  string `json:"website"`
}

type WorkExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type Skill struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GithubLink  string `json:"githubLink"`
	LiveDemoURL string `json:"liveDemoUrl"`
}

type Certification struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

type Language struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}
