package models

import "time"

// Subscription plans. The plan is a plain user attribute, not a separate
// subscription entity; Premium unlocks the paid templates.
const (
	PlanBasic   = "Basic"
	PlanPremium = "Premium"
)

type User struct {
	BaseModel
	Name            string `gorm:"not null" json:"name"`
	Email           string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string `gorm:"not null" json:"-"`
	ProfileImageURL string `json:"profileImageUrl"`
	EmailVerified   bool   `gorm:"default:false" json:"emailVerified"`

	// VerificationToken and VerificationExpires are set together at
	// registration/resend and cleared together on consume. Never one
	// without the other.
	VerificationToken   *string    `gorm:"index" json:"-"`
	VerificationExpires *time.Time `json:"-"`

	SubscriptionPlan string `gorm:"type:varchar(20);default:'Basic'" json:"subscriptionPlan"`
}

// IsPremium reports whether the user is on the paid plan.
func (u *User) IsPremium() bool {
	return u.SubscriptionPlan == PlanPremium
}
