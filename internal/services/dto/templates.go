package dto

// TemplateAccessResponse lists the template IDs the user's plan unlocks.
type TemplateAccessResponse struct {
	SubscriptionPlan   string   `json:"subscriptionPlan"`
	IsPremium          bool     `json:"isPremium"`
	AvailableTemplates []string `json:"availableTemplates"`
}
