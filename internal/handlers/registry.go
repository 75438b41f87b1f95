package handlers

// AppHandlers holds all HTTP handlers.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	ResumeHandler    *ResumeHandler
	PaymentHandler   *PaymentHandler
	TemplatesHandler *TemplatesHandler
	EmailHandler     *EmailHandler
}
