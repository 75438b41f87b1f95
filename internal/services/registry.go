package services

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService      AuthService
	ResumeService    ResumeService
	PaymentService   PaymentService
	TemplatesService TemplatesService
	UploadService    UploadService
	EmailService     EmailService
}
