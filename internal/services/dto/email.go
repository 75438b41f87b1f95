package dto

// SendResumeEmailRequest mails a rendered resume PDF to the given address.
// The PDF itself arrives as the pdfFile part of the multipart form.
type SendResumeEmailRequest struct {
	RecipientEmail string `form:"recipientEmail" json:"recipientEmail" validate:"required,email"`
	Subject        string `form:"subject" json:"subject" validate:"required,min=1,max=200"`
	Message        string `form:"message" json:"message" validate:"omitempty,max=5000"`
}

type SendResumeEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
