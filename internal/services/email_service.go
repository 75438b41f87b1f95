package services

import (
	"context"
	"io"
	"mime/multipart"

	"resumebuilder_backend/internal/email"
	"resumebuilder_backend/internal/logger"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/pkg/apperrors"
)

// pdfMaxSize caps the attachment read so a huge upload cannot exhaust memory.
const pdfMaxSize = 10 << 20

type EmailService interface {
	SendResume(ctx context.Context, req *dto.SendResumeEmailRequest, pdf *multipart.FileHeader) error
}

type EmailServiceImpl struct {
	provider email.Provider
}

func NewEmailService(provider email.Provider) EmailService {
	return &EmailServiceImpl{provider: provider}
}

// SendResume mails the uploaded resume PDF to the recipient.
func (s *EmailServiceImpl) SendResume(ctx context.Context, req *dto.SendResumeEmailRequest, pdf *multipart.FileHeader) error {
	if pdf == nil {
		return apperrors.NewBadRequestError("pdfFile is required")
	}
	if pdf.Size > pdfMaxSize {
		return apperrors.ErrFileTooLarge
	}
	if ct := pdf.Header.Get("Content-Type"); ct != "" && ct != "application/pdf" {
		return apperrors.ErrInvalidFileType
	}

	src, err := pdf.Open()
	if err != nil {
		return apperrors.InternalError(err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, pdfMaxSize))
	if err != nil {
		return apperrors.InternalError(err)
	}

	filename := pdf.Filename
	if filename == "" {
		filename = "resume.pdf"
	}

	if err := s.provider.SendWithAttachment(req.RecipientEmail, req.Subject, req.Message, data, filename); err != nil {
		logger.CtxWithError(ctx, "failed to send resume email", err, "to", req.RecipientEmail)
		return apperrors.Wrap(err, apperrors.CodeExternalServiceError, "email",
			"Failed to send email", 502)
	}

	logger.CtxInfo(ctx, "resume emailed", "to", req.RecipientEmail)
	return nil
}
