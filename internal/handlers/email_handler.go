package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder_backend/internal/middleware"
	"resumebuilder_backend/internal/services"
	"resumebuilder_backend/internal/services/dto"
)

type EmailHandler struct {
	*BaseHandler
	emailService services.EmailService
}

func NewEmailHandler(base *BaseHandler, emailService services.EmailService) *EmailHandler {
	return &EmailHandler{
		BaseHandler:  base,
		emailService: emailService,
	}
}

func (h *EmailHandler) RegisterRoutes(rg *gin.RouterGroup) {
	email := rg.Group("/email")
	email.Use(middleware.RequirePrincipal())
	{
		email.POST("/send-resume", h.SendResume)
	}
}

// SendResume takes a multipart form with recipientEmail, subject, message
// and the pdfFile attachment.
func (h *EmailHandler) SendResume(c *gin.Context) {
	if _, ok := h.RequireUserID(c); !ok {
		return
	}

	var req dto.SendResumeEmailRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	pdf, _ := c.FormFile("pdfFile")

	if err := h.emailService.SendResume(c.Request.Context(), &req, pdf); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SendResumeEmailResponse{
		Success: true,
		Message: "Email sent successfully",
	})
}
