package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder_backend/internal/middleware"
	"resumebuilder_backend/internal/services"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/pkg/apperrors"
)

type AuthHandler struct {
	*BaseHandler
	authService   services.AuthService
	uploadService services.UploadService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, uploadService services.UploadService) *AuthHandler {
	return &AuthHandler{
		BaseHandler:   base,
		authService:   authService,
		uploadService: uploadService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/verify-email", h.VerifyEmail)
		auth.POST("/resend-verification", h.ResendVerification)
	}

	protected := rg.Group("/auth")
	protected.Use(middleware.RequirePrincipal())
	{
		protected.GET("/profile", h.Profile)
		protected.POST("/upload-image", h.UploadImage)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")

	if err := h.authService.VerifyEmail(c.Request.Context(), token); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Email verified successfully"})
}

func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req dto.ResendVerificationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ResendVerification(c.Request.Context(), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Verification email sent",
	})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	profile, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *AuthHandler) UploadImage(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("image file is required"))
		return
	}

	resp, err := h.uploadService.UploadProfileImage(c.Request.Context(), userID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
