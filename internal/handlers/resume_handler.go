package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder_backend/internal/middleware"
	"resumebuilder_backend/internal/services"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/pkg/apperrors"
)

type ResumeHandler struct {
	*BaseHandler
	resumeService services.ResumeService
	uploadService services.UploadService
}

func NewResumeHandler(base *BaseHandler, resumeService services.ResumeService, uploadService services.UploadService) *ResumeHandler {
	return &ResumeHandler{
		BaseHandler:   base,
		resumeService: resumeService,
		uploadService: uploadService,
	}
}

func (h *ResumeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	resume := rg.Group("/resume")
	resume.Use(middleware.RequirePrincipal())
	{
		resume.POST("", h.Create)
		resume.GET("", h.List)
		resume.GET("/:id", h.Get)
		resume.PUT("/:id", h.Update)
		resume.DELETE("/:id", h.Delete)
		resume.PUT("/:id/upload-images", h.UploadImages)
	}
}

func (h *ResumeHandler) Create(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateResumeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resume, err := h.resumeService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resume)
}

func (h *ResumeHandler) List(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	resumes, err := h.resumeService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resumes)
}

func (h *ResumeHandler) Get(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	resume, err := h.resumeService.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateResumeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resume, err := h.resumeService.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	if err := h.resumeService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Resume deleted successfully"})
}

// UploadImages accepts optional thumbnail and profileImage multipart parts.
func (h *ResumeHandler) UploadImages(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	thumbnail, _ := c.FormFile("thumbnail")
	profileImage, _ := c.FormFile("profileImage")
	if thumbnail == nil && profileImage == nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("at least one of thumbnail or profileImage is required"))
		return
	}

	resume, err := h.uploadService.UploadResumeImages(c.Request.Context(), userID, c.Param("id"), thumbnail, profileImage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}
