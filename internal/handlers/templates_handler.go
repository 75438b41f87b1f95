package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder_backend/internal/middleware"
	"resumebuilder_backend/internal/services"
)

type TemplatesHandler struct {
	*BaseHandler
	templatesService services.TemplatesService
}

func NewTemplatesHandler(base *BaseHandler, templatesService services.TemplatesService) *TemplatesHandler {
	return &TemplatesHandler{
		BaseHandler:      base,
		templatesService: templatesService,
	}
}

func (h *TemplatesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", middleware.RequirePrincipal(), h.Templates)
}

func (h *TemplatesHandler) Templates(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	resp, err := h.templatesService.Access(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
