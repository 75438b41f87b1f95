package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder_backend/internal/middleware"
	"resumebuilder_backend/internal/services"
	"resumebuilder_backend/internal/services/dto"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payment := rg.Group("/payment")
	payment.Use(middleware.RequirePrincipal())
	{
		payment.POST("/create-order", h.CreateOrder)
		payment.POST("/verify", h.VerifyPayment)
		payment.GET("/history", h.History)
		payment.GET("/order/:orderId", h.OrderDetails)
	}
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.paymentService.CreateOrder(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.VerifyPaymentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.paymentService.VerifyPayment(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) History(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.History(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) OrderDetails(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	record, err := h.paymentService.OrderDetails(c.Request.Context(), userID, c.Param("orderId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
