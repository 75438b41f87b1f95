package services

import (
	"context"

	"github.com/google/uuid"

	"resumebuilder_backend/internal/logger"
	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/payment"
	"resumebuilder_backend/internal/repositories"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/pkg/apperrors"
)

// PaymentConfig carries the gateway credentials and the fixed premium price.
type PaymentConfig struct {
	KeyID         string
	PremiumAmount int64
	Currency      string
}

type PaymentService interface {
	CreateOrder(ctx context.Context, userID string, req *dto.CreateOrderRequest) (*dto.OrderResponse, error)
	VerifyPayment(ctx context.Context, userID string, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error)
	History(ctx context.Context, userID string) ([]models.Payment, error)
	OrderDetails(ctx context.Context, userID, orderID string) (*models.Payment, error)
}

type PaymentServiceImpl struct {
	paymentRepo repositories.PaymentRepository
	userRepo    repositories.UserRepository
	gateway     payment.Gateway
	cfg         PaymentConfig
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	userRepo repositories.UserRepository,
	gateway payment.Gateway,
	cfg PaymentConfig,
) PaymentService {
	return &PaymentServiceImpl{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		cfg:         cfg,
	}
}

// CreateOrder registers an order with the gateway and persists it with
// status created. Only the Premium plan is purchasable.
func (s *PaymentServiceImpl) CreateOrder(ctx context.Context, userID string, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if req.PlanType != models.PlanPremium {
		return nil, apperrors.ErrInvalidPlanType
	}

	receipt := "premium_" + uuid.NewString()[:8]

	order, err := s.gateway.CreateOrder(ctx, s.cfg.PremiumAmount, s.cfg.Currency, receipt)
	if err != nil {
		logger.CtxWithError(ctx, "gateway order creation failed", err, "user_id", userID)
		return nil, apperrors.ErrPaymentGateway
	}

	record := &models.Payment{
		UserID:   userID,
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		PlanType: req.PlanType,
		Receipt:  receipt,
		Status:   models.PaymentStatusCreated,
	}
	if err := s.paymentRepo.Create(record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "payment order created", "order_id", order.ID, "user_id", userID)

	return &dto.OrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  receipt,
		KeyID:    s.cfg.KeyID,
	}, nil
}

// VerifyPayment checks the checkout callback signature, marks the order paid
// and upgrades the user's plan.
func (s *PaymentServiceImpl) VerifyPayment(ctx context.Context, userID string, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	record, err := s.paymentRepo.FindByOrderID(req.OrderID)
	if err != nil {
		return nil, err
	}

	if !s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		logger.CtxWarn(ctx, "payment signature verification failed",
			"order_id", req.OrderID, "user_id", userID)
		return nil, apperrors.NewBadRequestError("Payment verification failed")
	}

	record.PaymentID = req.PaymentID
	record.Signature = req.Signature
	record.Status = models.PaymentStatusPaid
	if err := s.paymentRepo.Update(record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateSubscriptionPlan(record.UserID, record.PlanType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "payment verified, plan upgraded",
		"order_id", req.OrderID, "user_id", record.UserID, "plan", record.PlanType)

	return &dto.VerifyPaymentResponse{
		Message:          "Payment verified successfully",
		SubscriptionPlan: record.PlanType,
	}, nil
}

func (s *PaymentServiceImpl) History(ctx context.Context, userID string) ([]models.Payment, error) {
	payments, err := s.paymentRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payments, nil
}

func (s *PaymentServiceImpl) OrderDetails(ctx context.Context, userID, orderID string) (*models.Payment, error) {
	record, err := s.paymentRepo.FindByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	return record, nil
}
