package repositories

import (
	"errors"

	"resumebuilder_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentRepository interface {
	Create(payment *models.Payment) error
	FindByOrderID(orderID string) (*models.Payment, error)
	FindByUserID(userID string) ([]models.Payment, error)
	Update(payment *models.Payment) error
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) FindByOrderID(orderID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindByUserID(userID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepositoryImpl) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}
